package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/inventory/service"
)

type RecallHandler struct {
	recallService service.RecallService
}

func NewRecallHandler(rs service.RecallService) *RecallHandler {
	return &RecallHandler{recallService: rs}
}

func (h *RecallHandler) RegisterRoutes(router *gin.RouterGroup) {
	recallRoutes := router.Group("/recalled-product")
	{
		recallRoutes.GET("", h.ListRecalls)
		recallRoutes.POST("", h.CreateRecall)
	}
}

func (h *RecallHandler) ListRecalls(c *gin.Context) {
	recalls, err := h.recallService.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, "ListRecalls", err, "Failed to retrieve recalled products")
		return
	}
	c.JSON(http.StatusOK, recalls)
}

func (h *RecallHandler) CreateRecall(c *gin.Context) {
	var req domain.CreateRecallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	recall, err := h.recallService.Save(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecall) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		writeStoreError(c, "CreateRecall", err, "Failed to save recalled product")
		return
	}
	c.JSON(http.StatusOK, recall)
}
