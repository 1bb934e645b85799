package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ridloal/inventory-service/internal/inventory/domain"
	"github.com/ridloal/inventory-service/internal/inventory/repository"
	"github.com/ridloal/inventory-service/internal/inventory/service"
	"github.com/ridloal/inventory-service/internal/platform/logger"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(ps service.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/product")
	{
		productRoutes.GET("", h.GetAllProducts)
		productRoutes.GET("/", h.GetAllProducts)
		productRoutes.POST("", h.CreateProduct)
		productRoutes.POST("/", h.CreateProduct)
		productRoutes.GET("/:id", h.FindProduct)
		productRoutes.PUT("/:id", h.UpdateProduct)
		productRoutes.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		writeStoreError(c, "GetAllProducts", err, "Failed to retrieve products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	product, err := h.productService.Save(c.Request.Context(), req)
	if err != nil {
		writeStoreError(c, "CreateProduct", err, "Failed to save product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) FindProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, found, err := h.productService.FindByID(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, "FindProduct", err, "Failed to retrieve product")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrProductNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req domain.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		writeStoreError(c, "UpdateProduct", err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct checks existence first; DeleteByID itself never reports a miss.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	_, found, err := h.productService.FindByID(ctx, id)
	if err != nil {
		writeStoreError(c, "DeleteProduct", err, "Failed to delete product")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrProductNotFound.Error()})
		return
	}

	if err := h.productService.DeleteByID(ctx, id); err != nil {
		writeStoreError(c, "DeleteProduct", err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func writeStoreError(c *gin.Context, op string, err error, msg string) {
	if errors.Is(err, repository.ErrConstraintViolation) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	logger.Error(op+": service error", err, zap.String("path", c.Request.URL.Path))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
