package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ridloal/inventory-service/internal/inventory/service"
	"github.com/ridloal/inventory-service/internal/platform/database"
	"github.com/ridloal/inventory-service/internal/platform/metrics"
	"github.com/ridloal/inventory-service/internal/platform/middleware"
)

const BasePath = "/api/inventory"

// Prices go over the wire as JSON numbers, e.g. "price":2.5.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type RouterDeps struct {
	ProductService service.ProductService
	RecallService  service.RecallService
	DB             database.Pinger
	Metrics        *metrics.Metrics
}

// NewRouter assembles the gin engine with middleware and every route.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", deps.Metrics.Handler())
	}

	db := deps.DB
	if db == nil {
		db = database.NopPinger{}
	}
	router.GET("/healthz", NewHealthHandler(db).Healthz)

	inventory := router.Group(BasePath)
	NewProductHandler(deps.ProductService).RegisterRoutes(inventory)
	NewRecallHandler(deps.RecallService).RegisterRoutes(inventory)

	return router
}
