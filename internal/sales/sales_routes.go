package sales

import (
	"go-salon/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	sales := r.Group("/sales")
	sales.Use(middleware.CompanyContext())
	sales.Use(middleware.ContextLogger(logger))
	{
		sales.GET("", handler.GetByMonth)
		sales.PUT("", middleware.RateLimitByCompany(2, 10), handler.Upsert)
	}
}
