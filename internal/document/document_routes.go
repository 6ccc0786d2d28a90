package document

import (
	"go-salon/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	documents := r.Group("/documents")
	documents.Use(middleware.CompanyContext())
	documents.Use(middleware.ContextLogger(logger))
	documents.Use(middleware.UUIDParams("id"))
	{
		documents.GET("", handler.GetAll)
		documents.GET("/summary", handler.GetSummary)
		documents.GET("/:id", handler.GetById)
		documents.POST("", middleware.RateLimitByCompany(1, 5), handler.Create)
		documents.POST("/bulk", middleware.RateLimitByCompany(0.2, 1), handler.Bulk)
		documents.PUT("/:id", middleware.RateLimitByCompany(1, 5), handler.Update)
		documents.DELETE("/:id", middleware.RateLimitByCompany(0.5, 2), handler.Delete)
	}
}
