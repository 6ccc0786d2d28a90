package salaryplan

import (
	"go-salon/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	plans := r.Group("/salary-plans")
	plans.Use(middleware.CompanyContext())
	plans.Use(middleware.ContextLogger(logger))
	plans.Use(middleware.UUIDParams("id"))
	{
		plans.GET("", handler.GetAll)
		plans.GET("/options", middleware.RateLimitByCompany(5, 20), handler.GetOptions)
		plans.GET("/:id", handler.GetById)
		plans.POST("", middleware.RateLimitByCompany(0.5, 2), handler.Create)
		plans.PUT("/:id", middleware.RateLimitByCompany(0.5, 2), handler.Update)
		plans.DELETE("/:id", middleware.RateLimitByCompany(0.5, 2), handler.Delete)
		plans.POST("/:id/preview", handler.Preview)
	}
}
