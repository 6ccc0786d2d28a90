package leave

import (
	"go-salon/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.CompanyContext())
	leaves.Use(middleware.ContextLogger(logger))
	leaves.Use(middleware.UUIDParams("id", "employee_id"))
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/balances", handler.GetBalances)
		leaves.GET("/balances/:employee_id", handler.GetBalance)
		leaves.GET("/:id", handler.GetById)
		leaves.POST("", middleware.RateLimitByCompany(1, 5), handler.Create)
		leaves.POST("/:id/approve", middleware.RateLimitByCompany(1, 5), handler.Approve)
		leaves.POST("/:id/reject", middleware.RateLimitByCompany(1, 5), handler.Reject)
		leaves.POST("/:id/cancel", middleware.RateLimitByCompany(1, 5), handler.Cancel)
		leaves.DELETE("/:id", middleware.RateLimitByCompany(0.5, 2), handler.Delete)
	}
}
