package adjustment

import (
	"go-salon/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	adjustments := r.Group("/adjustments")
	adjustments.Use(middleware.CompanyContext())
	adjustments.Use(middleware.ContextLogger(logger))
	adjustments.Use(middleware.UUIDParams("id"))
	{
		adjustments.GET("", handler.GetAll)

		batch := []gin.HandlerFunc{middleware.RateLimitByCompany(1, 5)}
		if rdb != nil {
			batch = append(batch, middleware.Idempotency(rdb))
		}
		adjustments.POST("/batch", append(batch, handler.BatchCreate)...)
		adjustments.DELETE("/:id", middleware.RateLimitByCompany(1, 5), handler.Delete)

		drafts := adjustments.Group("/drafts/:employee_id/:kind")
		drafts.GET("", handler.GetDraft)
		drafts.POST("/rows", handler.AddDraftRow)
		drafts.PATCH("/rows", handler.UpdateDraftField)
		drafts.DELETE("/rows", handler.RemoveDraftRow)
		drafts.DELETE("", handler.DiscardDraft)
	}
}
