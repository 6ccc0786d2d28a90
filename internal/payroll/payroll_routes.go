package payroll

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
	payroll := r.Group("/payroll")
	payroll.Use(middleware.CompanyContext())
	payroll.Use(middleware.ContextLogger(logger))
	payroll.Use(middleware.UUIDParams("id"))
	{
		payroll.POST("/calculations", middleware.RateLimitByCompany(2, 10), handler.Calculate)

		records := payroll.Group("/salary-records")
		records.GET("", handler.GetRecords)
		records.GET("/export", handler.ExportCSV)
		records.GET("/:id", handler.GetRecordById)
		records.GET("/:id/payslip", handler.DownloadPayslip)

		save := []gin.HandlerFunc{middleware.RateLimitByCompany(1, 3)}
		if rdb != nil {
			save = append(save, middleware.Idempotency(rdb))
		}
		records.POST("", append(save, handler.Save)...)
		records.POST("/recalculate", middleware.RateLimitByCompany(1, 3), handler.RequestRecalculation)
	}
}
