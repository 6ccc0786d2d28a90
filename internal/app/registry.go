package app

import (
	"database/sql"

	"go-salon/internal/adjustment"
	"go-salon/internal/document"
	"go-salon/internal/employee"
	"go-salon/internal/leave"
	"go-salon/internal/messaging/kafka"
	"go-salon/internal/payroll"
	"go-salon/internal/salaryplan"
	"go-salon/internal/sales"
	"go-salon/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	adjustmentRepo := adjustment.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	salaryPlanRepo := salaryplan.NewRepository(gormDB)
	salesRepo := sales.NewRepository(gormDB)

	// --- Services ---
	adjustmentService := adjustment.NewService(db, adjustmentRepo, adjustment.NewDraftStore(rdb), logger)
	documentService := document.NewService(db, documentRepo, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	leaveService := leave.NewService(db, leaveRepo, logger)
	payrollService := payroll.NewService(db, payrollRepo, counterRepo, outboxRepo, logger)
	salaryPlanService := salaryplan.NewService(db, salaryPlanRepo, rdb, logger)
	salesService := sales.NewService(db, salesRepo, logger)

	// --- Handlers ---
	adjustmentHandler := adjustment.NewHandler(adjustmentService, rdb, logger)
	documentHandler := document.NewHandler(documentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payrollHandler := payroll.NewHandler(payrollService, rdb, logger)
	salaryPlanHandler := salaryplan.NewHandler(salaryPlanService, logger)
	salesHandler := sales.NewHandler(salesService, logger)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		adjustment.RegisterRoutes(api, adjustmentHandler, rdb, logger)
		document.RegisterRoutes(api, documentHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, logger)
		leave.RegisterRoutes(api, leaveHandler, logger)
		payroll.RegisterRoutes(api, payrollHandler, rdb, logger)
		salaryplan.RegisterRoutes(api, salaryPlanHandler, logger)
		sales.RegisterRoutes(api, salesHandler, logger)
	}

	return nil
}
