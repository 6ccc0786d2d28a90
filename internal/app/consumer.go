package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-salon/internal/config"
	"go-salon/internal/events"
	"go-salon/internal/messaging/kafka"
	"go-salon/internal/messaging/kafka/consumer"
	"go-salon/internal/payroll"
	"go-salon/internal/shared/connection"
	"go-salon/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer processes recalculation requests until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.Kafka.RequireBroker(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	payrollService := payroll.NewService(
		sqlDB,
		payroll.NewRepository(gormDB),
		counter.NewRepository(gormDB),
		kafka.NewOutboxRepository(sqlDB),
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.PayrollRecalculationRequestedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumePayrollRecalculationRequested(ctx, reader, payrollService, logger)

	logger.Info("consumer shut down")
	return nil
}
