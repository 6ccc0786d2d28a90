package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-salon/internal/events"
	"go-salon/internal/payroll"
	"go-salon/internal/shared/apperror"
	"go-salon/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type PayrollRecalculator interface {
	Save(ctx context.Context, companyID string, req payroll.CalculatePayrollRequest) (payroll.SaveSalaryRecordsResponse, error)
}

const maxRecalculationAttempts = 3

var retryBackoff = 2 * time.Second

type outcome int

const (
	outcomeDone outcome = iota
	outcomeSkip
	outcomeRetry
)

func ConsumePayrollRecalculationRequested(
	ctx context.Context,
	reader MessageReader,
	payrollService PayrollRecalculator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_recalculation")
	log.Info("payroll recalculation consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll recalculation consumer stopped")
				return
			}
			log.Error("fetch payroll recalculation message failed", zap.Error(err))
			continue
		}

		if !processWithRetry(ctx, msg, payrollService, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll recalculation message failed", zap.Error(err))
		}
	}
}

// processWithRetry retries failed recalculations in place with a linear
// backoff. A later commit would cover this offset anyway, so after the last
// attempt the message is logged and dropped; the month can be requested again.
// It returns false only when ctx ends first.
func processWithRetry(
	ctx context.Context,
	msg kafkago.Message,
	payrollService PayrollRecalculator,
	log *zap.Logger,
) bool {
	for attempt := 1; ; attempt++ {
		if handleRecalculation(ctx, msg, payrollService, log) != outcomeRetry {
			return true
		}
		if attempt == maxRecalculationAttempts {
			log.Error("payroll recalculation dropped",
				zap.Int("attempts", attempt),
				zap.Int64("offset", msg.Offset),
			)
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
}

// handleRecalculation saves salary records for the requested month. Saving
// upserts per employee and month, so a redelivered message is harmless.
func handleRecalculation(
	ctx context.Context,
	msg kafkago.Message,
	payrollService PayrollRecalculator,
	log *zap.Logger,
) outcome {
	var event events.PayrollRecalculationRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payroll recalculation event failed", zap.Error(err))
		return outcomeSkip
	}

	rid := event.RequestID
	if rid == "" {
		rid = headerValue(msg, "request_id")
	}
	reqLog := log.With(
		zap.String("request_id", rid),
		zap.String("company_id", event.CompanyID),
		zap.String("month", event.Month),
	)
	ctx = contextutil.WithRequestID(ctx, rid)
	ctx = contextutil.WithCompanyID(ctx, event.CompanyID)
	ctx = contextutil.WithLogger(ctx, reqLog)

	resp, err := payrollService.Save(ctx, event.CompanyID, payroll.CalculatePayrollRequest{Month: event.Month})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
			reqLog.Warn("payroll recalculation rejected, skipping", zap.String("code", appErr.Code), zap.Error(err))
			return outcomeSkip
		}
		reqLog.Error("payroll recalculation failed", zap.Error(err))
		return outcomeRetry
	}

	reqLog.Info("payroll recalculated",
		zap.String("run_number", resp.RunNumber),
		zap.Int("count", resp.Count),
		zap.Int64("total_net", resp.TotalNet),
	)
	return outcomeDone
}
