package consumer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-salon/internal/payroll"
	payrollerrors "go-salon/internal/payroll/errors"
	"go-salon/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRecalculator struct {
	mu    sync.Mutex
	calls []string
	errs  []error
	err   error
	rid   string
}

func (f *fakeRecalculator) Save(ctx context.Context, companyID string, req payroll.CalculatePayrollRequest) (payroll.SaveSalaryRecordsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, companyID+"/"+req.Month)
	f.rid = contextutil.GetRequestID(ctx)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return payroll.SaveSalaryRecordsResponse{}, err
	}
	if f.err != nil {
		return payroll.SaveSalaryRecordsResponse{}, f.err
	}
	return payroll.SaveSalaryRecordsResponse{RunNumber: "PAY-000001", Month: req.Month, Count: 2}, nil
}

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func message(value string, offset int64) kafkago.Message {
	return kafkago.Message{Value: []byte(value), Offset: offset}
}

func TestHandleRecalculation(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("saves records for the month", func(t *testing.T) {
		svc := &fakeRecalculator{}
		msg := message(`{"event_type":"payroll.recalculation.requested","company_id":"c1","month":"2025-03","request_id":"req-9"}`, 1)

		assert.Equal(t, outcomeDone, handleRecalculation(ctx, msg, svc, log))
		assert.Equal(t, []string{"c1/2025-03"}, svc.calls)
		assert.Equal(t, "req-9", svc.rid)
	})

	t.Run("request id falls back to header", func(t *testing.T) {
		svc := &fakeRecalculator{}
		msg := message(`{"company_id":"c1","month":"2025-03"}`, 1)
		msg.Headers = []kafkago.Header{{Key: "request_id", Value: []byte("req-h")}}

		handleRecalculation(ctx, msg, svc, log)

		assert.Equal(t, "req-h", svc.rid)
	})

	t.Run("undecodable payload is skipped", func(t *testing.T) {
		svc := &fakeRecalculator{}

		assert.Equal(t, outcomeSkip, handleRecalculation(ctx, message(`not json`, 1), svc, log))
		assert.Empty(t, svc.calls)
	})

	t.Run("client error is skipped", func(t *testing.T) {
		svc := &fakeRecalculator{err: payrollerrors.ErrInvalidMonth}

		got := handleRecalculation(ctx, message(`{"company_id":"c1","month":"2025-13"}`, 1), svc, log)

		assert.Equal(t, outcomeSkip, got)
	})

	t.Run("infrastructure error is retried", func(t *testing.T) {
		svc := &fakeRecalculator{err: errors.New("connection reset")}

		got := handleRecalculation(ctx, message(`{"company_id":"c1","month":"2025-03"}`, 1), svc, log)

		assert.Equal(t, outcomeRetry, got)
	})
}

func TestConsumePayrollRecalculationRequested(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		msgs: []kafkago.Message{
			message(`{"company_id":"c1","month":"2025-03"}`, 1),
			message(`garbage`, 2),
		},
		cancel: cancel,
	}
	svc := &fakeRecalculator{}

	done := make(chan struct{})
	go func() {
		ConsumePayrollRecalculationRequested(ctx, reader, svc, zap.NewNop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after context cancel")
	}

	assert.Equal(t, []string{"c1/2025-03"}, svc.calls)
	assert.Len(t, reader.committed, 2)
}

func TestProcessWithRetry(t *testing.T) {
	backoff := retryBackoff
	retryBackoff = time.Millisecond
	t.Cleanup(func() { retryBackoff = backoff })

	ctx := context.Background()
	msg := message(`{"company_id":"c1","month":"2025-03"}`, 5)

	t.Run("transient failure succeeds on a later attempt", func(t *testing.T) {
		svc := &fakeRecalculator{errs: []error{errors.New("connection reset")}}

		assert.True(t, processWithRetry(ctx, msg, svc, zap.NewNop()))
		assert.Len(t, svc.calls, 2)
	})

	t.Run("persistent failure is dropped after the last attempt", func(t *testing.T) {
		svc := &fakeRecalculator{err: errors.New("connection reset")}

		assert.True(t, processWithRetry(ctx, msg, svc, zap.NewNop()))
		assert.Len(t, svc.calls, maxRecalculationAttempts)
	})

	t.Run("client error is not retried", func(t *testing.T) {
		svc := &fakeRecalculator{err: payrollerrors.ErrInvalidMonth}

		assert.True(t, processWithRetry(ctx, msg, svc, zap.NewNop()))
		assert.Len(t, svc.calls, 1)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		svc := &fakeRecalculator{err: errors.New("connection reset")}

		assert.False(t, processWithRetry(cctx, msg, svc, zap.NewNop()))
		assert.Len(t, svc.calls, 1)
	})
}

func TestConsumePayrollRecalculationRequested_CommitsAfterRetry(t *testing.T) {
	backoff := retryBackoff
	retryBackoff = time.Millisecond
	t.Cleanup(func() { retryBackoff = backoff })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		msgs:   []kafkago.Message{message(`{"company_id":"c1","month":"2025-03"}`, 1)},
		cancel: cancel,
	}
	svc := &fakeRecalculator{errs: []error{errors.New("connection reset")}}

	ConsumePayrollRecalculationRequested(ctx, reader, svc, zap.NewNop())

	assert.Equal(t, []string{"c1/2025-03", "c1/2025-03"}, svc.calls)
	assert.Len(t, reader.committed, 1)
}
