package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-salon/internal/adjustment"
	"go-salon/internal/events"
	"go-salon/internal/messaging/kafka"
	payrollerrors "go-salon/internal/payroll/errors"
	"go-salon/internal/salaryplan"
	"go-salon/internal/shared/contextutil"
	"go-salon/internal/shared/counter"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	RecalculationStatusQueued = "QUEUED"
	outboxAggregateType       = "payroll"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, companyID string, req CalculatePayrollRequest) ([]SalaryCalculation, error)
	Save(ctx context.Context, companyID string, req CalculatePayrollRequest) (SaveSalaryRecordsResponse, error)
	RequestRecalculation(ctx context.Context, companyID string, req RecalculationRequest) (RecalculationResponse, error)
	GetRecords(ctx context.Context, companyID string, filter ListSalaryRecordsFilter) ([]SalaryRecordResponse, error)
	GetRecordByID(ctx context.Context, companyID, id string) (SalaryRecordResponse, error)
	Payslip(ctx context.Context, companyID, id string) ([]byte, string, error)
	ExportCSV(ctx context.Context, companyID, month string) ([]byte, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, counter: counter, outbox: outbox, logger: l}
}

func (s *service) Calculate(ctx context.Context, companyID string, req CalculatePayrollRequest) ([]SalaryCalculation, error) {
	calcs, _, err := s.calculate(ctx, companyID, req)
	return calcs, err
}

type manualTotals struct {
	deductions []adjustment.DynamicField
	bonuses    []adjustment.DynamicField
}

func (s *service) calculate(ctx context.Context, companyID string, req CalculatePayrollRequest) ([]SalaryCalculation, PayrollWindow, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	window, err := GetPayrollWindow(req.Month)
	if err != nil {
		return nil, PayrollWindow{}, err
	}

	manual, err := groupManualEntries(req.Manual)
	if err != nil {
		return nil, PayrollWindow{}, err
	}

	employees, err := s.repo.FetchActiveEmployees(ctx, companyID, window)
	if err != nil {
		log.Error("fetch active employees failed", zap.String("month", window.Month()), zap.Error(err))
		return nil, PayrollWindow{}, err
	}

	active := make([]PayrollEmployee, 0, len(employees))
	ids := make([]string, 0, len(employees))
	known := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		if !IsActiveInWindow(e.StartDate, e.EndDate, window) {
			continue
		}
		active = append(active, e)
		ids = append(ids, e.ID.String())
		known[e.ID.String()] = struct{}{}
	}
	for id := range manual {
		if _, ok := known[id]; !ok {
			return nil, PayrollWindow{}, payrollerrors.ErrInvalidManualEntry
		}
	}

	var (
		totals map[string]FinancialTotals
		sales  map[string]float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.repo.FetchFinancialTotals(gctx, companyID, ids, window)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.repo.FetchMonthlySales(gctx, companyID, ids, window)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("fetch payroll inputs failed", zap.String("month", window.Month()), zap.Error(err))
		return nil, PayrollWindow{}, err
	}

	calcs := make([]SalaryCalculation, 0, len(active))
	for _, e := range active {
		id := e.ID.String()
		m := manual[id]
		t := totals[id]

		components := salaryplan.CalculateSalary(sales[id], m.deductions, m.bonuses, e.Rules())
		calcs = append(calcs, Net(NettingInput{
			EmployeeID:         id,
			EmployeeName:       e.FullName,
			SalaryPlanName:     e.PlanName(),
			Sales:              sales[id],
			Components:         components,
			ActiveRatio:        ActiveWorkdayRatio(e.StartDate, e.EndDate, window.Start, window.End),
			ExternalDeductions: t.Deductions,
			ExternalBonuses:    t.Bonuses,
			Loans:              t.Loans,
			ManualDeductions:   adjustment.SumAmounts(m.deductions),
			ManualBonuses:      adjustment.SumAmounts(m.bonuses),
		}))
	}

	log.Info("payroll calculated",
		zap.String("company_id", companyID),
		zap.String("month", window.Month()),
		zap.Int("employees", len(calcs)),
	)

	return calcs, window, nil
}

func groupManualEntries(entries []ManualEntry) (map[string]manualTotals, error) {
	grouped := make(map[string]manualTotals, len(entries))
	for _, entry := range entries {
		for _, rows := range [][]adjustment.DynamicField{entry.Deductions, entry.Bonuses} {
			for _, f := range rows {
				if adjustment.ParseAmount(f.Amount).IsNegative() {
					return nil, payrollerrors.ErrNegativeManualAmount
				}
			}
		}

		m := grouped[entry.EmployeeID]
		m.deductions = append(m.deductions, entry.Deductions...)
		m.bonuses = append(m.bonuses, entry.Bonuses...)
		grouped[entry.EmployeeID] = m
	}
	return grouped, nil
}

// Save recalculates the month and replaces the stored salary records in one
// transaction, tagging them with a new run number. The run number is drawn
// inside that transaction, so a failed save leaves no gap.
func (s *service) Save(ctx context.Context, companyID string, req CalculatePayrollRequest) (SaveSalaryRecordsResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SaveSalaryRecordsResponse{}, payrollerrors.ErrInvalidCompanyID
	}

	calcs, window, err := s.calculate(ctx, companyID, req)
	if err != nil {
		return SaveSalaryRecordsResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("save salary records begin tx failed", zap.Error(err))
		return SaveSalaryRecordsResponse{}, err
	}
	defer tx.Rollback()

	nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.TypePayrollRun)
	if err != nil {
		log.Error("generate payroll run number failed", zap.Error(err))
		return SaveSalaryRecordsResponse{}, err
	}
	runNumber := fmt.Sprintf("RUN-%06d", nextVal)

	var totalNet int64
	records := make([]SalaryRecord, 0, len(calcs))
	for _, c := range calcs {
		employeeUUID, err := uuid.Parse(c.EmployeeID)
		if err != nil {
			return SaveSalaryRecordsResponse{}, err
		}
		totalNet += c.NetSalary
		records = append(records, toRecord(companyUUID, employeeUUID, window, runNumber, c))
	}

	if err := s.repo.WithTx(tx).SaveSalaryCalculations(ctx, records); err != nil {
		log.Error("save salary records persist failed", zap.String("run_number", runNumber), zap.Error(err))
		return SaveSalaryRecordsResponse{}, err
	}

	if s.outbox != nil {
		event := events.SalaryRecordsSavedEvent{
			EventType:   events.SalaryRecordsSavedType,
			CompanyID:   companyID,
			Month:       window.Month(),
			RunNumber:   runNumber,
			RecordCount: len(records),
			TotalNet:    totalNet,
			OccurredAt:  time.Now().UTC(),
		}
		if _, err := s.enqueue(ctx, tx, companyID, event.EventType, events.SalaryRecordsSavedTopic, event); err != nil {
			log.Error("save salary records outbox persist failed", zap.String("run_number", runNumber), zap.Error(err))
			return SaveSalaryRecordsResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return SaveSalaryRecordsResponse{}, err
	}

	log.Info("salary records saved",
		zap.String("run_number", runNumber),
		zap.String("month", window.Month()),
		zap.Int("count", len(records)),
	)

	return SaveSalaryRecordsResponse{
		RunNumber: runNumber,
		Month:     window.Month(),
		Count:     len(records),
		TotalNet:  totalNet,
		Records:   calcs,
	}, nil
}

// RequestRecalculation queues a recalculation through the outbox. The
// consumer picks it up and runs Save.
func (s *service) RequestRecalculation(ctx context.Context, companyID string, req RecalculationRequest) (RecalculationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	window, err := GetPayrollWindow(req.Month)
	if err != nil {
		return RecalculationResponse{}, err
	}
	if _, err := uuid.Parse(companyID); err != nil {
		return RecalculationResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	if s.outbox == nil {
		return RecalculationResponse{}, payrollerrors.ErrRecalculationUnavailable
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.PayrollRecalculationRequestedEvent{
		EventType:  events.PayrollRecalculationRequestedType,
		CompanyID:  companyID,
		Month:      window.Month(),
		RequestID:  rid,
		OccurredAt: time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecalculationResponse{}, err
	}
	defer tx.Rollback()

	eventID, err := s.enqueue(ctx, tx, companyID, event.EventType, events.PayrollRecalculationRequestedTopic, event)
	if err != nil {
		log.Error("queue payroll recalculation failed", zap.Error(err))
		return RecalculationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecalculationResponse{}, err
	}

	log.Info("payroll recalculation queued", zap.String("month", window.Month()), zap.String("outbox_id", eventID))

	return RecalculationResponse{
		Month:     window.Month(),
		EventID:   eventID,
		Status:    RecalculationStatusQueued,
		RequestID: rid,
	}, nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, companyID, eventType, topic string, event any) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            id,
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: outboxAggregateType,
		AggregateID:   companyID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	return id, err
}

func (s *service) GetRecords(ctx context.Context, companyID string, filter ListSalaryRecordsFilter) ([]SalaryRecordResponse, error) {
	var month *time.Time
	if filter.Month != "" {
		window, err := GetPayrollWindow(filter.Month)
		if err != nil {
			return nil, err
		}
		month = &window.Start
	}

	var employeeID *string
	if filter.EmployeeID != "" {
		employeeID = &filter.EmployeeID
	}

	records, err := s.repo.FindAllByCompany(ctx, companyID, month, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetRecordByID(ctx context.Context, companyID, id string) (SalaryRecordResponse, error) {
	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*record), nil
}

// Payslip renders a single record as PDF and returns it with a file name.
func (s *service) Payslip(ctx context.Context, companyID, id string) ([]byte, string, error) {
	record, err := s.GetRecordByID(ctx, companyID, id)
	if err != nil {
		return nil, "", err
	}

	pdf, err := buildSimplePayslipPDF(payslipLines(record))
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("build payslip failed", zap.String("salary_record_id", id), zap.Error(err))
		return nil, "", err
	}

	return pdf, fmt.Sprintf("payslip-%s-%s.pdf", record.Month, record.EmployeeID), nil
}

func (s *service) ExportCSV(ctx context.Context, companyID, month string) ([]byte, error) {
	records, err := s.GetRecords(ctx, companyID, ListSalaryRecordsFilter{Month: month})
	if err != nil {
		return nil, err
	}

	out, err := gocsv.MarshalBytes(&records)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("marshal salary records csv failed", zap.Error(err))
		return nil, payrollerrors.ErrExportFailed
	}
	return out, nil
}

func toRecord(companyID, employeeID uuid.UUID, window PayrollWindow, runNumber string, c SalaryCalculation) SalaryRecord {
	return SalaryRecord{
		ID:             uuid.New(),
		CompanyID:      companyID,
		EmployeeID:     employeeID,
		Month:          window.Start,
		RunNumber:      runNumber,
		SalaryPlanName: c.SalaryPlanName,
		ActiveRatio:    c.ActiveRatio,
		Sales:          c.Sales,
		BasicSalary:    c.BasicSalary,
		Commission:     c.Commission,
		TargetBonus:    c.TargetBonus,
		ExtraBonuses:   c.ExtraBonuses,
		Deductions:     c.Deductions,
		Loans:          c.Loans,
		GrossSalary:    c.GrossSalary,
		TotalSalary:    c.TotalSalary,
		NetSalary:      c.NetSalary,
	}
}

func mapToResponse(r SalaryRecord) SalaryRecordResponse {
	resp := SalaryRecordResponse{
		ID:             r.ID.String(),
		RunNumber:      r.RunNumber,
		Month:          r.Month.Format(monthLayout),
		EmployeeID:     r.EmployeeID.String(),
		SalaryPlanName: r.SalaryPlanName,
		ActiveRatio:    r.ActiveRatio,
		Sales:          r.Sales,
		BasicSalary:    r.BasicSalary,
		Commission:     r.Commission,
		TargetBonus:    r.TargetBonus,
		ExtraBonuses:   r.ExtraBonuses,
		Deductions:     r.Deductions,
		Loans:          r.Loans,
		GrossSalary:    r.GrossSalary,
		TotalSalary:    r.TotalSalary,
		NetSalary:      r.NetSalary,
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.FullName
	}
	return resp
}

func mapToListResponse(records []SalaryRecord) []SalaryRecordResponse {
	resp := make([]SalaryRecordResponse, len(records))
	for i, r := range records {
		resp[i] = mapToResponse(r)
	}
	return resp
}
