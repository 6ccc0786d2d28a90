package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	leaveerrors "go-salon/internal/leave/errors"
	"go-salon/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusCanceled = "CANCELLED"

	TypeAnnual = "ANNUAL"
	TypeSick   = "SICK"
	TypeUnpaid = "UNPAID"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListLeavesFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error)
	Approve(ctx context.Context, companyID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, companyID, id, rejectionReason string) (LeaveResponse, error)
	Cancel(ctx context.Context, companyID, id string) (LeaveResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	GetBalance(ctx context.Context, companyID, employeeID string) (LeaveBalanceResponse, error)
	GetBalances(ctx context.Context, companyID string) ([]LeaveBalanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	companyUUID, employeeUUID, startDate, endDate, err := validateCreateRequest(companyID, req)
	if err != nil {
		log.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindEmployee(ctx, companyID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		log.Error("create leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, req.EmployeeID, startDate, endDate, nil)
	if err != nil {
		log.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		log.Warn("create leave overlap detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  inclusiveDays(startDate, endDate),
		Reason:     strings.TrimSpace(req.Reason),
		Status:     StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		log.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	log.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("total_days", l.TotalDays),
	)

	l.Employee = emp
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListLeavesFilter) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	switch currentStatus {
	case StatusPending:
		return targetStatus == StatusApproved || targetStatus == StatusRejected || targetStatus == StatusCanceled
	case StatusApproved:
		return targetStatus == StatusCanceled
	default:
		return false
	}
}

func (s *service) Approve(ctx context.Context, companyID, id string) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, companyID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, companyID, id, rejectionReason string) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, companyID, id, StatusRejected, &rejectionReason)
}

func (s *service) Cancel(ctx context.Context, companyID, id string) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, companyID, id, StatusCanceled, nil)
}

func (s *service) transitionLeaveStatus(ctx context.Context, companyID, id, targetStatus string, rejectionReason *string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(companyID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	if targetStatus == StatusRejected && (rejectionReason == nil || strings.TrimSpace(*rejectionReason) == "") {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("transition leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if !isAllowedStatusTransition(l.Status, targetStatus) {
		log.Warn("transition leave status invalid",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = targetStatus
	switch targetStatus {
	case StatusApproved:
		now := s.now().UTC()
		l.ApprovedAt = &now
		l.RejectionReason = nil
	case StatusRejected:
		reason := strings.TrimSpace(*rejectionReason)
		l.ApprovedAt = nil
		l.RejectionReason = &reason
	default:
		l.ApprovedAt = nil
		l.RejectionReason = nil
	}

	if err := qtx.Update(ctx, l); err != nil {
		log.Error("transition leave status persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		log.Error("transition leave status commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	log.Info("transition leave status success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)
	return mapToResponse(*l), nil
}

// Delete removes a request that never counted against the balance.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}
	if l.Status == StatusApproved {
		return leaveerrors.ErrApprovedLeaveLocked
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) GetBalance(ctx context.Context, companyID, employeeID string) (LeaveBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindEmployee(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveBalanceResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return LeaveBalanceResponse{}, err
	}

	taken, err := s.repo.SumApprovedDays(ctx, companyID, []string{employeeID}, TypeAnnual)
	if err != nil {
		return LeaveBalanceResponse{}, err
	}

	return s.balanceFor(*emp, taken[emp.ID.String()]), nil
}

func (s *service) GetBalances(ctx context.Context, companyID string) ([]LeaveBalanceResponse, error) {
	emps, err := s.repo.FindEmployees(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(emps) == 0 {
		return []LeaveBalanceResponse{}, nil
	}

	ids := make([]string, len(emps))
	for i, e := range emps {
		ids[i] = e.ID.String()
	}

	taken, err := s.repo.SumApprovedDays(ctx, companyID, ids, TypeAnnual)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("sum approved leave failed", zap.Error(err))
		return nil, err
	}

	resp := make([]LeaveBalanceResponse, len(emps))
	for i, e := range emps {
		resp[i] = s.balanceFor(e, taken[e.ID.String()])
	}
	return resp, nil
}

func (s *service) balanceFor(emp LeaveEmployee, daysTaken float64) LeaveBalanceResponse {
	quota := emp.Quota()
	available := CalculateAccruedLeave(emp.StartDate, quota, s.now())

	return LeaveBalanceResponse{
		EmployeeID:   emp.ID.String(),
		EmployeeName: emp.FullName,
		AnnualQuota:  quota,
		LeaveBalance: NewLeaveBalance(daysTaken, available),
	}
}

func validateCreateRequest(companyID string, req CreateLeaveRequest) (uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return companyUUID, employeeUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// inclusiveDays counts calendar days, both ends included.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		CompanyID:       l.CompanyID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		RejectionReason: l.RejectionReason,
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
