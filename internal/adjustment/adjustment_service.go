package adjustment

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	adjustmenterrors "go-salon/internal/adjustment/errors"
	"go-salon/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=adjustment_service.go -destination=mock/adjustment_service_mock.go -package=mock
type Service interface {
	BatchCreate(ctx context.Context, companyID string, req BatchCreateRequest) ([]AdjustmentResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListAdjustmentsFilter) ([]AdjustmentResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	GetDraft(ctx context.Context, companyID string, key DraftKey) ([]DynamicField, error)
	AddDraftRow(ctx context.Context, companyID string, key DraftKey) ([]DynamicField, error)
	UpdateDraftField(ctx context.Context, companyID string, key DraftKey, req UpdateDraftFieldRequest) ([]DynamicField, error)
	RemoveDraftRow(ctx context.Context, companyID string, key DraftKey, index int) ([]DynamicField, error)
	DiscardDraft(ctx context.Context, companyID string, key DraftKey) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	drafts DraftStore
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, drafts DraftStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("adjustment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("adjustment.service")
	}
	return &service{db: db, repo: repo, drafts: drafts, logger: l}
}

func (s *service) BatchCreate(ctx context.Context, companyID string, req BatchCreateRequest) ([]AdjustmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	kind := Kind(strings.ToUpper(req.Kind))
	if !kind.Valid() {
		return nil, adjustmenterrors.ErrInvalidKind
	}
	monthStart, monthEnd, err := parseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, adjustmenterrors.ErrEmployeeNotInCompany
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, adjustmenterrors.ErrEmployeeNotInCompany
	}

	rows := make([]Adjustment, 0, len(req.Fields))
	for _, f := range req.Fields {
		amount := ParseAmount(f.Amount)
		if amount.IsNegative() {
			return nil, adjustmenterrors.ErrNegativeAmount
		}
		if amount.IsZero() {
			continue
		}

		entryDate := monthStart
		if f.Date != nil && strings.TrimSpace(*f.Date) != "" {
			d, err := time.Parse("2006-01-02", strings.TrimSpace(*f.Date))
			if err != nil || d.Before(monthStart) || !d.Before(monthEnd) {
				return nil, adjustmenterrors.ErrInvalidEntryDate
			}
			entryDate = d
		}

		rows = append(rows, Adjustment{
			ID:          uuid.New(),
			CompanyID:   companyUUID,
			EmployeeID:  employeeUUID,
			Kind:        kind,
			Description: strings.TrimSpace(f.Description),
			Amount:      amount,
			EntryDate:   entryDate,
		})
	}
	if len(rows) == 0 {
		return nil, adjustmenterrors.ErrEmptyBatch
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("batch create adjustments begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return nil, adjustmenterrors.ErrEmployeeNotInCompany
	}

	if err := qtx.CreateBatch(ctx, rows); err != nil {
		log.Error("batch create adjustments persist failed", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("batch create adjustments commit failed", zap.Error(err))
		return nil, err
	}

	// saved rows replace the draft
	if s.drafts != nil {
		if err := s.drafts.Discard(ctx, companyID, req.EmployeeID, kind); err != nil {
			log.Warn("clear adjustment draft failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		}
	}

	log.Info("adjustments created",
		zap.String("employee_id", req.EmployeeID),
		zap.String("kind", string(kind)),
		zap.Int("rows", len(rows)),
	)

	return mapToListResponse(rows), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, req ListAdjustmentsFilter) ([]AdjustmentResponse, error) {
	var filter QueryFilter

	if strings.TrimSpace(req.Month) != "" {
		from, to, err := parseMonth(req.Month)
		if err != nil {
			return nil, err
		}
		filter.From = &from
		filter.To = &to
	}
	if strings.TrimSpace(req.Kind) != "" {
		kind := Kind(strings.ToUpper(strings.TrimSpace(req.Kind)))
		if !kind.Valid() {
			return nil, adjustmenterrors.ErrInvalidKind
		}
		filter.Kind = &kind
	}
	if strings.TrimSpace(req.EmployeeID) != "" {
		id := strings.TrimSpace(req.EmployeeID)
		filter.EmployeeID = &id
	}

	rows, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return adjustmenterrors.ErrAdjustmentNotFound
		}
		return err
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetDraft(ctx context.Context, companyID string, key DraftKey) ([]DynamicField, error) {
	return s.drafts.Load(ctx, companyID, key.EmployeeID, Kind(key.Kind))
}

func (s *service) AddDraftRow(ctx context.Context, companyID string, key DraftKey) ([]DynamicField, error) {
	return s.applyDraft(ctx, companyID, key, func(fields []DynamicField) ([]DynamicField, error) {
		return AddRow(fields), nil
	})
}

func (s *service) UpdateDraftField(ctx context.Context, companyID string, key DraftKey, req UpdateDraftFieldRequest) ([]DynamicField, error) {
	return s.applyDraft(ctx, companyID, key, func(fields []DynamicField) ([]DynamicField, error) {
		return UpdateField(fields, req.Index, FieldKey(req.Key), req.Value)
	})
}

func (s *service) RemoveDraftRow(ctx context.Context, companyID string, key DraftKey, index int) ([]DynamicField, error) {
	return s.applyDraft(ctx, companyID, key, func(fields []DynamicField) ([]DynamicField, error) {
		return RemoveRow(fields, index)
	})
}

func (s *service) DiscardDraft(ctx context.Context, companyID string, key DraftKey) error {
	return s.drafts.Discard(ctx, companyID, key.EmployeeID, Kind(key.Kind))
}

func (s *service) applyDraft(
	ctx context.Context,
	companyID string,
	key DraftKey,
	cmd func([]DynamicField) ([]DynamicField, error),
) ([]DynamicField, error) {
	kind := Kind(key.Kind)
	if !kind.Valid() {
		return nil, adjustmenterrors.ErrInvalidKind
	}

	fields, err := s.drafts.Load(ctx, companyID, key.EmployeeID, kind)
	if err != nil {
		return nil, err
	}

	next, err := cmd(fields)
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Save(ctx, companyID, key.EmployeeID, kind, next); err != nil {
		return nil, err
	}
	return next, nil
}

func parseMonth(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, time.Time{}, adjustmenterrors.ErrInvalidMonth
	}
	return start, start.AddDate(0, 1, 0), nil
}

func mapToResponse(a Adjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		Kind:        string(a.Kind),
		Description: a.Description,
		Amount:      a.Amount.InexactFloat64(),
		EntryDate:   a.EntryDate.Format("2006-01-02"),
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}

func mapToListResponse(rows []Adjustment) []AdjustmentResponse {
	resp := make([]AdjustmentResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp
}
