package document

import (
	"context"
	"database/sql"
	"strings"
	"time"

	documenterrors "go-salon/internal/document/errors"
	"go-salon/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateDocumentRequest) (DocumentResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListDocumentsFilter) ([]DocumentResponse, error)
	GetSummary(ctx context.Context, companyID string) (DocumentSummaryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (DocumentResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateDocumentRequest) (DocumentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	Bulk(ctx context.Context, companyID string, req BulkActionRequest) (BulkActionResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func parseOptionalDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, time.UTC)
	if err != nil {
		return nil, documenterrors.ErrInvalidDate
	}
	return &t, nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateDocumentRequest) (DocumentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrEmployeeNotFound
	}
	expiresAt, err := parseOptionalDate(req.ExpiresAt)
	if err != nil {
		return DocumentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create document begin tx failed", zap.Error(err))
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.EmployeeExists(ctx, companyID, req.EmployeeID)
	if err != nil {
		log.Error("create document employee lookup failed", zap.Error(err))
		return DocumentResponse{}, err
	}
	if !ok {
		return DocumentResponse{}, documenterrors.ErrEmployeeNotFound
	}

	doc := &Document{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		EmployeeID:     employeeUUID,
		DocumentType:   strings.ToUpper(strings.TrimSpace(req.DocumentType)),
		DocumentNumber: strings.TrimSpace(req.DocumentNumber),
		ExpiresAt:      expiresAt,
		Notes:          req.Notes,
	}

	if err := qtx.Create(ctx, doc); err != nil {
		log.Error("create document persist failed", zap.Error(err))
		return DocumentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create document commit failed", zap.Error(err))
		return DocumentResponse{}, err
	}

	log.Info("create document success",
		zap.String("document_id", doc.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*doc, s.now()), nil
}

// GetAll filters by status after the query since status depends on today.
func (s *service) GetAll(ctx context.Context, companyID string, filter ListDocumentsFilter) ([]DocumentResponse, error) {
	docs, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get all documents failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	today := s.now()
	res := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		resp := mapToResponse(d, today)
		if filter.Status != "" && resp.Status != filter.Status {
			continue
		}
		res = append(res, resp)
	}
	return res, nil
}

func (s *service) GetSummary(ctx context.Context, companyID string) (DocumentSummaryResponse, error) {
	docs, err := s.repo.FindAllByCompany(ctx, companyID, ListDocumentsFilter{})
	if err != nil {
		return DocumentSummaryResponse{}, mapRepositoryError(err)
	}

	today := s.now()
	summary := DocumentSummaryResponse{Total: len(docs)}
	for _, d := range docs {
		switch ExpiryStatus(d.ExpiresAt, today) {
		case StatusExpired:
			summary.Expired++
		case StatusExpiringSoon:
			summary.ExpiringSoon++
		case StatusValid:
			summary.Valid++
		default:
			summary.NoExpiry++
		}
	}
	return summary, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (DocumentResponse, error) {
	doc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*doc, s.now()), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateDocumentRequest) (DocumentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	expiresAt, err := parseOptionalDate(req.ExpiresAt)
	if err != nil {
		return DocumentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update document begin tx failed", zap.Error(err))
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	doc, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		log.Warn("update document fetch existing failed", zap.String("document_id", id), zap.Error(err))
		return DocumentResponse{}, mapRepositoryError(err)
	}

	doc.DocumentType = strings.ToUpper(strings.TrimSpace(req.DocumentType))
	doc.DocumentNumber = strings.TrimSpace(req.DocumentNumber)
	doc.ExpiresAt = expiresAt
	doc.Notes = req.Notes

	if err := qtx.Update(ctx, doc); err != nil {
		log.Error("update document persist failed", zap.Error(err))
		return DocumentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update document commit failed", zap.Error(err))
		return DocumentResponse{}, err
	}

	log.Info("update document success", zap.String("document_id", id))
	return mapToResponse(*doc, s.now()), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete document begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		log.Warn("delete document failed", zap.String("document_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete document commit failed", zap.Error(err))
		return err
	}

	log.Info("delete document success", zap.String("document_id", id))
	return nil
}

// Bulk applies the action to every id or to none of them.
func (s *service) Bulk(ctx context.Context, companyID string, req BulkActionRequest) (BulkActionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	ids := uniqueIDs(req.IDs)
	action := strings.ToUpper(strings.TrimSpace(req.Action))

	var expiresAt *time.Time
	switch action {
	case BulkActionDelete:
	case BulkActionRenew:
		t, err := parseOptionalDate(req.ExpiresAt)
		if err != nil {
			return BulkActionResponse{}, err
		}
		if t == nil {
			return BulkActionResponse{}, documenterrors.ErrExpiryRequired
		}
		expiresAt = t
	default:
		return BulkActionResponse{}, documenterrors.ErrInvalidBulkAction
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("bulk document begin tx failed", zap.Error(err))
		return BulkActionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var affected int64
	if action == BulkActionDelete {
		affected, err = qtx.BulkDelete(ctx, companyID, ids)
	} else {
		affected, err = qtx.BulkRenew(ctx, companyID, ids, *expiresAt)
	}
	if err != nil {
		log.Error("bulk document action failed", zap.String("action", action), zap.Error(err))
		return BulkActionResponse{}, err
	}
	if affected != int64(len(ids)) {
		log.Warn("bulk document action touched fewer rows than requested",
			zap.String("action", action),
			zap.Int("requested", len(ids)),
			zap.Int64("affected", affected),
		)
		return BulkActionResponse{}, documenterrors.ErrBulkDocumentsMissing
	}

	if err := tx.Commit(); err != nil {
		log.Error("bulk document commit failed", zap.Error(err))
		return BulkActionResponse{}, err
	}

	log.Info("bulk document action success", zap.String("action", action), zap.Int64("affected", affected))
	return BulkActionResponse{Action: action, Affected: affected}, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func mapToResponse(d Document, today time.Time) DocumentResponse {
	resp := DocumentResponse{
		ID:              d.ID.String(),
		CompanyID:       d.CompanyID.String(),
		EmployeeID:      d.EmployeeID.String(),
		DocumentType:    d.DocumentType,
		DocumentNumber:  d.DocumentNumber,
		Notes:           d.Notes,
		Status:          ExpiryStatus(d.ExpiresAt, today),
		DaysUntilExpiry: DaysUntilExpiry(d.ExpiresAt, today),
	}
	if d.ExpiresAt != nil {
		resp.ExpiresAt = d.ExpiresAt.Format(dateLayout)
	}
	if d.Employee != nil {
		resp.EmployeeName = d.Employee.FullName
	}
	return resp
}
