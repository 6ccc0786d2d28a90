package document

import (
	"context"
	"database/sql"
	"time"

	"go-salon/internal/shared/txdb"
	"go-salon/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, doc *Document) error
	FindAllByCompany(ctx context.Context, companyID string, filter ListDocumentsFilter) ([]Document, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Document, error)
	EmployeeExists(ctx context.Context, companyID, employeeID string) (bool, error)
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, companyID, id string) error
	BulkDelete(ctx context.Context, companyID string, ids []string) (int64, error)
	BulkRenew(ctx context.Context, companyID string, ids []string, expiresAt time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return txdb.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, doc *Document) error {
	return r.conn(ctx).Omit("Employee").Create(doc).Error
}

// FindAllByCompany orders by expiry so the most urgent documents come first;
// documents without an expiry date go last.
func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListDocumentsFilter) ([]Document, error) {
	q := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID))
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DocumentType != "" {
		q = q.Where("document_type = ?", filter.DocumentType)
	}

	var docs []Document
	err := q.Order("expires_at ASC NULLS LAST").Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Document, error) {
	var doc Document
	err := r.conn(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(companyID)).
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) EmployeeExists(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, doc *Document) error {
	return r.conn(ctx).Omit("Employee").Save(doc).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Document{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) BulkDelete(ctx context.Context, companyID string, ids []string) (int64, error) {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Delete(&Document{})
	return res.RowsAffected, res.Error
}

func (r *repository) BulkRenew(ctx context.Context, companyID string, ids []string, expiresAt time.Time) (int64, error) {
	res := r.conn(ctx).
		Model(&Document{}).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"expires_at": expiresAt,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}
