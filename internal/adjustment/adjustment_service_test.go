package adjustment_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-salon/internal/adjustment"
	adjustmenterrors "go-salon/internal/adjustment/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAdjustmentRepository struct {
	createBatchFn        func(ctx context.Context, rows []adjustment.Adjustment) error
	findAllByCompanyFn   func(ctx context.Context, companyID string, filter adjustment.QueryFilter) ([]adjustment.Adjustment, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*adjustment.Adjustment, error)
	deleteFn             func(ctx context.Context, companyID, id string) error
	belongsFn            func(ctx context.Context, companyID, employeeID string) (bool, error)
}

func (f *fakeAdjustmentRepository) WithTx(tx *sql.Tx) adjustment.Repository { return f }

func (f *fakeAdjustmentRepository) CreateBatch(ctx context.Context, rows []adjustment.Adjustment) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, rows)
	}
	return nil
}

func (f *fakeAdjustmentRepository) FindAllByCompany(ctx context.Context, companyID string, filter adjustment.QueryFilter) ([]adjustment.Adjustment, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, filter)
	}
	return nil, nil
}

func (f *fakeAdjustmentRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*adjustment.Adjustment, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return &adjustment.Adjustment{}, nil
}

func (f *fakeAdjustmentRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func (f *fakeAdjustmentRepository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	if f.belongsFn != nil {
		return f.belongsFn(ctx, companyID, employeeID)
	}
	return true, nil
}

// memoryDraftStore keeps drafts in a map so command sequences can be asserted.
type memoryDraftStore struct {
	drafts    map[string][]adjustment.DynamicField
	discarded []string
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: map[string][]adjustment.DynamicField{}}
}

func (m *memoryDraftStore) Load(ctx context.Context, companyID, employeeID string, kind adjustment.Kind) ([]adjustment.DynamicField, error) {
	return m.drafts[adjustment.GetDraftKey(companyID, employeeID, kind)], nil
}

func (m *memoryDraftStore) Save(ctx context.Context, companyID, employeeID string, kind adjustment.Kind, fields []adjustment.DynamicField) error {
	m.drafts[adjustment.GetDraftKey(companyID, employeeID, kind)] = fields
	return nil
}

func (m *memoryDraftStore) Discard(ctx context.Context, companyID, employeeID string, kind adjustment.Kind) error {
	key := adjustment.GetDraftKey(companyID, employeeID, kind)
	delete(m.drafts, key)
	m.discarded = append(m.discarded, key)
	return nil
}

type adjustmentServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeAdjustmentRepository
	drafts  *memoryDraftStore
	service adjustment.Service
}

func setupAdjustmentServiceTest(t *testing.T) *adjustmentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAdjustmentRepository{}
	drafts := newMemoryDraftStore()

	return &adjustmentServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		drafts:  drafts,
		service: adjustment.NewService(db, repo, drafts),
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestAdjustmentService_BatchCreate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("success skips blank rows and clears draft", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		draftKey := adjustment.GetDraftKey(companyID, employeeID, adjustment.KindDeduction)
		deps.drafts.drafts[draftKey] = []adjustment.DynamicField{{ID: "x", Amount: "10"}}

		expectTx(t, deps.sqlMock, true)
		var saved []adjustment.Adjustment
		deps.repo.createBatchFn = func(ctx context.Context, rows []adjustment.Adjustment) error {
			saved = rows
			return nil
		}

		resp, err := deps.service.BatchCreate(ctx, companyID, adjustment.BatchCreateRequest{
			EmployeeID: employeeID,
			Month:      "2024-01",
			Kind:       "DEDUCTION",
			Fields: []adjustment.DynamicField{
				{ID: "1", Description: "Product", Amount: "60"},
				{ID: "2", Description: "Late", Amount: "40", Date: strPtr("2024-01-20")},
				{ID: "3", Description: "", Amount: ""},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Len(t, saved, 2)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), saved[0].EntryDate)
		assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), saved[1].EntryDate)
		assert.Equal(t, 60.0, resp[0].Amount)
		assert.Equal(t, []string{draftKey}, deps.drafts.discarded)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("entry date outside month", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.BatchCreate(ctx, companyID, adjustment.BatchCreateRequest{
			EmployeeID: employeeID,
			Month:      "2024-01",
			Kind:       "BONUS",
			Fields:     []adjustment.DynamicField{{Amount: "5", Date: strPtr("2024-02-01")}},
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrInvalidEntryDate)
	})

	t.Run("negative amount", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.BatchCreate(ctx, companyID, adjustment.BatchCreateRequest{
			EmployeeID: employeeID,
			Month:      "2024-01",
			Kind:       "LOAN",
			Fields:     []adjustment.DynamicField{{Amount: "-5"}},
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrNegativeAmount)
	})

	t.Run("only blank rows", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.BatchCreate(ctx, companyID, adjustment.BatchCreateRequest{
			EmployeeID: employeeID,
			Month:      "2024-01",
			Kind:       "LOAN",
			Fields:     []adjustment.DynamicField{{Amount: ""}, {Amount: "abc"}},
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrEmptyBatch)
	})

	t.Run("invalid month", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.BatchCreate(ctx, companyID, adjustment.BatchCreateRequest{
			EmployeeID: employeeID,
			Month:      "2024-13",
			Kind:       "LOAN",
			Fields:     []adjustment.DynamicField{{Amount: "1"}},
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrInvalidMonth)
	})

	t.Run("employee from another company -> rollback", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.belongsFn = func(ctx context.Context, companyID, employeeID string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.BatchCreate(ctx, companyID, adjustment.BatchCreateRequest{
			EmployeeID: employeeID,
			Month:      "2024-01",
			Kind:       "BONUS",
			Fields:     []adjustment.DynamicField{{Amount: "1"}},
		})

		assert.ErrorIs(t, err, adjustmenterrors.ErrEmployeeNotInCompany)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repo error keeps draft", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.createBatchFn = func(ctx context.Context, rows []adjustment.Adjustment) error {
			return errors.New("db error")
		}

		_, err := deps.service.BatchCreate(ctx, companyID, adjustment.BatchCreateRequest{
			EmployeeID: employeeID,
			Month:      "2024-01",
			Kind:       "BONUS",
			Fields:     []adjustment.DynamicField{{Amount: "1"}},
		})

		assert.Error(t, err)
		assert.Empty(t, deps.drafts.discarded)
	})
}

func TestAdjustmentService_GetAll_BuildsFilter(t *testing.T) {
	deps := setupAdjustmentServiceTest(t)
	defer deps.db.Close()

	companyID := uuid.NewString()
	deps.repo.findAllByCompanyFn = func(ctx context.Context, cid string, filter adjustment.QueryFilter) ([]adjustment.Adjustment, error) {
		assert.Equal(t, companyID, cid)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *filter.From)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *filter.To)
		assert.Equal(t, adjustment.KindLoan, *filter.Kind)
		assert.Nil(t, filter.EmployeeID)
		return []adjustment.Adjustment{{ID: uuid.New(), Kind: adjustment.KindLoan}}, nil
	}

	resp, err := deps.service.GetAll(context.Background(), companyID, adjustment.ListAdjustmentsFilter{Month: "2024-02", Kind: "loan"})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestAdjustmentService_GetAll_InvalidKind(t *testing.T) {
	deps := setupAdjustmentServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetAll(context.Background(), uuid.NewString(), adjustment.ListAdjustmentsFilter{Kind: "tip"})

	assert.ErrorIs(t, err, adjustmenterrors.ErrInvalidKind)
}

func TestAdjustmentService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("not found", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, companyID, id string) (*adjustment.Adjustment, error) {
			return nil, gorm.ErrRecordNotFound
		}

		err := deps.service.Delete(ctx, companyID, uuid.NewString())

		assert.ErrorIs(t, err, adjustmenterrors.ErrAdjustmentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		deps := setupAdjustmentServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, companyID, id string) error {
			deleted = true
			return nil
		}

		assert.NoError(t, deps.service.Delete(ctx, companyID, uuid.NewString()))
		assert.True(t, deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAdjustmentService_DraftCommands(t *testing.T) {
	deps := setupAdjustmentServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.NewString()
	key := adjustment.DraftKey{EmployeeID: uuid.NewString(), Kind: "BONUS"}

	fields, err := deps.service.AddDraftRow(ctx, companyID, key)
	assert.NoError(t, err)
	assert.Len(t, fields, 1)

	fields, err = deps.service.AddDraftRow(ctx, companyID, key)
	assert.NoError(t, err)
	assert.Len(t, fields, 2)

	fields, err = deps.service.UpdateDraftField(ctx, companyID, key, adjustment.UpdateDraftFieldRequest{Index: 1, Key: "amount", Value: "75"})
	assert.NoError(t, err)
	assert.Equal(t, "75", fields[1].Amount)

	fields, err = deps.service.RemoveDraftRow(ctx, companyID, key, 0)
	assert.NoError(t, err)
	assert.Len(t, fields, 1)
	assert.Equal(t, "75", fields[0].Amount)

	stored, err := deps.service.GetDraft(ctx, companyID, key)
	assert.NoError(t, err)
	assert.Equal(t, fields, stored)

	_, err = deps.service.RemoveDraftRow(ctx, companyID, key, 5)
	assert.ErrorIs(t, err, adjustmenterrors.ErrRowOutOfRange)

	assert.NoError(t, deps.service.DiscardDraft(ctx, companyID, key))
	stored, _ = deps.service.GetDraft(ctx, companyID, key)
	assert.Empty(t, stored)
}
