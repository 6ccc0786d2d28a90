package document_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-salon/internal/document"
	documenterrors "go-salon/internal/document/errors"

	documentMock "go-salon/internal/document/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var fixedToday = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service document.Service
	repo    *documentMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := documentMock.NewMockRepository(ctrl)

	svc := document.NewService(db, repo)
	document.SetClock(svc, func() time.Time { return fixedToday })

	return &serviceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func TestDocumentService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, companyID, employeeID).Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *document.Document) error {
				assert.Equal(t, "WORK_PERMIT", d.DocumentType)
				assert.Equal(t, "WP-001", d.DocumentNumber)
				assert.Equal(t, *date(2025, 3, 25), *d.ExpiresAt)
				return nil
			})

		resp, err := deps.service.Create(ctx, companyID, document.CreateDocumentRequest{
			EmployeeID:     employeeID,
			DocumentType:   " work_permit ",
			DocumentNumber: "WP-001",
			ExpiresAt:      "2025-03-25",
		})

		assert.NoError(t, err)
		assert.Equal(t, document.StatusExpiringSoon, resp.Status)
		assert.Equal(t, 15, *resp.DaysUntilExpiry)
		assert.Equal(t, "2025-03-25", resp.ExpiresAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee not in company", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, companyID, employeeID).Return(false, nil)

		_, err := deps.service.Create(ctx, companyID, document.CreateDocumentRequest{
			EmployeeID:   employeeID,
			DocumentType: "VISA",
		})

		assert.ErrorIs(t, err, documenterrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid expiry date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, document.CreateDocumentRequest{
			EmployeeID:   employeeID,
			DocumentType: "VISA",
			ExpiresAt:    "25/03/2025",
		})

		assert.ErrorIs(t, err, documenterrors.ErrInvalidDate)
	})

	t.Run("duplicate number", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, companyID, employeeID).Return(true, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_document_number"})

		_, err := deps.service.Create(ctx, companyID, document.CreateDocumentRequest{
			EmployeeID:     employeeID,
			DocumentType:   "VISA",
			DocumentNumber: "V-1",
		})

		assert.ErrorIs(t, err, documenterrors.ErrDocumentAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func sampleDocuments() []document.Document {
	return []document.Document{
		{ID: uuid.New(), DocumentType: "VISA", ExpiresAt: date(2025, 3, 1)},
		{ID: uuid.New(), DocumentType: "PASSPORT", ExpiresAt: date(2025, 3, 10)},
		{ID: uuid.New(), DocumentType: "HEALTH_CARD", ExpiresAt: date(2025, 4, 1)},
		{ID: uuid.New(), DocumentType: "WORK_PERMIT", ExpiresAt: date(2025, 6, 1)},
		{ID: uuid.New(), DocumentType: "CERTIFICATE", Employee: &document.DocumentEmployee{FullName: "Rina"}},
	}
}

func TestDocumentService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("status filter applied after query", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		filter := document.ListDocumentsFilter{Status: document.StatusExpired}
		deps.repo.EXPECT().FindAllByCompany(ctx, companyID, filter).Return(sampleDocuments(), nil)

		resp, err := deps.service.GetAll(ctx, companyID, filter)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "VISA", resp[0].DocumentType)
		assert.Equal(t, -9, *resp[0].DaysUntilExpiry)
		assert.Equal(t, "PASSPORT", resp[1].DocumentType)
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindAllByCompany(ctx, companyID, document.ListDocumentsFilter{}).Return(sampleDocuments(), nil)

		resp, err := deps.service.GetAll(ctx, companyID, document.ListDocumentsFilter{})

		assert.NoError(t, err)
		assert.Len(t, resp, 5)
		assert.Equal(t, document.StatusNoExpiry, resp[4].Status)
		assert.Nil(t, resp[4].DaysUntilExpiry)
		assert.Equal(t, "Rina", resp[4].EmployeeName)
	})

	t.Run("repo error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindAllByCompany(ctx, companyID, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx, companyID, document.ListDocumentsFilter{})

		assert.EqualError(t, err, "db down")
	})
}

func TestDocumentService_GetSummary(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().FindAllByCompany(ctx, companyID, document.ListDocumentsFilter{}).Return(sampleDocuments(), nil)

	summary, err := deps.service.GetSummary(ctx, companyID)

	assert.NoError(t, err)
	assert.Equal(t, document.DocumentSummaryResponse{
		Total:        5,
		Expired:      2,
		ExpiringSoon: 1,
		Valid:        1,
		NoExpiry:     1,
	}, summary)
}

func TestDocumentService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success clears expiry", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &document.Document{ID: uuid.MustParse(id), DocumentType: "VISA", ExpiresAt: date(2025, 3, 1)}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, existing).Return(nil)

		resp, err := deps.service.Update(ctx, companyID, id, document.UpdateDocumentRequest{
			DocumentType: "visa",
			Notes:        "permanent resident",
		})

		assert.NoError(t, err)
		assert.Equal(t, document.StatusNoExpiry, resp.Status)
		assert.Equal(t, "permanent resident", resp.Notes)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, companyID, id, document.UpdateDocumentRequest{DocumentType: "VISA"})

		assert.ErrorIs(t, err, documenterrors.ErrDocumentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, companyID, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, companyID, id)

		assert.ErrorIs(t, err, documenterrors.ErrDocumentNotFound)
	})
}

func TestDocumentService_Bulk(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	idA := uuid.New().String()
	idB := uuid.New().String()

	t.Run("delete deduplicates ids", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().BulkDelete(ctx, companyID, []string{idA, idB}).Return(int64(2), nil)

		resp, err := deps.service.Bulk(ctx, companyID, document.BulkActionRequest{
			Action: document.BulkActionDelete,
			IDs:    []string{idA, idB, idA},
		})

		assert.NoError(t, err)
		assert.Equal(t, document.BulkActionResponse{Action: "DELETE", Affected: 2}, resp)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("renew sets new expiry", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			BulkRenew(ctx, companyID, []string{idA}, *date(2026, 3, 10)).
			Return(int64(1), nil)

		resp, err := deps.service.Bulk(ctx, companyID, document.BulkActionRequest{
			Action:    document.BulkActionRenew,
			IDs:       []string{idA},
			ExpiresAt: "2026-03-10",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.Affected)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("renew without expiry", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Bulk(ctx, companyID, document.BulkActionRequest{
			Action: document.BulkActionRenew,
			IDs:    []string{idA},
		})

		assert.ErrorIs(t, err, documenterrors.ErrExpiryRequired)
	})

	t.Run("unknown action", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Bulk(ctx, companyID, document.BulkActionRequest{
			Action: "ARCHIVE",
			IDs:    []string{idA},
		})

		assert.ErrorIs(t, err, documenterrors.ErrInvalidBulkAction)
	})

	t.Run("partial match rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().BulkDelete(ctx, companyID, []string{idA, idB}).Return(int64(1), nil)

		_, err := deps.service.Bulk(ctx, companyID, document.BulkActionRequest{
			Action: document.BulkActionDelete,
			IDs:    []string{idA, idB},
		})

		assert.ErrorIs(t, err, documenterrors.ErrBulkDocumentsMissing)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
