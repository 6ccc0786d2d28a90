package document_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-salon/internal/document"
	documenterrors "go-salon/internal/document/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDocumentService struct {
	document.Service
	GetAllFn func(ctx context.Context, companyID string, filter document.ListDocumentsFilter) ([]document.DocumentResponse, error)
	CreateFn func(ctx context.Context, companyID string, req document.CreateDocumentRequest) (document.DocumentResponse, error)
	BulkFn   func(ctx context.Context, companyID string, req document.BulkActionRequest) (document.BulkActionResponse, error)
}

func (f *fakeDocumentService) GetAll(ctx context.Context, companyID string, filter document.ListDocumentsFilter) ([]document.DocumentResponse, error) {
	return f.GetAllFn(ctx, companyID, filter)
}
func (f *fakeDocumentService) Create(ctx context.Context, companyID string, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeDocumentService) Bulk(ctx context.Context, companyID string, req document.BulkActionRequest) (document.BulkActionResponse, error) {
	return f.BulkFn(ctx, companyID, req)
}

func newContext(method, target, body, companyID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	c.Set("company_id", companyID)
	return c, w
}

func TestDocumentHandler_Create(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("created", func(t *testing.T) {
		svc := &fakeDocumentService{
			CreateFn: func(ctx context.Context, cid string, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, "VISA", req.DocumentType)
				return document.DocumentResponse{ID: "doc-1", Status: document.StatusValid}, nil
			},
		}
		h := document.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/documents",
			`{"employee_id":"`+employeeID+`","document_type":"VISA","expires_at":"2026-01-01"}`, companyID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"VALID"`)
	})

	t.Run("missing document type", func(t *testing.T) {
		h := document.NewHandler(&fakeDocumentService{})
		c, w := newContext(http.MethodPost, "/documents", `{"employee_id":"`+employeeID+`"}`, companyID)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("employee not found", func(t *testing.T) {
		svc := &fakeDocumentService{
			CreateFn: func(ctx context.Context, cid string, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
				return document.DocumentResponse{}, documenterrors.ErrEmployeeNotFound
			},
		}
		h := document.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/documents",
			`{"employee_id":"`+employeeID+`","document_type":"VISA"}`, companyID)

		h.Create(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDocumentHandler_GetAll(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("passes status filter and paginates", func(t *testing.T) {
		svc := &fakeDocumentService{
			GetAllFn: func(ctx context.Context, cid string, filter document.ListDocumentsFilter) ([]document.DocumentResponse, error) {
				assert.Equal(t, document.StatusExpiringSoon, filter.Status)
				return []document.DocumentResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
			},
		}
		h := document.NewHandler(svc)
		c, w := newContext(http.MethodGet, "/documents?status=EXPIRING_SOON&page=2&page_size=2", "", companyID)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []document.DocumentResponse `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
				Page  int   `json:"page"`
			} `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data, 1)
		assert.Equal(t, "c", body.Data[0].ID)
		assert.Equal(t, int64(3), body.Meta.Total)
		assert.Equal(t, 2, body.Meta.Page)
	})

	t.Run("unknown status", func(t *testing.T) {
		h := document.NewHandler(&fakeDocumentService{})
		c, w := newContext(http.MethodGet, "/documents?status=ARCHIVED", "", companyID)

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDocumentHandler_Bulk(t *testing.T) {
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("renew", func(t *testing.T) {
		svc := &fakeDocumentService{
			BulkFn: func(ctx context.Context, cid string, req document.BulkActionRequest) (document.BulkActionResponse, error) {
				assert.Equal(t, []string{id}, req.IDs)
				assert.Equal(t, "2026-03-10", req.ExpiresAt)
				return document.BulkActionResponse{Action: req.Action, Affected: 1}, nil
			},
		}
		h := document.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/documents/bulk",
			`{"action":"RENEW","ids":["`+id+`"],"expires_at":"2026-03-10"}`, companyID)

		h.Bulk(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"affected":1`)
	})

	t.Run("empty ids", func(t *testing.T) {
		h := document.NewHandler(&fakeDocumentService{})
		c, w := newContext(http.MethodPost, "/documents/bulk", `{"action":"DELETE","ids":[]}`, companyID)

		h.Bulk(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported action", func(t *testing.T) {
		h := document.NewHandler(&fakeDocumentService{})
		c, w := newContext(http.MethodPost, "/documents/bulk", `{"action":"ARCHIVE","ids":["`+id+`"]}`, companyID)

		h.Bulk(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing rows", func(t *testing.T) {
		svc := &fakeDocumentService{
			BulkFn: func(ctx context.Context, cid string, req document.BulkActionRequest) (document.BulkActionResponse, error) {
				return document.BulkActionResponse{}, documenterrors.ErrBulkDocumentsMissing
			},
		}
		h := document.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/documents/bulk", `{"action":"DELETE","ids":["`+id+`"]}`, companyID)

		h.Bulk(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
