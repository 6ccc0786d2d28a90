package salaryplan_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-salon/internal/salaryplan"
	salaryplanerrors "go-salon/internal/salaryplan/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

type fakeSalaryPlanService struct {
	salaryplan.Service
	createFn  func(ctx context.Context, companyID string, req salaryplan.CreateSalaryPlanRequest) (salaryplan.SalaryPlanResponse, error)
	previewFn func(ctx context.Context, companyID, id string, req salaryplan.PreviewRequest) (salaryplan.PreviewResponse, error)
	deleteFn  func(ctx context.Context, companyID, id string) error
}

func (f *fakeSalaryPlanService) Create(ctx context.Context, companyID string, req salaryplan.CreateSalaryPlanRequest) (salaryplan.SalaryPlanResponse, error) {
	return f.createFn(ctx, companyID, req)
}

func (f *fakeSalaryPlanService) Preview(ctx context.Context, companyID, id string, req salaryplan.PreviewRequest) (salaryplan.PreviewResponse, error) {
	return f.previewFn(ctx, companyID, id, req)
}

func (f *fakeSalaryPlanService) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}

func TestSalaryPlanHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.NewString()

	svc := &fakeSalaryPlanService{
		createFn: func(ctx context.Context, cid string, req salaryplan.CreateSalaryPlanRequest) (salaryplan.SalaryPlanResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, 0.05, req.Config.CommissionRate)
			return salaryplan.SalaryPlanResponse{ID: uuid.NewString(), Name: req.Name, Type: req.Type}, nil
		},
	}
	h := salaryplan.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"name":"Stylist","type":"COMMISSION","config":{"basic_salary":3000,"commission_rate":0.05}}`
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-plans", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("company_id", companyID)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mustDecodeEnvelope(t, w.Body.Bytes()).Ok)
}

func TestSalaryPlanHandler_Create_MissingName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := salaryplan.NewHandler(&fakeSalaryPlanService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/salary-plans", strings.NewReader(`{"type":"FIXED"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Contains(t, env.Error.Message, "Name")
}

func TestSalaryPlanHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	planID := uuid.NewString()

	svc := &fakeSalaryPlanService{
		previewFn: func(ctx context.Context, cid, id string, req salaryplan.PreviewRequest) (salaryplan.PreviewResponse, error) {
			assert.Equal(t, planID, id)
			assert.Equal(t, 12000.0, req.Sales)
			return salaryplan.PreviewResponse{PlanID: id, Sales: req.Sales, Result: salaryplan.Components{Total: 3800}}, nil
		},
	}
	h := salaryplan.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/salary-plans/"+planID+"/preview", strings.NewReader(`{"sales":12000}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: planID}}

	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var resp salaryplan.PreviewResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 3800.0, resp.Result.Total)
}

func TestSalaryPlanHandler_Delete_InUse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeSalaryPlanService{
		deleteFn: func(ctx context.Context, cid, id string) error {
			return salaryplanerrors.ErrSalaryPlanInUse
		},
	}
	h := salaryplan.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/salary-plans/x", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, salaryplanerrors.ErrSalaryPlanInUse.Code, env.Error.Code)
}
