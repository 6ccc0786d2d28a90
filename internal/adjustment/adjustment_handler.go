package adjustment

import (
	"net/http"
	"strconv"

	"go-salon/internal/middleware"
	"go-salon/internal/shared/apperror"
	"go-salon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("adjustment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("adjustment.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("adjustment request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) BatchCreate(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req BatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.ReleaseIdempotencyLock(c, h.rdb)
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.BatchCreate(c.Request.Context(), companyID, req)
	if err != nil {
		middleware.ReleaseIdempotencyLock(c, h.rdb)
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, http.StatusCreated, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString("company_id")

	var filter ListAdjustmentsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), companyID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Delete(c *gin.Context) {
	companyID := c.GetString("company_id")

	if err := h.service.Delete(c.Request.Context(), companyID, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetDraft(c *gin.Context) {
	var key DraftKey
	if err := c.ShouldBindUri(&key); err != nil {
		h.writeBindError(c, err)
		return
	}

	fields, err := h.service.GetDraft(c.Request.Context(), c.GetString("company_id"), key)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftPayload(fields), nil)
}

func (h *Handler) AddDraftRow(c *gin.Context) {
	var key DraftKey
	if err := c.ShouldBindUri(&key); err != nil {
		h.writeBindError(c, err)
		return
	}

	fields, err := h.service.AddDraftRow(c.Request.Context(), c.GetString("company_id"), key)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftPayload(fields), nil)
}

func (h *Handler) UpdateDraftField(c *gin.Context) {
	var key DraftKey
	if err := c.ShouldBindUri(&key); err != nil {
		h.writeBindError(c, err)
		return
	}
	var req UpdateDraftFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	fields, err := h.service.UpdateDraftField(c.Request.Context(), c.GetString("company_id"), key, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftPayload(fields), nil)
}

func (h *Handler) RemoveDraftRow(c *gin.Context) {
	var key DraftKey
	if err := c.ShouldBindUri(&key); err != nil {
		h.writeBindError(c, err)
		return
	}
	var req RemoveDraftRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	fields, err := h.service.RemoveDraftRow(c.Request.Context(), c.GetString("company_id"), key, req.Index)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, draftPayload(fields), nil)
}

func (h *Handler) DiscardDraft(c *gin.Context) {
	var key DraftKey
	if err := c.ShouldBindUri(&key); err != nil {
		h.writeBindError(c, err)
		return
	}

	if err := h.service.DiscardDraft(c.Request.Context(), c.GetString("company_id"), key); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"discarded": true}, nil)
}

func draftPayload(fields []DynamicField) gin.H {
	return gin.H{"fields": fields, "total": SumAmounts(fields)}
}
