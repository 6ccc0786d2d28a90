package middleware

import (
	"go-salon/internal/shared/apperror"
	"go-salon/internal/shared/contextutil"
	"go-salon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CompanyHeader = "X-Company-ID"

// CompanyContext resolves the tenant from the X-Company-ID header and stores
// it as "company_id" on both the gin context and the request context.
func CompanyContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(CompanyHeader)
		companyID, err := uuid.Parse(raw)
		if err != nil || companyID == uuid.Nil {
			e := apperror.ErrMissingCompany
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		cid := companyID.String()
		c.Set("company_id", cid)
		c.Request = c.Request.WithContext(contextutil.WithCompanyID(c.Request.Context(), cid))

		c.Next()
	}
}
