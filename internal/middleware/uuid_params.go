package middleware

import (
	"go-salon/internal/shared/apperror"
	"go-salon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDParams rejects a request whose named path params are present but not
// uuids, before the value can reach a uuid column.
func UUIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			v := c.Param(name)
			if v == "" {
				continue
			}
			if _, err := uuid.Parse(v); err != nil {
				e := apperror.InvalidField(name)
				response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
