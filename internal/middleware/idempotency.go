package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-salon/internal/shared/apperror"
	"go-salon/internal/shared/contextutil"
	"go-salon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader   = "Idempotency-Key"
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
	IdempotencyTTL     = 24 * time.Hour
)

// idempotentResponse is what a replay needs to answer exactly like the first request.
type idempotentResponse struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency replays the stored response for a repeated Idempotency-Key and
// rejects a duplicate that arrives while the first request is still running.
// Handlers store their response under IdempotencyCacheKey and release the lock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L().Named("middleware.idempotency"))

		companyID := c.GetString("company_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), companyID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached idempotentResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil && cached.Status != 0 {
				log.Debug("idempotent replay", zap.String("key", idempKey))
				response.Success(c, cached.Status, cached.Data, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// redis down: process the request without the guarantee
			log.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict, "request with this idempotency key is still processing", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}

// StoreIdempotentResponse caches status and payload for the request's
// idempotency key, if any, and releases the processing lock.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, status int, payload any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()

	if lk := c.GetString(IdempotencyLockKey); lk != "" {
		defer rdb.Del(ctx, lk)
	}

	ck := c.GetString(IdempotencyCacheKey)
	if ck == "" || payload == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if raw, err := json.Marshal(idempotentResponse{Status: status, Data: data}); err == nil {
		_ = rdb.Set(ctx, ck, raw, IdempotencyTTL).Err()
	}
}

// ReleaseIdempotencyLock drops the lock without caching, used on failures so
// the client may retry with the same key.
func ReleaseIdempotencyLock(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if lk := c.GetString(IdempotencyLockKey); lk != "" {
		_ = rdb.Del(c.Request.Context(), lk).Err()
	}
}
