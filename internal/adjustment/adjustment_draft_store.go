package adjustment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	adjustmenterrors "go-salon/internal/adjustment/errors"

	"github.com/redis/go-redis/v9"
)

const (
	DraftKeyPrefix = "adjustments:draft:"
	DraftTTL       = 7 * 24 * time.Hour
)

func GetDraftKey(companyID, employeeID string, kind Kind) string {
	return fmt.Sprintf("%s%s:%s:%s", DraftKeyPrefix, companyID, employeeID, kind)
}

// DraftStore keeps unsaved DynamicField rows per employee and kind in redis.
type DraftStore interface {
	Load(ctx context.Context, companyID, employeeID string, kind Kind) ([]DynamicField, error)
	Save(ctx context.Context, companyID, employeeID string, kind Kind, fields []DynamicField) error
	Discard(ctx context.Context, companyID, employeeID string, kind Kind) error
}

type redisDraftStore struct {
	rdb *redis.Client
}

func NewDraftStore(rdb *redis.Client) DraftStore {
	return &redisDraftStore{rdb: rdb}
}

func (s *redisDraftStore) Load(ctx context.Context, companyID, employeeID string, kind Kind) ([]DynamicField, error) {
	if s.rdb == nil {
		return nil, adjustmenterrors.ErrDraftUnavailable
	}

	raw, err := s.rdb.Get(ctx, GetDraftKey(companyID, employeeID, kind)).Result()
	if errors.Is(err, redis.Nil) {
		return []DynamicField{}, nil
	}
	if err != nil {
		return nil, err
	}

	var fields []DynamicField
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (s *redisDraftStore) Save(ctx context.Context, companyID, employeeID string, kind Kind, fields []DynamicField) error {
	if s.rdb == nil {
		return adjustmenterrors.ErrDraftUnavailable
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, GetDraftKey(companyID, employeeID, kind), payload, DraftTTL).Err()
}

func (s *redisDraftStore) Discard(ctx context.Context, companyID, employeeID string, kind Kind) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, GetDraftKey(companyID, employeeID, kind)).Err()
}
