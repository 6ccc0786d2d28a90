package adjustment_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-salon/internal/adjustment"
	adjustmenterrors "go-salon/internal/adjustment/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDraftStore(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()
	key := adjustment.GetDraftKey(companyID, employeeID, adjustment.KindDeduction)

	t.Run("load missing draft returns empty list", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := adjustment.NewDraftStore(rdb)

		mock.ExpectGet(key).RedisNil()

		fields, err := store.Load(ctx, companyID, employeeID, adjustment.KindDeduction)

		assert.NoError(t, err)
		assert.Empty(t, fields)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("load existing draft", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := adjustment.NewDraftStore(rdb)

		raw, _ := json.Marshal([]adjustment.DynamicField{{ID: "r1", Amount: "30"}})
		mock.ExpectGet(key).SetVal(string(raw))

		fields, err := store.Load(ctx, companyID, employeeID, adjustment.KindDeduction)

		assert.NoError(t, err)
		assert.Len(t, fields, 1)
		assert.Equal(t, "30", fields[0].Amount)
	})

	t.Run("save writes with ttl", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := adjustment.NewDraftStore(rdb)

		fields := []adjustment.DynamicField{{ID: "r1", Description: "Advance", Amount: "15"}}
		raw, _ := json.Marshal(fields)
		mock.ExpectSet(key, raw, adjustment.DraftTTL).SetVal("OK")

		err := store.Save(ctx, companyID, employeeID, adjustment.KindDeduction, fields)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("discard deletes key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := adjustment.NewDraftStore(rdb)

		mock.ExpectDel(key).SetVal(1)

		assert.NoError(t, store.Discard(ctx, companyID, employeeID, adjustment.KindDeduction))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no redis client", func(t *testing.T) {
		store := adjustment.NewDraftStore(nil)

		_, err := store.Load(ctx, companyID, employeeID, adjustment.KindDeduction)

		assert.ErrorIs(t, err, adjustmenterrors.ErrDraftUnavailable)
		assert.NoError(t, store.Discard(ctx, companyID, employeeID, adjustment.KindDeduction))
	})
}
