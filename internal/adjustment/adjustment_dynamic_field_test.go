package adjustment_test

import (
	"testing"

	"go-salon/internal/adjustment"
	adjustmenterrors "go-salon/internal/adjustment/errors"

	"github.com/stretchr/testify/assert"
)

func strPtr(v string) *string { return &v }

func TestAddRow(t *testing.T) {
	base := []adjustment.DynamicField{{ID: "a", Description: "Uniform", Amount: "50"}}

	next := adjustment.AddRow(base)

	assert.Len(t, base, 1, "input must not change")
	assert.Len(t, next, 2)
	assert.NotEmpty(t, next[1].ID)
	assert.Empty(t, next[1].Amount)
	assert.Equal(t, base[0], next[0])
}

func TestAddRow_Empty(t *testing.T) {
	next := adjustment.AddRow(nil)

	assert.Len(t, next, 1)
}

func TestRemoveRow(t *testing.T) {
	base := []adjustment.DynamicField{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("middle row", func(t *testing.T) {
		next, err := adjustment.RemoveRow(base, 1)

		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, ids(next))
		assert.Equal(t, []string{"a", "b", "c"}, ids(base))
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := adjustment.RemoveRow(base, 3)
		assert.ErrorIs(t, err, adjustmenterrors.ErrRowOutOfRange)

		_, err = adjustment.RemoveRow(base, -1)
		assert.ErrorIs(t, err, adjustmenterrors.ErrRowOutOfRange)
	})
}

func TestUpdateField(t *testing.T) {
	base := []adjustment.DynamicField{{ID: "a", Description: "Advance", Amount: "10", Date: strPtr("2024-01-03")}}

	t.Run("amount", func(t *testing.T) {
		next, err := adjustment.UpdateField(base, 0, adjustment.FieldAmount, "125.50")

		assert.NoError(t, err)
		assert.Equal(t, "125.50", next[0].Amount)
		assert.Equal(t, "10", base[0].Amount)
	})

	t.Run("description", func(t *testing.T) {
		next, err := adjustment.UpdateField(base, 0, adjustment.FieldDescription, "Late fee")

		assert.NoError(t, err)
		assert.Equal(t, "Late fee", next[0].Description)
	})

	t.Run("blank date clears it", func(t *testing.T) {
		next, err := adjustment.UpdateField(base, 0, adjustment.FieldDate, " ")

		assert.NoError(t, err)
		assert.Nil(t, next[0].Date)
		assert.NotNil(t, base[0].Date)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := adjustment.UpdateField(base, 0, adjustment.FieldKey("id"), "x")
		assert.ErrorIs(t, err, adjustmenterrors.ErrUnknownFieldKey)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := adjustment.UpdateField(base, 4, adjustment.FieldAmount, "1")
		assert.ErrorIs(t, err, adjustmenterrors.ErrRowOutOfRange)
	})
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"":         0,
		"   ":      0,
		"abc":      0,
		"100":      100,
		"1,250.75": 1250.75,
		" 42.5 ":   42.5,
	}
	for in, want := range cases {
		assert.Equal(t, want, adjustment.ParseAmount(in).InexactFloat64(), "input %q", in)
	}
}

func TestSumAmounts(t *testing.T) {
	fields := []adjustment.DynamicField{
		{Amount: "60"},
		{Amount: "40.25"},
		{Amount: ""},
		{Amount: "oops"},
	}

	assert.Equal(t, 100.25, adjustment.SumAmounts(fields))
	assert.Equal(t, 0.0, adjustment.SumAmounts(nil))
}

func ids(fields []adjustment.DynamicField) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.ID
	}
	return out
}
