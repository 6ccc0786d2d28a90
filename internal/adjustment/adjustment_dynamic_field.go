package adjustment

import (
	"strings"

	adjustmenterrors "go-salon/internal/adjustment/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DynamicField is a deduction, bonus or loan line entered by hand and not
// yet persisted. Amount stays a string because it mirrors raw form input.
type DynamicField struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Date        *string `json:"date,omitempty"`
}

type FieldKey string

const (
	FieldDescription FieldKey = "description"
	FieldAmount      FieldKey = "amount"
	FieldDate        FieldKey = "date"
)

// The commands below never mutate their input; each returns a new slice.

func AddRow(fields []DynamicField) []DynamicField {
	out := make([]DynamicField, len(fields), len(fields)+1)
	copy(out, fields)
	return append(out, DynamicField{ID: uuid.NewString()})
}

func RemoveRow(fields []DynamicField, index int) ([]DynamicField, error) {
	if index < 0 || index >= len(fields) {
		return nil, adjustmenterrors.ErrRowOutOfRange
	}

	out := make([]DynamicField, 0, len(fields)-1)
	out = append(out, fields[:index]...)
	return append(out, fields[index+1:]...), nil
}

func UpdateField(fields []DynamicField, index int, key FieldKey, value string) ([]DynamicField, error) {
	if index < 0 || index >= len(fields) {
		return nil, adjustmenterrors.ErrRowOutOfRange
	}

	out := make([]DynamicField, len(fields))
	copy(out, fields)

	row := out[index]
	switch key {
	case FieldDescription:
		row.Description = value
	case FieldAmount:
		row.Amount = value
	case FieldDate:
		if strings.TrimSpace(value) == "" {
			row.Date = nil
		} else {
			v := value
			row.Date = &v
		}
	default:
		return nil, adjustmenterrors.ErrUnknownFieldKey
	}
	out[index] = row

	return out, nil
}

// ParseAmount reads a form amount. Blank or unparsable input counts as zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func SumAmounts(fields []DynamicField) float64 {
	total := decimal.Zero
	for _, f := range fields {
		total = total.Add(ParseAmount(f.Amount))
	}
	return total.InexactFloat64()
}
