package entities

import (
	"bytes"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"

	"smeta/pkg/numeric"
)

// Number is a numeric document field as typed by a person. It accepts JSON
// numbers, numeric strings ("12,5") and null. Values that are not numbers
// are remembered as such and serialize back as null.
type Number struct {
	value decimal.Decimal
	valid bool
}

func NewNumber(d decimal.Decimal) Number {
	return Number{value: d, valid: true}
}

func NumberFromInt(v int64) Number {
	return NewNumber(decimal.NewFromInt(v))
}

// NumberFromString applies the numeric input rules.
func NumberFromString(s string) Number {
	d, ok := numeric.Parse(s)
	return Number{value: d, valid: ok}
}

func (n Number) Valid() bool { return n.valid }

func (n Number) Decimal() (decimal.Decimal, bool) {
	return n.value, n.valid
}

func (n Number) OrZero() decimal.Decimal {
	if !n.valid {
		return decimal.Zero
	}
	return n.value
}

func (n Number) Equal(o Number) bool {
	if n.valid != o.valid {
		return false
	}
	return !n.valid || n.value.Equal(o.value)
}

func (n Number) String() string {
	if !n.valid {
		return "NaN"
	}
	return n.value.String()
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberFromString(s)
		return nil
	}
	switch data[0] {
	case 't', 'f', '{', '[':
		*n = Number{}
		return nil
	}
	*n = NumberFromString(string(data))
	return nil
}

func (Number) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "string"},
			{Type: "null"},
		},
	}
}
