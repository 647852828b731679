package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"smeta/internal/domain/entities"
)

type CompanyRequest struct {
	Name    string `json:"name"`
	Tax     string `json:"tax"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (r CompanyRequest) ToEntity() entities.Company {
	return entities.Company{
		Name:    r.Name,
		Tax:     r.Tax,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

type ClientRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{Name: r.Name, Contact: r.Contact, Address: r.Address}
}

var (
	maxDays = decimal.NewFromInt(math.MaxInt32)
	minDays = decimal.NewFromInt(math.MinInt32)
)

// EstimateDetailsRequest replaces the estimate header. Numbers may be sent as
// JSON numbers or as text typed into a form ("20", "12,5").
type EstimateDetailsRequest struct {
	Number         string          `json:"number"`
	Date           string          `json:"date"`
	ProjectName    string          `json:"projectName"`
	ProjectAddress string          `json:"projectAddress"`
	Currency       string          `json:"currency"`
	VATRate        entities.Number `json:"vatRate"`
	VATIncluded    bool            `json:"vatIncluded"`
	ValidDays      entities.Number `json:"validDays"`
}

func (r EstimateDetailsRequest) ToEntity() entities.EstimateDetails {
	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		currency = entities.DefaultCurrency
	}
	return entities.EstimateDetails{
		Number:         r.Number,
		Date:           r.Date,
		ProjectName:    r.ProjectName,
		ProjectAddress: r.ProjectAddress,
		Currency:       currency,
		VATRate:        r.VATRate,
		VATIncluded:    r.VATIncluded,
		ValidDays:      days(r.ValidDays),
	}
}

// days truncates n to whole days; values outside int32 count as zero.
func days(n entities.Number) int {
	d := n.OrZero().Truncate(0)
	if d.GreaterThan(maxDays) || d.LessThan(minDays) {
		return 0
	}
	return int(d.IntPart())
}

// NotesRequest changes only the texts that are present.
type NotesRequest struct {
	Notes *string `json:"notes"`
	Terms *string `json:"terms"`
}

// ItemFieldRequest edits one field of a line item. Value is the raw input:
// a JSON string or a bare JSON number.
type ItemFieldRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

func (r ItemFieldRequest) ResolveField() string {
	return strings.TrimSpace(r.Field)
}

// ResolveValue returns the value as the text a user would have typed.
func (r ItemFieldRequest) ResolveValue() string {
	raw := bytes.TrimSpace(r.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

type CustomFieldRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type CustomFieldValueRequest struct {
	Value string `json:"value"`
}
