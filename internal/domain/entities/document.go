package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency  = "RUB"
	DefaultVATRate   = 20
	DefaultValidDays = 30
	DefaultItemUnit  = "шт"

	dateLayout = "2006-01-02"
)

// Document is the whole estimate draft. It is the unit that is kept in
// memory, mirrored to a storage slot and exported/imported as JSON.
//
// JSON keys match the browser editor's drafts so that files exported
// there import unchanged.
type Document struct {
	Company      Company         `json:"company"`
	Client       Client          `json:"client"`
	Estimate     EstimateDetails `json:"estimate"`
	Items        []LineItem      `json:"items"`
	CustomFields []CustomField   `json:"customFields"`
	Notes        string          `json:"notes"`
	Terms        string          `json:"terms"`
}

type Company struct {
	Name    string `json:"name"`
	Tax     string `json:"tax"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Client struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// EstimateDetails is the estimate header, including the document-level VAT
// configuration used by pricing.
type EstimateDetails struct {
	Number         string `json:"number"`
	Date           string `json:"date"`
	ProjectName    string `json:"projectName"`
	ProjectAddress string `json:"projectAddress"`
	Currency       string `json:"currency"`
	VATRate        Number `json:"vatRate"`
	VATIncluded    bool   `json:"vatIncluded"`
	ValidDays      int    `json:"validDays"`
}

// LineItem is one priced row of the estimate.
//
// VATPercent may be unset; pricing then uses the document VAT rate.
type LineItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Unit            string `json:"unit"`
	Quantity        Number `json:"quantity"`
	UnitPrice       Number `json:"unitPrice"`
	DiscountPercent Number `json:"discountPercent"`
	DiscountAmount  Number `json:"discountAmount"`
	VATPercent      Number `json:"vatPercent"`
}

type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewDocument returns the defaults a fresh draft starts from.
func NewDocument(now time.Time) Document {
	return Document{
		Estimate: EstimateDetails{
			Date:        now.Format(dateLayout),
			Currency:    DefaultCurrency,
			VATRate:     NumberFromInt(DefaultVATRate),
			VATIncluded: false,
			ValidDays:   DefaultValidDays,
		},
		Items:        []LineItem{},
		CustomFields: []CustomField{},
	}
}

// NewLineItem returns an item with quantity 1, no price, no discount and
// the given VAT rate.
func NewLineItem(vatRate Number) LineItem {
	return LineItem{
		ID:              NewItemID(),
		Unit:            DefaultItemUnit,
		Quantity:        NumberFromInt(1),
		UnitPrice:       NewNumber(decimal.Zero),
		DiscountPercent: NewNumber(decimal.Zero),
		DiscountAmount:  NewNumber(decimal.Zero),
		VATPercent:      vatRate,
	}
}

func NewItemID() string {
	return "item_" + uuid.NewString()
}

// Clone returns a copy that shares no slices with d.
func (d Document) Clone() Document {
	out := d
	out.Items = append([]LineItem{}, d.Items...)
	out.CustomFields = append([]CustomField{}, d.CustomFields...)
	return out
}

// Reset starts a new estimate: items, custom fields, notes and terms are
// cleared; company, client and estimate header are kept.
func (d *Document) Reset() {
	d.Items = []LineItem{}
	d.CustomFields = []CustomField{}
	d.Notes = ""
	d.Terms = ""
}

// FindItem returns the index of the item with the given id, or -1.
func (d Document) FindItem(id string) int {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// ExportBaseName is the estimate number, or smeta-YYYY-MM-DD when the
// estimate has no number yet. Path separators and control characters are
// replaced so the name is usable as a download filename.
func (d Document) ExportBaseName(now time.Time) string {
	name := strings.TrimSpace(d.Estimate.Number)
	if name == "" {
		return "smeta-" + now.Format(dateLayout)
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"' || r == ':':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, name)
}
