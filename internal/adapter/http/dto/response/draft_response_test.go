package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"smeta/internal/domain/entities"
	"smeta/pkg/money"
)

func TestFromMoney(t *testing.T) {
	f := money.NewFormatter(language.English)
	m := FromMoney(decimal.RequireFromString("1234.567"), "EUR", f)
	assert.Equal(t, 1234.57, m.Value)
	assert.Equal(t, "1,234.57 EUR", m.Formatted)
}

func TestFromDraft(t *testing.T) {
	f := money.NewFormatter(language.English)
	doc := entities.NewDocument(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	doc.Estimate.Currency = "USD"
	item := entities.NewLineItem(doc.Estimate.VATRate)
	item.Quantity = entities.NumberFromInt(2)
	item.UnitPrice = entities.NumberFromInt(100)
	item.DiscountPercent = entities.NumberFromInt(10)
	doc.Items = append(doc.Items, item)

	res := FromDraft("s1", doc, f)
	assert.Equal(t, "s1", res.Slot)
	assert.Equal(t, "USD", res.Quote.Currency)
	require.Len(t, res.Quote.Lines, 1)
	assert.Equal(t, item.ID, res.Quote.Lines[0].ItemID)
	assert.Equal(t, 216.0, res.Quote.Lines[0].Total.Value)
	assert.Equal(t, 180.0, res.Quote.Summary.Subtotal.Value)
	assert.Equal(t, 20.0, res.Quote.Summary.DiscountTotal.Value)
	assert.Equal(t, 36.0, res.Quote.Summary.VATTotal.Value)
	assert.Equal(t, "216.00 USD", res.Quote.Summary.Total.Formatted)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"vatTotal":{"value":36,"formatted":"36.00 USD"}`)
}

func TestFromDraft_EmptyItems(t *testing.T) {
	f := money.NewFormatter(language.English)
	doc := entities.NewDocument(time.Now())

	res := FromDraft("s1", doc, f)
	assert.NotNil(t, res.Quote.Lines)
	assert.Empty(t, res.Quote.Lines)
	assert.Equal(t, 0.0, res.Quote.Summary.Total.Value)
}
