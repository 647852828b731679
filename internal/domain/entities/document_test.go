package entities

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestNewDocument_Defaults(t *testing.T) {
	d := NewDocument(fixedNow)

	assert.Equal(t, "2026-03-14", d.Estimate.Date)
	assert.Equal(t, "RUB", d.Estimate.Currency)
	assert.True(t, d.Estimate.VATRate.Equal(NumberFromInt(20)))
	assert.False(t, d.Estimate.VATIncluded)
	assert.Equal(t, 30, d.Estimate.ValidDays)
	assert.NotNil(t, d.Items)
	assert.Empty(t, d.Items)
	assert.NotNil(t, d.CustomFields)
}

func TestNewLineItem_Defaults(t *testing.T) {
	it := NewLineItem(NumberFromInt(10))

	assert.True(t, strings.HasPrefix(it.ID, "item_"))
	assert.Equal(t, DefaultItemUnit, it.Unit)
	assert.True(t, it.Quantity.Equal(NumberFromInt(1)))
	assert.True(t, it.UnitPrice.Equal(NumberFromInt(0)))
	assert.True(t, it.DiscountPercent.Equal(NumberFromInt(0)))
	assert.True(t, it.DiscountAmount.Equal(NumberFromInt(0)))
	assert.True(t, it.VATPercent.Equal(NumberFromInt(10)))
	assert.NotEqual(t, it.ID, NewLineItem(NumberFromInt(10)).ID)
}

func TestDocument_CloneDoesNotAlias(t *testing.T) {
	d := NewDocument(fixedNow)
	d.Items = append(d.Items, NewLineItem(NumberFromInt(20)))

	c := d.Clone()
	c.Items[0].Name = "changed"
	c.CustomFields = append(c.CustomFields, CustomField{Key: "k"})

	assert.Empty(t, d.Items[0].Name)
	assert.Empty(t, d.CustomFields)
}

func TestDocument_Reset(t *testing.T) {
	d := NewDocument(fixedNow)
	d.Company.Name = "ACME"
	d.Client.Name = "Client"
	d.Estimate.Number = "E-1"
	d.Items = []LineItem{NewLineItem(NumberFromInt(20))}
	d.CustomFields = []CustomField{{Key: "k", Value: "v"}}
	d.Notes = "n"
	d.Terms = "t"

	d.Reset()

	assert.Empty(t, d.Items)
	assert.Empty(t, d.CustomFields)
	assert.Empty(t, d.Notes)
	assert.Empty(t, d.Terms)
	assert.Equal(t, "ACME", d.Company.Name)
	assert.Equal(t, "Client", d.Client.Name)
	assert.Equal(t, "E-1", d.Estimate.Number)
}

func TestDocument_ExportBaseName(t *testing.T) {
	d := NewDocument(fixedNow)
	assert.Equal(t, "smeta-2026-03-14", d.ExportBaseName(fixedNow))

	d.Estimate.Number = "  "
	assert.Equal(t, "smeta-2026-03-14", d.ExportBaseName(fixedNow))

	d.Estimate.Number = "2026/07"
	assert.Equal(t, "2026_07", d.ExportBaseName(fixedNow))

	d.Estimate.Number = "E-15\n"
	assert.Equal(t, "E-15", d.ExportBaseName(fixedNow))
}

func TestDocument_FindItem(t *testing.T) {
	d := NewDocument(fixedNow)
	d.Items = []LineItem{{ID: "a"}, {ID: "b"}}

	assert.Equal(t, 1, d.FindItem("b"))
	assert.Equal(t, -1, d.FindItem("c"))
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	d := NewDocument(fixedNow)
	d.Company = Company{Name: "ACME", Tax: "7700", Address: "Moscow", Phone: "+7", Email: "a@b.c"}
	d.Client = Client{Name: "Ivan", Contact: "ivan@x", Address: "SPb"}
	d.Estimate.Number = "E-7"
	d.Estimate.VATIncluded = true
	it := NewLineItem(Number{})
	it.Name = "Paint"
	it.UnitPrice = NumberFromString("99,90")
	d.Items = append(d.Items, it)
	d.CustomFields = append(d.CustomFields, CustomField{Key: "Manager", Value: "Olga"})
	d.Notes = "notes"
	d.Terms = "terms"

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	back, err := MergeDocument(NewDocument(fixedNow.AddDate(0, 0, 1)), raw)
	require.NoError(t, err)

	again, err := json.Marshal(back)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(again))
}
