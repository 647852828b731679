package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDocument_MissingKeysKeepBase(t *testing.T) {
	base := NewDocument(fixedNow)
	base.Company.Name = "ACME"
	base.Notes = "keep me"

	out, err := MergeDocument(base, []byte(`{"terms":"net 30","unknown":{"x":1}}`))
	require.NoError(t, err)

	assert.Equal(t, "ACME", out.Company.Name)
	assert.Equal(t, "keep me", out.Notes)
	assert.Equal(t, "net 30", out.Terms)
	assert.Equal(t, "RUB", out.Estimate.Currency)
}

func TestMergeDocument_IsShallow(t *testing.T) {
	base := NewDocument(fixedNow)
	base.Company = Company{Name: "ACME", Phone: "123"}

	out, err := MergeDocument(base, []byte(`{"company":{"name":"Other"},"estimate":{"number":"E-2"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Other", out.Company.Name)
	assert.Empty(t, out.Company.Phone, "nested sections replace, not merge")
	assert.Equal(t, "E-2", out.Estimate.Number)
	assert.Empty(t, out.Estimate.Currency)
	assert.False(t, out.Estimate.VATRate.Valid())
}

func TestMergeDocument_NullKeepsBase(t *testing.T) {
	base := NewDocument(fixedNow)
	base.Items = []LineItem{{ID: "a"}}

	out, err := MergeDocument(base, []byte(`{"items":null,"company":null}`))
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

func TestMergeDocument_LenientItemNumbers(t *testing.T) {
	out, err := MergeDocument(NewDocument(fixedNow), []byte(`{"items":[{"id":"x","quantity":"2","unitPrice":"100,5","vatPercent":"n/a"}]}`))
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	q, _ := out.Items[0].Quantity.Decimal()
	p, _ := out.Items[0].UnitPrice.Decimal()
	assert.Equal(t, "2", q.String())
	assert.Equal(t, "100.5", p.String())
	assert.False(t, out.Items[0].VATPercent.Valid())
	assert.False(t, out.Items[0].DiscountAmount.Valid())
}

func TestMergeDocument_Errors(t *testing.T) {
	base := NewDocument(fixedNow)
	base.Notes = "unchanged"

	out, err := MergeDocument(base, []byte(`{"notes":`))
	assert.Error(t, err)
	assert.Equal(t, "unchanged", out.Notes)

	_, err = MergeDocument(base, []byte(`[1,2]`))
	assert.True(t, errors.Is(err, ErrDocumentNotObject))

	_, err = MergeDocument(base, []byte(``))
	assert.Error(t, err)

	_, err = MergeDocument(base, []byte(`{"items":"nope"}`))
	assert.Error(t, err)
}

func TestMergeDocument_EmptyArraysStayNonNil(t *testing.T) {
	out, err := MergeDocument(NewDocument(fixedNow), []byte(`{"items":[],"customFields":[]}`))
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.NotNil(t, out.CustomFields)
}
