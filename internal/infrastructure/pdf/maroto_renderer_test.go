package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"smeta/internal/domain/entities"
	"smeta/internal/domain/pricing"
	"smeta/pkg/money"
)

func sampleDocument() entities.Document {
	doc := entities.NewDocument(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	doc.Company = entities.Company{Name: "Acme Build", Tax: "7700000000", Phone: "+7 000"}
	doc.Client = entities.Client{Name: "John", Address: "Main st. 1"}
	doc.Estimate.Number = "E-12"
	doc.Estimate.ProjectName = "Kitchen"
	doc.CustomFields = []entities.CustomField{{Key: "Floor", Value: "3"}, {Key: "Empty", Value: ""}}
	item := entities.NewLineItem(doc.Estimate.VATRate)
	item.Name = "Tiles"
	item.Description = "Ceramic, 30x30"
	item.Quantity = entities.NumberFromInt(2)
	item.UnitPrice = entities.NumberFromInt(100)
	item.DiscountPercent = entities.NumberFromInt(10)
	doc.Items = append(doc.Items, item)
	doc.Notes = "Materials by the client.\nSecond line."
	doc.Terms = "50% upfront"
	return doc
}

func TestMarotoRenderer_Render(t *testing.T) {
	r, err := NewMarotoRenderer(money.NewFormatter(language.English), "")
	require.NoError(t, err)

	doc := sampleDocument()
	quote := pricing.Price(doc.Items, pricing.ConfigFrom(doc.Estimate))

	out, err := r.Render(context.Background(), doc, quote)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMarotoRenderer_EmptyDocument(t *testing.T) {
	r, err := NewMarotoRenderer(nil, "")
	require.NoError(t, err)

	doc := entities.NewDocument(time.Now())
	out, err := r.Render(context.Background(), doc, pricing.Price(nil, pricing.ConfigFrom(doc.Estimate)))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestNewMarotoRenderer_MissingFont(t *testing.T) {
	_, err := NewMarotoRenderer(nil, "/does/not/exist.ttf")
	assert.Error(t, err)
}

func TestTextHeight(t *testing.T) {
	assert.Equal(t, 6.0, textHeight("short"))
	assert.Equal(t, 10.0, textHeight("a\nb"))
}

func TestDocumentTitle(t *testing.T) {
	assert.Equal(t, "Смета", documentTitle(entities.Document{}))
	assert.Equal(t, "Смета № 7", documentTitle(entities.Document{Estimate: entities.EstimateDetails{Number: " 7 "}}))
}
