package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"smeta/pkg/money"
)

func newPricingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPricingHandler(money.NewFormatter(language.English))
	r := gin.New()
	r.POST("/v1/pricing/quote", h.Quote)
	r.GET("/v1/schema/document", h.DocumentSchema)
	return r
}

func TestPricingHandler_Quote(t *testing.T) {
	r := newPricingRouter()

	t.Run("vat on top", func(t *testing.T) {
		body := `{"estimate":{"vatRate":20,"vatIncluded":false,"currency":"EUR"},"items":[
			{"id":"a","quantity":"2","unitPrice":100,"discountPercent":10,"vatPercent":20},
			{"id":"b","quantity":1,"unitPrice":"abc"}
		]}`
		w := serve(r, http.MethodPost, "/v1/pricing/quote", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var res struct {
			Currency string `json:"currency"`
			Lines    []struct {
				ItemID string `json:"itemId"`
				Total  struct {
					Value float64 `json:"value"`
				} `json:"total"`
			} `json:"lines"`
			Summary map[string]struct {
				Value     float64 `json:"value"`
				Formatted string  `json:"formatted"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "EUR", res.Currency)
		require.Len(t, res.Lines, 2)
		assert.Equal(t, 216.0, res.Lines[0].Total.Value)
		assert.Equal(t, 0.0, res.Lines[1].Total.Value)
		assert.Equal(t, 180.0, res.Summary["subtotal"].Value)
		assert.Equal(t, 20.0, res.Summary["discountTotal"].Value)
		assert.Equal(t, 36.0, res.Summary["vatTotal"].Value)
		assert.Equal(t, "216.00 EUR", res.Summary["total"].Formatted)
	})

	t.Run("vat included", func(t *testing.T) {
		body := `{"estimate":{"vatRate":20,"vatIncluded":true},"items":[{"id":"a","quantity":1,"unitPrice":180}]}`
		w := serve(r, http.MethodPost, "/v1/pricing/quote", body)
		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Summary map[string]struct {
				Value float64 `json:"value"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 150.0, res.Summary["subtotal"].Value)
		assert.Equal(t, 30.0, res.Summary["vatTotal"].Value)
		assert.Equal(t, 180.0, res.Summary["total"].Value)
	})

	t.Run("invalid json", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/pricing/quote", "[")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_DocumentSchema(t *testing.T) {
	r := newPricingRouter()
	w := serve(r, http.MethodGet, "/v1/schema/document", "")
	require.Equal(t, http.StatusOK, w.Code)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schema))
	assert.Equal(t, "object", schema["type"])
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"company", "client", "estimate", "items", "customFields", "notes", "terms"} {
		assert.Contains(t, props, key)
	}
}
