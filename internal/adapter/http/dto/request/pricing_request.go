package request

import (
	"smeta/internal/domain/entities"
	"smeta/internal/domain/pricing"
)

type PricingConfigRequest struct {
	Currency    string          `json:"currency"`
	VATRate     entities.Number `json:"vatRate"`
	VATIncluded bool            `json:"vatIncluded"`
}

// QuoteRequest prices items without touching any draft. Items use the
// document item format.
type QuoteRequest struct {
	Estimate PricingConfigRequest `json:"estimate"`
	Items    []entities.LineItem  `json:"items"`
}

func (r QuoteRequest) ToConfig() pricing.Config {
	return pricing.ConfigFrom(entities.EstimateDetails{
		VATRate:     r.Estimate.VATRate,
		VATIncluded: r.Estimate.VATIncluded,
	})
}

func (r QuoteRequest) ResolveCurrency() string {
	if r.Estimate.Currency == "" {
		return entities.DefaultCurrency
	}
	return r.Estimate.Currency
}
