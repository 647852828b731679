package response

import (
	"github.com/shopspring/decimal"

	"smeta/internal/domain/entities"
	"smeta/internal/domain/pricing"
	"smeta/pkg/money"
)

// MoneyResponse carries an amount both as a number for clients that compute
// and as display text in the document currency.
type MoneyResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

type LineTotalResponse struct {
	ItemID string        `json:"itemId"`
	Total  MoneyResponse `json:"total"`
}

type SummaryResponse struct {
	Subtotal      MoneyResponse `json:"subtotal"`
	DiscountTotal MoneyResponse `json:"discountTotal"`
	VATTotal      MoneyResponse `json:"vatTotal"`
	Total         MoneyResponse `json:"total"`
}

type QuoteResponse struct {
	Currency string              `json:"currency"`
	Lines    []LineTotalResponse `json:"lines"`
	Summary  SummaryResponse     `json:"summary"`
}

type DraftResponse struct {
	Slot     string            `json:"slot"`
	Document entities.Document `json:"document"`
	Quote    QuoteResponse     `json:"quote"`
}

type SaveResponse struct {
	Slot   string `json:"slot"`
	Status string `json:"status"`
}

func FromMoney(v decimal.Decimal, currency string, f *money.Formatter) MoneyResponse {
	return MoneyResponse{
		Value:     v.Round(2).InexactFloat64(),
		Formatted: f.Format(v, currency),
	}
}

func FromQuote(q pricing.Quote, currency string, f *money.Formatter) QuoteResponse {
	lines := make([]LineTotalResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, LineTotalResponse{ItemID: l.ItemID, Total: FromMoney(l.Total, currency, f)})
	}
	return QuoteResponse{
		Currency: currency,
		Lines:    lines,
		Summary: SummaryResponse{
			Subtotal:      FromMoney(q.Summary.Subtotal, currency, f),
			DiscountTotal: FromMoney(q.Summary.DiscountTotal, currency, f),
			VATTotal:      FromMoney(q.Summary.VATTotal, currency, f),
			Total:         FromMoney(q.Summary.Total, currency, f),
		},
	}
}

// FromDraft prices doc and wraps it for the client.
func FromDraft(slot string, doc entities.Document, f *money.Formatter) DraftResponse {
	quote := pricing.Price(doc.Items, pricing.ConfigFrom(doc.Estimate))
	return DraftResponse{
		Slot:     slot,
		Document: doc,
		Quote:    FromQuote(quote, doc.Estimate.Currency, f),
	}
}
