// Package pricing computes line totals and the estimate summary.
//
// Every function here is pure and total: inputs that are not numbers count
// as zero, nothing returns an error.
package pricing

import (
	"github.com/shopspring/decimal"

	"smeta/internal/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// Config is the document-level VAT setup.
type Config struct {
	VATRate     decimal.Decimal
	VATIncluded bool
}

func ConfigFrom(e entities.EstimateDetails) Config {
	return Config{VATRate: e.VATRate.OrZero(), VATIncluded: e.VATIncluded}
}

// LineBreakdown holds the intermediate amounts of one line.
type LineBreakdown struct {
	Base            decimal.Decimal
	PercentDiscount decimal.Decimal
	Discount        decimal.Decimal
	Net             decimal.Decimal
	VATPercent      decimal.Decimal
}

// Breakdown applies the effective discount, the larger of the percentage
// and the absolute discount, and clamps the result at zero.
func Breakdown(item entities.LineItem, cfg Config) LineBreakdown {
	base := item.Quantity.OrZero().Mul(item.UnitPrice.OrZero())
	percent := base.Mul(item.DiscountPercent.OrZero().Div(hundred))
	discount := decimal.Max(percent, item.DiscountAmount.OrZero())
	net := decimal.Max(base.Sub(discount), decimal.Zero)

	vat, ok := item.VATPercent.Decimal()
	if !ok {
		vat = cfg.VATRate
	}

	return LineBreakdown{
		Base:            base,
		PercentDiscount: percent,
		Discount:        discount,
		Net:             net,
		VATPercent:      vat,
	}
}

// ComputeLineTotal is the amount shown on the item row.
//
// With VAT-inclusive pricing the row shows the discounted amount as is,
// while ComputeSummary backs VAT out of that same amount. The two views are
// kept as drafts have always displayed them.
func ComputeLineTotal(item entities.LineItem, cfg Config) decimal.Decimal {
	b := Breakdown(item, cfg)
	if cfg.VATIncluded {
		return b.Net
	}
	return b.Net.Mul(decimal.NewFromInt(1).Add(b.VATPercent.Div(hundred)))
}

type Summary struct {
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	VATTotal      decimal.Decimal
	Total         decimal.Decimal
}

// ComputeSummary accumulates all items in document order.
func ComputeSummary(items []entities.LineItem, cfg Config) Summary {
	var s Summary
	for _, item := range items {
		b := Breakdown(item, cfg)
		net, vat := splitVAT(b, cfg.VATIncluded)
		s.Subtotal = s.Subtotal.Add(net)
		s.VATTotal = s.VATTotal.Add(vat)
		s.DiscountTotal = s.DiscountTotal.Add(b.Discount)
	}
	s.Total = s.Subtotal.Add(s.VATTotal)
	return s
}

// splitVAT returns the net-of-VAT amount and the VAT of a line.
func splitVAT(b LineBreakdown, vatIncluded bool) (decimal.Decimal, decimal.Decimal) {
	rate := b.VATPercent.Div(hundred)
	if !vatIncluded {
		return b.Net, b.Net.Mul(rate)
	}
	divisor := decimal.NewFromInt(1).Add(rate)
	if divisor.IsZero() {
		// -100% VAT: the whole gross amount is tax
		return decimal.Zero, b.Net
	}
	netOfVAT := b.Net.Div(divisor)
	return netOfVAT, b.Net.Sub(netOfVAT)
}

type LineQuote struct {
	ItemID string
	Total  decimal.Decimal
}

// Quote is everything a view of the estimate shows: one total per item, in
// item order, and the summary.
type Quote struct {
	Lines   []LineQuote
	Summary Summary
}

func Price(items []entities.LineItem, cfg Config) Quote {
	lines := make([]LineQuote, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineQuote{ItemID: item.ID, Total: ComputeLineTotal(item, cfg)})
	}
	return Quote{Lines: lines, Summary: ComputeSummary(items, cfg)}
}
