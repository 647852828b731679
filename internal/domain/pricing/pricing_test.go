package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"smeta/internal/domain/entities"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func num(s string) entities.Number { return entities.NumberFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: want %s got %s", msg, want, got)
}

func sampleItem() entities.LineItem {
	return entities.LineItem{
		ID:              "item_1",
		Quantity:        num("2"),
		UnitPrice:       num("100"),
		DiscountPercent: num("10"),
		DiscountAmount:  num("5"),
		VATPercent:      num("20"),
	}
}

func TestBreakdown(t *testing.T) {
	b := Breakdown(sampleItem(), Config{VATRate: dec("20")})

	assertDec(t, "200", b.Base, "base")
	assertDec(t, "20", b.PercentDiscount, "percent discount")
	assertDec(t, "20", b.Discount, "effective discount")
	assertDec(t, "180", b.Net, "net")
	assertDec(t, "20", b.VATPercent, "vat")
}

func TestBreakdown_AbsoluteDiscountWinsWhenLarger(t *testing.T) {
	item := sampleItem()
	item.DiscountAmount = num("50")

	b := Breakdown(item, Config{})
	assertDec(t, "50", b.Discount, "discounts are alternatives, not additive")
	assertDec(t, "150", b.Net, "net")
}

func TestComputeLineTotal_VATExcluded(t *testing.T) {
	got := ComputeLineTotal(sampleItem(), Config{VATRate: dec("20")})
	assertDec(t, "216", got, "line total")
}

func TestComputeLineTotal_VATIncludedShowsGross(t *testing.T) {
	got := ComputeLineTotal(sampleItem(), Config{VATRate: dec("20"), VATIncluded: true})
	assertDec(t, "180", got, "line total")
}

func TestComputeSummary_VATExcluded(t *testing.T) {
	s := ComputeSummary([]entities.LineItem{sampleItem()}, Config{VATRate: dec("20")})

	assertDec(t, "180", s.Subtotal, "subtotal")
	assertDec(t, "20", s.DiscountTotal, "discount")
	assertDec(t, "36", s.VATTotal, "vat")
	assertDec(t, "216", s.Total, "total")
}

func TestComputeSummary_VATIncluded(t *testing.T) {
	s := ComputeSummary([]entities.LineItem{sampleItem()}, Config{VATRate: dec("20"), VATIncluded: true})

	assertDec(t, "150", s.Subtotal, "subtotal")
	assertDec(t, "20", s.DiscountTotal, "discount")
	assertDec(t, "30", s.VATTotal, "vat")
	assertDec(t, "180", s.Total, "total")
}

func TestComputeSummary_VATIncludedSplitAddsBackUp(t *testing.T) {
	item := entities.LineItem{Quantity: num("1"), UnitPrice: num("100"), VATPercent: num("20")}
	s := ComputeSummary([]entities.LineItem{item}, Config{VATIncluded: true})

	assert.True(t, s.Subtotal.LessThan(dec("83.34")) && s.Subtotal.GreaterThan(dec("83.33")))
	assertDec(t, "100", s.Total, "net plus vat is the gross amount")
}

func TestDiscountNeverDrivesNetBelowZero(t *testing.T) {
	item := entities.LineItem{Quantity: num("1"), UnitPrice: num("10"), DiscountAmount: num("50"), VATPercent: num("20")}

	for _, included := range []bool{false, true} {
		cfg := Config{VATRate: dec("20"), VATIncluded: included}
		assertDec(t, "0", ComputeLineTotal(item, cfg), "line total")
		s := ComputeSummary([]entities.LineItem{item}, cfg)
		assertDec(t, "0", s.Total, "total")
		assertDec(t, "50", s.DiscountTotal, "discount is still reported")
	}
}

func TestNegativeUnitPriceClampsToZero(t *testing.T) {
	item := entities.LineItem{Quantity: num("3"), UnitPrice: num("-10"), VATPercent: num("0")}
	assertDec(t, "0", ComputeLineTotal(item, Config{}), "line total")
}

func TestMissingVATPercentFallsBackToDocumentRate(t *testing.T) {
	cfg := Config{VATRate: dec("10")}
	for _, vat := range []entities.Number{{}, num("n/a")} {
		item := entities.LineItem{Quantity: num("1"), UnitPrice: num("100"), VATPercent: vat}
		assertDec(t, "110", ComputeLineTotal(item, cfg), "line total")
		assertDec(t, "10", ComputeSummary([]entities.LineItem{item}, cfg).VATTotal, "vat")
	}
}

func TestZeroVATPercentIsNotAFallback(t *testing.T) {
	item := entities.LineItem{Quantity: num("1"), UnitPrice: num("100"), VATPercent: num("0")}
	assertDec(t, "100", ComputeLineTotal(item, Config{VATRate: dec("20")}), "line total")
}

func TestNonNumericInputsCountAsZero(t *testing.T) {
	item := entities.LineItem{Quantity: num("two"), UnitPrice: num("100"), VATPercent: num("20")}
	assertDec(t, "0", ComputeLineTotal(item, Config{}), "line total")

	item = entities.LineItem{Quantity: num("1"), UnitPrice: num("100"), DiscountPercent: num("lots")}
	assertDec(t, "100", ComputeLineTotal(item, Config{}), "line total")
}

func TestComputeSummary_Empty(t *testing.T) {
	for _, items := range [][]entities.LineItem{nil, {}} {
		s := ComputeSummary(items, Config{VATRate: dec("20"), VATIncluded: true})
		assert.True(t, s.Subtotal.IsZero())
		assert.True(t, s.DiscountTotal.IsZero())
		assert.True(t, s.VATTotal.IsZero())
		assert.True(t, s.Total.IsZero())
	}
}

func TestComputeSummary_MixedRates(t *testing.T) {
	items := []entities.LineItem{
		sampleItem(),
		{Quantity: num("4"), UnitPrice: num("25"), VATPercent: num("10")},
		{Quantity: num("1"), UnitPrice: num("50")},
	}
	s := ComputeSummary(items, Config{VATRate: dec("0")})

	assertDec(t, "330", s.Subtotal, "subtotal")
	assertDec(t, "46", s.VATTotal, "vat")
	assertDec(t, "376", s.Total, "total")
}

func TestComputeSummary_MinusHundredPercentVATIncluded(t *testing.T) {
	item := entities.LineItem{Quantity: num("1"), UnitPrice: num("10"), VATPercent: num("-100")}
	s := ComputeSummary([]entities.LineItem{item}, Config{VATIncluded: true})

	assertDec(t, "0", s.Subtotal, "subtotal")
	assertDec(t, "10", s.VATTotal, "vat")
}

func TestConfigFrom(t *testing.T) {
	cfg := ConfigFrom(entities.EstimateDetails{VATRate: num("18"), VATIncluded: true})
	assertDec(t, "18", cfg.VATRate, "vat rate")
	assert.True(t, cfg.VATIncluded)

	cfg = ConfigFrom(entities.EstimateDetails{})
	assert.True(t, cfg.VATRate.IsZero())
}

func TestPrice(t *testing.T) {
	items := []entities.LineItem{sampleItem(), {ID: "item_2", Quantity: num("1"), UnitPrice: num("10"), VATPercent: num("0")}}
	q := Price(items, Config{VATRate: dec("20")})

	if assert.Len(t, q.Lines, 2) {
		assert.Equal(t, "item_1", q.Lines[0].ItemID)
		assertDec(t, "216", q.Lines[0].Total, "first line")
		assert.Equal(t, "item_2", q.Lines[1].ItemID)
		assertDec(t, "10", q.Lines[1].Total, "second line")
	}
	assertDec(t, "226", q.Summary.Total, "total")
}

func TestOutOfRangeInputsCountAsZero(t *testing.T) {
	item := entities.LineItem{
		ID:              "huge",
		Quantity:        num("1e2000000000"),
		UnitPrice:       num("1e2000000000"),
		DiscountPercent: num("1e-2000000000"),
		VATPercent:      num("1e400"),
	}

	var s Summary
	assert.NotPanics(t, func() { s = ComputeSummary([]entities.LineItem{item}, Config{VATRate: dec("20")}) })
	assertDec(t, "0", s.Subtotal, "subtotal")
	assertDec(t, "0", s.VATTotal, "vat on a zero net")
	assertDec(t, "0", s.Total, "total")
}

func TestInputsAtDoubleLimitsDoNotPanic(t *testing.T) {
	item := entities.LineItem{
		ID:              "edge",
		Quantity:        num("1e308"),
		UnitPrice:       num("-1e308"),
		DiscountPercent: num("1e308"),
		DiscountAmount:  num("1e-324"),
		VATPercent:      num("1e308"),
	}
	for _, included := range []bool{false, true} {
		cfg := Config{VATRate: dec("20"), VATIncluded: included}
		assert.NotPanics(t, func() {
			Price([]entities.LineItem{item, sampleItem()}, cfg)
		})
	}

	big := sampleItem()
	big.Quantity = num("1e308")
	big.UnitPrice = num("1e308")
	var total decimal.Decimal
	assert.NotPanics(t, func() { total = ComputeLineTotal(big, Config{VATIncluded: true}) })
	assert.True(t, total.IsPositive())
}
