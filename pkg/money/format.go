// Package money renders amounts for people: locale-aware grouping with the
// document currency code appended.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is the locale estimate amounts are printed in.
var DefaultLocale = language.Russian

type Formatter struct {
	printer *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// NewFormatterFromLocale parses a BCP 47 tag such as "ru" or "en-US". An
// empty or malformed tag uses DefaultLocale.
func NewFormatterFromLocale(locale string) *Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = DefaultLocale
	}
	return NewFormatter(tag)
}

// Format prints v with two fraction digits followed by the currency code.
// An unknown currency code falls back to the plain fixed-point value.
func (f *Formatter) Format(v decimal.Decimal, currencyCode string) string {
	unit, err := currency.ParseISO(strings.TrimSpace(currencyCode))
	if err != nil {
		return v.StringFixed(2)
	}
	return f.Amount(v) + " " + unit.String()
}

// Amount prints v with grouping and two fraction digits, without a currency.
func (f *Formatter) Amount(v decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(
		v.Round(2).InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
