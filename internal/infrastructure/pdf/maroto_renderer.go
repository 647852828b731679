// Package pdf prints an estimate on A4 with Maroto v2.
//
// Page layout:
//
//	company name + contacts        | estimate number + date
//	-------------------------------------------------------
//	client, project, custom fields
//	-------------------------------------------------------
//	# | item | unit | qty | price | discount | VAT | total
//	-------------------------------------------------------
//	                 subtotal / discount / VAT / total
//	notes, terms, validity
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/shopspring/decimal"

	"smeta/internal/domain/entities"
	"smeta/internal/domain/pricing"
	"smeta/internal/usecase/interfaces"
	"smeta/pkg/money"
)

const (
	defaultFontFamily = "helvetica"
	customFontFamily  = "estimate"

	// rough character budget of a full-width row at the body font size
	charsPerLine = 110
)

var (
	colorPrimary = &props.Color{Red: 31, Green: 78, Blue: 121}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

type MarotoRenderer struct {
	formatter *money.Formatter
	family    string
	fonts     []*entity.CustomFont
}

var _ interfaces.IDocumentRenderer = (*MarotoRenderer)(nil)

// NewMarotoRenderer builds the renderer. fontFile is an optional UTF-8
// TrueType font; without it the built-in Helvetica is used, which has no
// Cyrillic glyphs.
func NewMarotoRenderer(formatter *money.Formatter, fontFile string) (*MarotoRenderer, error) {
	if formatter == nil {
		formatter = money.NewFormatter(money.DefaultLocale)
	}
	r := &MarotoRenderer{formatter: formatter, family: defaultFontFamily}
	if fontFile == "" {
		return r, nil
	}

	fonts, err := repository.New().
		AddUTF8Font(customFontFamily, fontstyle.Normal, fontFile).
		AddUTF8Font(customFontFamily, fontstyle.Bold, fontFile).
		AddUTF8Font(customFontFamily, fontstyle.Italic, fontFile).
		AddUTF8Font(customFontFamily, fontstyle.BoldItalic, fontFile).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: load font %s: %w", fontFile, err)
	}
	r.family = customFontFamily
	r.fonts = fonts
	return r, nil
}

func (r *MarotoRenderer) Render(_ context.Context, doc entities.Document, quote pricing.Quote) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: r.family, Size: 9}).
		WithTitle(documentTitle(doc), true).
		WithAuthor(doc.Company.Name, true)
	if len(r.fonts) > 0 {
		builder = builder.WithCustomFonts(r.fonts)
	}

	m := maroto.New(builder.Build())

	m.AddRows(r.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(r.partiesRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(r.tableHeaderRow())
	m.AddRows(r.itemRows(doc, quote)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(r.totalsRow(doc, quote.Summary))
	m.AddRows(r.closingRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return out.GetBytes(), nil
}

func documentTitle(doc entities.Document) string {
	if n := strings.TrimSpace(doc.Estimate.Number); n != "" {
		return "Смета № " + n
	}
	return "Смета"
}

func (r *MarotoRenderer) headerRow(doc entities.Document) core.Row {
	contacts := joinNonEmpty("   |   ",
		prefixed("ИНН: ", doc.Company.Tax),
		doc.Company.Address,
		doc.Company.Phone,
		doc.Company.Email,
	)

	date := "Дата: " + nonEmpty(doc.Estimate.Date, "—")

	return row.New(20).Add(
		col.New(8).Add(
			text.New(nonEmpty(doc.Company.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(contacts, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(documentTitle(doc), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(date, props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func (r *MarotoRenderer) partiesRows(doc entities.Document) []core.Row {
	label := func(s string) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Color: colorPrimary}))
	}
	value := func(s string) core.Col {
		return col.New(9).Add(text.New(s, props.Text{Size: 8, Top: 1}))
	}

	pairs := [][2]string{
		{"Заказчик", joinNonEmpty(", ", doc.Client.Name, doc.Client.Contact)},
		{"Адрес заказчика", doc.Client.Address},
		{"Объект", doc.Estimate.ProjectName},
		{"Адрес объекта", doc.Estimate.ProjectAddress},
	}
	for _, f := range doc.CustomFields {
		pairs = append(pairs, [2]string{f.Key, f.Value})
	}

	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		if strings.TrimSpace(p[1]) == "" {
			continue
		}
		rows = append(rows, row.New(6).Add(label(p[0]), value(p[1])))
	}
	return rows
}

func (r *MarotoRenderer) tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("№", 1, align.Center),
		h("Наименование", 4, align.Left),
		h("Ед.", 1, align.Center),
		h("Кол-во", 1, align.Right),
		h("Цена", 1, align.Right),
		h("Скидка", 1, align.Right),
		h("НДС", 1, align.Right),
		h("Сумма", 2, align.Right),
	)
}

func (r *MarotoRenderer) itemRows(doc entities.Document, quote pricing.Quote) []core.Row {
	cfg := pricing.ConfigFrom(doc.Estimate)
	totals := make(map[string]decimal.Decimal, len(quote.Lines))
	for _, l := range quote.Lines {
		totals[l.ItemID] = l.Total
	}

	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}

	rows := make([]core.Row, 0, len(doc.Items))
	for i, item := range doc.Items {
		b := pricing.Breakdown(item, cfg)
		total, ok := totals[item.ID]
		if !ok {
			total = pricing.ComputeLineTotal(item, cfg)
		}

		name := nonEmpty(item.Name, "—")
		height := 7.0
		if d := strings.TrimSpace(item.Description); d != "" {
			name += "\n" + d
			height = 11
		}

		rows = append(rows, row.New(height).Add(
			cell(fmt.Sprint(i+1), 1, align.Center),
			cell(name, 4, align.Left),
			cell(item.Unit, 1, align.Center),
			cell(item.Quantity.OrZero().String(), 1, align.Right),
			cell(r.formatter.Amount(item.UnitPrice.OrZero()), 1, align.Right),
			cell(r.formatter.Amount(b.Discount), 1, align.Right),
			cell(b.VATPercent.String()+"%", 1, align.Right),
			cell(r.formatter.Amount(total), 2, align.Right),
		))
	}
	return rows
}

func (r *MarotoRenderer) totalsRow(doc entities.Document, s pricing.Summary) core.Row {
	currency := doc.Estimate.Currency
	vatLabel := "НДС:"
	if doc.Estimate.VATIncluded {
		vatLabel = "В т.ч. НДС:"
	}

	lines := []struct {
		label string
		value decimal.Decimal
	}{
		{"Без НДС:", s.Subtotal},
		{"Скидка:", s.DiscountTotal},
		{vatLabel, s.VATTotal},
		{"Итого:", s.Total},
	}

	labels := col.New(4)
	values := col.New(3)
	for i, l := range lines {
		p := props.Text{Size: 9, Align: align.Right, Top: float64(1 + 6*i)}
		if i == len(lines)-1 {
			p.Style = fontstyle.Bold
			p.Color = colorPrimary
		}
		lp, vp := p, p
		lp.Right = 2
		vp.Right = 1
		labels.Add(text.New(l.label, lp))
		values.Add(text.New(r.formatter.Format(l.value, currency), vp))
	}

	return row.New(26).Add(col.New(5), labels, values)
}

func (r *MarotoRenderer) closingRows(doc entities.Document) []core.Row {
	var rows []core.Row
	block := func(title, body string) {
		body = strings.TrimSpace(body)
		if body == "" {
			return
		}
		rows = append(rows,
			row.New(6).Add(col.New(12).Add(text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary,
			}))),
			row.New(textHeight(body)).Add(col.New(12).Add(text.New(body, props.Text{Size: 8, Top: 1}))),
		)
	}

	block("Примечания", doc.Notes)
	block("Условия", doc.Terms)

	if doc.Estimate.ValidDays > 0 {
		rows = append(rows, row.New(8).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Смета действительна %d дн.", doc.Estimate.ValidDays),
			props.Text{Size: 8, Top: 3, Color: colorGray},
		))))
	}
	return rows
}

// textHeight estimates the row height a wrapped paragraph needs.
func textHeight(s string) float64 {
	lines := 0
	for _, l := range strings.Split(s, "\n") {
		lines += 1 + len([]rune(l))/charsPerLine
	}
	return float64(lines)*4 + 2
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func prefixed(prefix, s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return prefix + s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
