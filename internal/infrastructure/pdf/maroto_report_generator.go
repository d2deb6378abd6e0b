// Package pdf renders the cash-book report (thu chi) as an A4 PDF.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: shop name  │  date range                       │
//	│  ─────────────────────────────────────────────────────  │
//	│  TOTALS: income / expense / net                         │
//	│  ─────────────────────────────────────────────────────  │
//	│  TABLE: per-category income and expense                 │
//	│  ─────────────────────────────────────────────────────  │
//	│  TABLE: individual entries (date, type, amount, note)   │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/report"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 91, Green: 60, Blue: 17}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// vnd formats an amount with Vietnamese thousands separators.
var vnd = message.NewPrinter(language.Vietnamese)

func formatVND(d decimal.Decimal) string {
	return vnd.Sprintf("%d", d.Round(0).IntPart()) + " VNĐ"
}

// MarotoReportGenerator implements report.PDFGenerator with Maroto v2.
type MarotoReportGenerator struct {
	shopName string
}

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator builds the generator. shopName appears in the
// report header.
func NewMarotoReportGenerator(shopName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{shopName: shopName}
}

// GenerateTransactionReport renders the summary and returns the PDF bytes.
func (g *MarotoReportGenerator) GenerateTransactionReport(_ context.Context, s *report.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Báo cáo thu chi", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(categoryHeaderRow())
	for _, ct := range s.Categories {
		m.AddRows(categoryRow(ct))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(entryHeaderRow())
	for _, e := range s.Entries {
		m.AddRows(entryRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReportGenerator) headerRow(s *report.Summary) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Báo cáo thu chi", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%s → %s", s.From, s.To), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 4,
			}),
		),
	)
}

func totalsRow(s *report.Summary) core.Row {
	netColor := colorPrimary
	if s.Net.IsNegative() {
		netColor = colorRed
	}
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Color: c}),
		)
	}
	return row.New(14).Add(
		cell("Tổng thu", formatVND(s.TotalIncome), colorPrimary),
		cell("Tổng chi", formatVND(s.TotalExpense), colorRed),
		cell("Còn lại", formatVND(s.Net), netColor),
	)
}

func categoryHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Danh mục", 6, align.Left),
		h("Thu", 3, align.Right),
		h("Chi", 3, align.Right),
	)
}

func categoryRow(ct report.CategoryTotal) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(ct.Category, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(formatVND(ct.Income), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(formatVND(ct.Expense), props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorRed})),
	)
}

func entryHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Ngày", 2, align.Left),
		h("Loại", 2, align.Left),
		h("Danh mục", 3, align.Left),
		h("Số tiền", 2, align.Right),
		h("Ghi chú", 3, align.Left),
	)
}

func entryRow(e entity.Transaction) core.Row {
	label := "Thu"
	amountColor := colorPrimary
	if e.Type == entity.TransactionExpense {
		label = "Chi"
		amountColor = colorRed
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(e.Date, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(label, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(e.Category, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(formatVND(decimal.NewFromFloat(e.Amount)), props.Text{
			Size: 8, Align: align.Right, Top: 1, Color: amountColor,
		})),
		col.New(3).Add(text.New(e.Description, props.Text{Size: 8, Top: 1, Color: colorGray})),
	)
}
