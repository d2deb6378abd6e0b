package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/repository"
)

// CategoryTotal income and expense accumulated for one ledger category.
type CategoryTotal struct {
	Category string
	Income   decimal.Decimal
	Expense  decimal.Decimal
}

// Summary aggregated cash-book data for one date range.
type Summary struct {
	From         string
	To           string
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
	Categories   []CategoryTotal
	Entries      []entity.Transaction
}

// PDFGenerator renders a Summary as a PDF document.
type PDFGenerator interface {
	GenerateTransactionReport(ctx context.Context, s *Summary) ([]byte, error)
}

// ReportUseCase builds the income/expense report over the transactions ledger.
type ReportUseCase struct {
	repo repository.TransactionRepository
	pdf  PDFGenerator
}

// NewReportUseCase builds the use case.
func NewReportUseCase(repo repository.TransactionRepository, pdf PDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// TransactionPDF aggregates the range [from, to] and renders it as a PDF.
// Amounts are summed as decimals so long ranges do not drift the way float64
// accumulation does.
func (uc *ReportUseCase) TransactionPDF(ctx context.Context, from, to string) ([]byte, error) {
	s, err := uc.Summarize(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateTransactionReport(ctx, s)
}

// Summarize aggregates the range [from, to] into totals per type and category.
func (uc *ReportUseCase) Summarize(ctx context.Context, from, to string) (*Summary, error) {
	if !validDate(from) || !validDate(to) || from > to {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.repo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		From:         from,
		To:           to,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Entries:      entries,
	}
	byCategory := map[string]*CategoryTotal{}
	var order []string
	for _, e := range entries {
		amount := decimal.NewFromFloat(e.Amount)
		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category, Income: decimal.Zero, Expense: decimal.Zero}
			byCategory[e.Category] = ct
			order = append(order, e.Category)
		}
		if e.Type == entity.TransactionIncome {
			s.TotalIncome = s.TotalIncome.Add(amount)
			ct.Income = ct.Income.Add(amount)
		} else {
			s.TotalExpense = s.TotalExpense.Add(amount)
			ct.Expense = ct.Expense.Add(amount)
		}
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpense)
	for _, name := range order {
		s.Categories = append(s.Categories, *byCategory[name])
	}
	return s, nil
}

func validDate(d string) bool {
	_, err := time.Parse("2006-01-02", d)
	return err == nil
}
