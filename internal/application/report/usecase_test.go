package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/report"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
)

type stubTransactionRepo struct {
	entries []entity.Transaction
}

func (r *stubTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }

func (r *stubTransactionRepo) List(context.Context) ([]entity.Transaction, error) {
	return r.entries, nil
}

func (r *stubTransactionRepo) ListByDateRange(_ context.Context, from, to string) ([]entity.Transaction, error) {
	out := []entity.Transaction{}
	for _, e := range r.entries {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) Delete(context.Context, string) (*entity.Transaction, error) {
	return nil, domain.ErrNotFound
}

type stubPDF struct{}

func (stubPDF) GenerateTransactionReport(context.Context, *report.Summary) ([]byte, error) {
	return []byte("pdf"), nil
}

func TestSummarize_TotalsAndCategories(t *testing.T) {
	repo := &stubTransactionRepo{entries: []entity.Transaction{
		{Type: entity.TransactionIncome, Category: "Bán hàng", Amount: 150000.50, Date: "2026-08-01"},
		{Type: entity.TransactionExpense, Category: "Nguyên liệu", Amount: 80000, Date: "2026-08-02"},
		{Type: entity.TransactionIncome, Category: "Bán hàng", Amount: 200000, Date: "2026-08-03"},
		// Outside the range, must be ignored.
		{Type: entity.TransactionIncome, Category: "Bán hàng", Amount: 999999, Date: "2026-09-01"},
	}}
	uc := report.NewReportUseCase(repo, stubPDF{})

	s, err := uc.Summarize(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, "350000.5", s.TotalIncome.String())
	assert.Equal(t, "80000", s.TotalExpense.String())
	assert.Equal(t, "270000.5", s.Net.String())
	assert.Len(t, s.Entries, 3)

	// Categories keep first-seen order.
	require.Len(t, s.Categories, 2)
	assert.Equal(t, "Bán hàng", s.Categories[0].Category)
	assert.Equal(t, "350000.5", s.Categories[0].Income.String())
	assert.Equal(t, "Nguyên liệu", s.Categories[1].Category)
	assert.Equal(t, "80000", s.Categories[1].Expense.String())
}

func TestSummarize_EmptyRange(t *testing.T) {
	uc := report.NewReportUseCase(&stubTransactionRepo{}, stubPDF{})

	s, err := uc.Summarize(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
	assert.True(t, s.Net.IsZero())
	assert.Empty(t, s.Categories)
}

func TestSummarize_RejectsBadRange(t *testing.T) {
	uc := report.NewReportUseCase(&stubTransactionRepo{}, stubPDF{})

	cases := []struct {
		name     string
		from, to string
	}{
		{"malformed from", "01-08-2026", "2026-08-31"},
		{"malformed to", "2026-08-01", "31/08/2026"},
		{"inverted", "2026-08-31", "2026-08-01"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Summarize(context.Background(), tc.from, tc.to)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestTransactionPDF_DelegatesToGenerator(t *testing.T) {
	uc := report.NewReportUseCase(&stubTransactionRepo{}, stubPDF{})

	pdf, err := uc.TransactionPDF(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), pdf)
}
