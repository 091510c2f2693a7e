package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// TaxSummary is the deductible-only view of a tax year.
type TaxSummary struct {
	Window               valueobject.DateWindow
	TotalIncome          decimal.Decimal
	TotalDeductions      decimal.Decimal
	NetIncome            decimal.Decimal
	IncomeByCategory     map[string]decimal.Decimal
	DeductibleByCategory map[string]decimal.Decimal
}

// ComputeTaxSummary re-aggregates the window for tax purposes.
//
// Every positive amount is income whatever its category. A negative amount counts as a
// deduction only when settings lists its category as deductible; other expenses appear
// nowhere in the summary.
func ComputeTaxSummary(
	ledger []entity.Transaction,
	w valueobject.DateWindow,
	settings valueobject.PropertySettings,
) TaxSummary {
	summary := TaxSummary{
		Window:               w,
		TotalIncome:          decimal.Zero,
		TotalDeductions:      decimal.Zero,
		IncomeByCategory:     make(map[string]decimal.Decimal),
		DeductibleByCategory: make(map[string]decimal.Decimal),
	}

	for _, tx := range SelectWindow(ledger, w) {
		category := tx.CategoryOrDefault()

		switch {
		case tx.IsIncome():
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			summary.IncomeByCategory[category] = summary.IncomeByCategory[category].Add(tx.Amount)
		case tx.IsExpense() && settings.IsDeductible(category):
			abs := tx.Amount.Abs()
			summary.TotalDeductions = summary.TotalDeductions.Add(abs)
			summary.DeductibleByCategory[category] = summary.DeductibleByCategory[category].Add(abs)
		}
	}

	summary.NetIncome = summary.TotalIncome.Sub(summary.TotalDeductions)
	return summary
}
