package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
)

// Extreme records the largest transaction seen on one side of the ledger.
type Extreme struct {
	Amount decimal.Decimal
	Source string
}

// Aggregation is the result of a single pass over a set of transactions.
type Aggregation struct {
	TotalIncome         decimal.Decimal
	TotalExpenses       decimal.Decimal // absolute value
	IncomeTxCount       int
	ExpenseTxCount      int
	IncomeByCategory    map[string]decimal.Decimal
	ExpensesByCategory  map[string]decimal.Decimal
	PaymentMethodTotals map[string]decimal.Decimal
	LargestIncome       Extreme
	LargestExpense      Extreme
}

// Aggregate folds txs into income and expense totals and breakdowns.
//
// Zero amounts only count towards payment method totals. A later transaction replaces the
// largest income or expense only when strictly greater, so ties keep the earliest one.
func Aggregate(txs []entity.Transaction) Aggregation {
	agg := Aggregation{
		TotalIncome:         decimal.Zero,
		TotalExpenses:       decimal.Zero,
		IncomeByCategory:    make(map[string]decimal.Decimal),
		ExpensesByCategory:  make(map[string]decimal.Decimal),
		PaymentMethodTotals: make(map[string]decimal.Decimal),
		LargestIncome:       Extreme{Amount: decimal.Zero},
		LargestExpense:      Extreme{Amount: decimal.Zero},
	}

	for _, tx := range txs {
		abs := tx.Amount.Abs()
		category := tx.CategoryOrDefault()

		method := tx.PaymentMethodOrDefault()
		agg.PaymentMethodTotals[method] = agg.PaymentMethodTotals[method].Add(abs)

		switch {
		case tx.IsIncome():
			agg.IncomeTxCount++
			agg.TotalIncome = agg.TotalIncome.Add(abs)
			agg.IncomeByCategory[category] = agg.IncomeByCategory[category].Add(abs)
			if abs.GreaterThan(agg.LargestIncome.Amount) {
				agg.LargestIncome = Extreme{Amount: abs, Source: tx.Description}
			}
		case tx.IsExpense():
			agg.ExpenseTxCount++
			agg.TotalExpenses = agg.TotalExpenses.Add(abs)
			agg.ExpensesByCategory[category] = agg.ExpensesByCategory[category].Add(abs)
			if abs.GreaterThan(agg.LargestExpense.Amount) {
				agg.LargestExpense = Extreme{Amount: abs, Source: tx.Description}
			}
		}
	}

	return agg
}

// Net returns income minus expenses.
func (a Aggregation) Net() decimal.Decimal {
	return a.TotalIncome.Sub(a.TotalExpenses)
}

// CategoryAmount is one line of a sorted category breakdown.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
	Percent  float64 // share of total, one decimal place
}

// SortedBreakdown orders a category map by amount descending, then by name, and attaches
// each category's share of total.
func SortedBreakdown(byCategory map[string]decimal.Decimal, total decimal.Decimal) []CategoryAmount {
	items := make([]CategoryAmount, 0, len(byCategory))
	for category, amount := range byCategory {
		var pct float64
		if !total.IsZero() {
			pct, _ = amount.Mul(hundred).Div(total).Round(1).Float64()
		}
		items = append(items, CategoryAmount{Category: category, Amount: amount, Percent: pct})
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].Amount.Equal(items[j].Amount) {
			return items[i].Amount.GreaterThan(items[j].Amount)
		}
		return items[i].Category < items[j].Category
	})
	return items
}
