package analytics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

const (
	monthsPerYear          = 12
	capitalizationMultiple = 10
	daysPerMonth           = 30
)

// ProfitabilityMetrics summarizes how profitable a ledger window was.
type ProfitabilityMetrics struct {
	Window           valueobject.DateWindow
	TotalRevenue     decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetProfit        decimal.Decimal
	ProfitMargin     int64
	CashFlowRatio    decimal.Decimal
	EstimatedValue   decimal.Decimal
	ROIEstimate      int64 // whole percent
	MonthsInPeriod   int
	BreakEvenMonthly decimal.Decimal
}

// ComputeProfitability selects the window from the ledger and derives profitability ratios.
func ComputeProfitability(ledger []entity.Transaction, w valueobject.DateWindow) ProfitabilityMetrics {
	return Profitability(Aggregate(SelectWindow(ledger, w)), w)
}

// Profitability derives the ratios from an aggregation's totals.
//
// The ROI figure is a coarse heuristic, not a valuation: the property is assumed to be worth
// ten times the window's revenue annualized, and ROI is the annualized net profit over that.
func Profitability(agg Aggregation, w valueobject.DateWindow) ProfitabilityMetrics {
	revenue := agg.TotalIncome
	expenses := agg.TotalExpenses
	net := revenue.Sub(expenses)

	estimatedValue := revenue.Mul(decimal.NewFromInt(monthsPerYear * capitalizationMultiple))
	var roi int64
	if estimatedValue.IsPositive() {
		roi = roundHalfUp(net.Mul(decimal.NewFromInt(monthsPerYear)).Div(estimatedValue).Mul(hundred))
	}

	months := MonthsInPeriod(w)

	return ProfitabilityMetrics{
		Window:           w,
		TotalRevenue:     revenue,
		TotalExpenses:    expenses,
		NetProfit:        net,
		ProfitMargin:     ProfitMargin(net, revenue),
		CashFlowRatio:    safeDiv(revenue, expenses),
		EstimatedValue:   estimatedValue,
		ROIEstimate:      roi,
		MonthsInPeriod:   months,
		BreakEvenMonthly: expenses.Div(decimal.NewFromInt(int64(months))),
	}
}

// MonthsInPeriod returns max(1, ceil(days/30)) for the window.
func MonthsInPeriod(w valueobject.DateWindow) int {
	months := int(math.Ceil(w.Days() / daysPerMonth))
	if months < 1 {
		return 1
	}
	return months
}
