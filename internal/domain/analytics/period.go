package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// TrendLabel classifies a period's net result against its income.
type TrendLabel string

const (
	TrendStrongGrowth TrendLabel = "Strong Growth"
	TrendPositive     TrendLabel = "Positive"
	TrendBreakEven    TrendLabel = "Break-even"
	TrendLoss         TrendLabel = "Loss"
)

var (
	strongGrowthShare = decimal.NewFromFloat(0.2)
	breakEvenShare    = decimal.NewFromFloat(0.1)
)

// PeriodAnalysis is the financial summary of one ledger window.
type PeriodAnalysis struct {
	Window valueobject.DateWindow
	Aggregation
	NetProfit          decimal.Decimal
	ProfitMargin       int64 // whole percent
	AvgTransactionSize decimal.Decimal
	Trend              TrendLabel
}

// AnalyzePeriod selects the window from the ledger and summarizes it.
func AnalyzePeriod(ledger []entity.Transaction, w valueobject.DateWindow) PeriodAnalysis {
	return Summarize(Aggregate(SelectWindow(ledger, w)), w)
}

// Summarize derives the period metrics from an aggregation.
func Summarize(agg Aggregation, w valueobject.DateWindow) PeriodAnalysis {
	net := agg.Net()

	return PeriodAnalysis{
		Window:             w,
		Aggregation:        agg,
		NetProfit:          net,
		ProfitMargin:       ProfitMargin(net, agg.TotalIncome),
		AvgTransactionSize: averageTransactionSize(agg),
		Trend:              ClassifyTrend(net, agg.TotalIncome),
	}
}

// ProfitMargin returns net as a rounded whole percentage of income, or zero without income.
func ProfitMargin(net, income decimal.Decimal) int64 {
	if !income.IsPositive() {
		return 0
	}
	return percentOf(net, income)
}

// ClassifyTrend applies the trend thresholds in order; the first match wins.
// With zero income the first and third thresholds both collapse to zero.
func ClassifyTrend(net, income decimal.Decimal) TrendLabel {
	switch {
	case net.GreaterThan(income.Mul(strongGrowthShare)):
		return TrendStrongGrowth
	case net.IsPositive():
		return TrendPositive
	case net.GreaterThan(income.Mul(breakEvenShare).Neg()):
		return TrendBreakEven
	default:
		return TrendLoss
	}
}

func averageTransactionSize(agg Aggregation) decimal.Decimal {
	count := agg.IncomeTxCount + agg.ExpenseTxCount
	if count == 0 {
		return decimal.Zero
	}
	return agg.TotalIncome.Add(agg.TotalExpenses).Div(decimal.NewFromInt(int64(count)))
}
