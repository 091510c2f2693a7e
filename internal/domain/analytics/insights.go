package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// Rule pairs a predicate over a metric set with the message it produces.
type Rule[T any] struct {
	ID      string
	When    func(T) bool
	Message string
}

// Insight is one fired rule.
type Insight struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Fallback rule IDs, reported when no other rule fires.
const (
	InsightStablePerformance   = "stable-performance"
	InsightBalancedOccupancy   = "balanced-occupancy"
	InsightStableProfitability = "stable-profitability"
)

// Classify evaluates every rule in order and returns the ones that fire.
// When none fire the fallback is returned alone.
func Classify[T any](rules []Rule[T], input T, fallback Insight) []Insight {
	insights := make([]Insight, 0, len(rules))
	for _, rule := range rules {
		if rule.When(input) {
			insights = append(insights, Insight{ID: rule.ID, Message: rule.Message})
		}
	}
	if len(insights) == 0 {
		insights = append(insights, fallback)
	}
	return insights
}

// Messages returns the message text of each insight, in order.
func Messages(insights []Insight) []string {
	messages := make([]string, len(insights))
	for i, insight := range insights {
		messages[i] = insight.Message
	}
	return messages
}

// FinancialInput is the metric set the financial rules read.
type FinancialInput struct {
	Current       PeriodAnalysis // month to date
	Previous      PeriodAnalysis // previous full month
	YearToDate    PeriodAnalysis
	MonthsElapsed int
}

// monthlyAverageIncome is YTD income spread over the months elapsed so far.
func (in FinancialInput) monthlyAverageIncome() decimal.Decimal {
	return in.YearToDate.TotalIncome.Div(decimal.NewFromInt(int64(max(1, in.MonthsElapsed))))
}

// expenseRatio is YTD expenses over YTD income, zero without income.
func (in FinancialInput) expenseRatio() decimal.Decimal {
	return safeDiv(in.YearToDate.TotalExpenses, in.YearToDate.TotalIncome)
}

// FinancialRules returns the revenue, margin, expense and growth rules.
func FinancialRules(th valueobject.InsightThresholds) []Rule[FinancialInput] {
	growth := func(in FinancialInput) bool {
		return in.Current.TotalIncome.GreaterThan(in.Previous.TotalIncome.Mul(factor(th.RevenueGrowthFactor)))
	}

	return []Rule[FinancialInput]{
		{
			ID:      "revenue-growth",
			When:    growth,
			Message: "Strong revenue growth this month. Consider investing in property improvements.",
		},
		{
			ID: "revenue-decline",
			When: func(in FinancialInput) bool {
				return !growth(in) &&
					in.Current.TotalIncome.LessThan(in.Previous.TotalIncome.Mul(factor(th.RevenueDeclineFactor)))
			},
			Message: "Revenue declined from last month. Review pricing strategy and occupancy rates.",
		},
		{
			ID: "excellent-margin",
			When: func(in FinancialInput) bool {
				return in.YearToDate.ProfitMargin > th.HighMarginPercent
			},
			Message: "Excellent profit margins. Consider expanding or improving amenities.",
		},
		{
			ID: "low-margin",
			When: func(in FinancialInput) bool {
				return in.YearToDate.ProfitMargin < th.LowMarginPercent
			},
			Message: "Low profit margins. Review expenses and consider rent increases.",
		},
		{
			ID: "high-expense-ratio",
			When: func(in FinancialInput) bool {
				return in.expenseRatio().GreaterThan(factor(th.HighExpenseRatio))
			},
			Message: "High expense ratio. Look for cost reduction opportunities.",
		},
		{
			ID: "high-maintenance",
			When: func(in FinancialInput) bool {
				maintenance := in.YearToDate.ExpensesByCategory["Maintenance"]
				return maintenance.GreaterThan(in.YearToDate.TotalIncome.Mul(factor(th.MaintenanceIncomeShare)))
			},
			Message: "High maintenance costs. Consider preventive maintenance programs.",
		},
		{
			ID: "above-average-month",
			When: func(in FinancialInput) bool {
				return in.Current.TotalIncome.GreaterThan(in.monthlyAverageIncome().Mul(factor(th.AboveAverageFactor)))
			},
			Message: "Above-average performance this month. Great work!",
		},
	}
}

// ClassifyFinancial runs the financial rules.
func ClassifyFinancial(in FinancialInput, th valueobject.InsightThresholds) []Insight {
	return Classify(FinancialRules(th), in, Insight{
		ID:      InsightStablePerformance,
		Message: "Stable performance. Continue monitoring key metrics for optimization opportunities.",
	})
}

// OccupancyRules returns the occupancy balance and revenue benchmark rules.
func OccupancyRules(th valueobject.InsightThresholds) []Rule[OccupancyStats] {
	convertGuestRooms := func(s OccupancyStats) bool {
		return s.TenantOccupancy > th.TenantDemandPercent && s.GuestOccupancy < th.GuestSlackPercent
	}

	return []Rule[OccupancyStats]{
		{
			ID: "low-occupancy",
			When: func(s OccupancyStats) bool {
				return s.OverallOccupancy < th.LowOccupancyPercent
			},
			Message: "Low overall occupancy. Focus on marketing and competitive pricing.",
		},
		{
			ID: "excellent-occupancy",
			When: func(s OccupancyStats) bool {
				return s.OverallOccupancy > th.HighOccupancyPercent
			},
			Message: "Excellent occupancy! Consider raising rates or expanding capacity.",
		},
		{
			ID:      "convert-guest-rooms",
			When:    convertGuestRooms,
			Message: "Consider converting guest rooms to long-term rentals given high demand.",
		},
		{
			ID: "expand-short-term",
			When: func(s OccupancyStats) bool {
				return !convertGuestRooms(s) &&
					s.GuestOccupancy > th.GuestStrongPercent && s.TenantOccupancy < th.TenantWeakPercent
			},
			Message: "Guest rooms performing well. Consider expanding short-term offerings.",
		},
		{
			ID: "guest-rate-premium",
			When: func(s OccupancyStats) bool {
				return s.GuestADR.GreaterThan(s.TenantADR.Mul(factor(th.GuestADRPremiumFactor)))
			},
			Message: "Guest rooms generate higher daily rates. Optimize guest room mix.",
		},
		{
			ID: "tenant-revpar-below-benchmark",
			When: func(s OccupancyStats) bool {
				return s.TenantRevPAR.LessThan(factor(th.TenantRevPARBenchmark))
			},
			Message: "Long-term revenue below benchmark. Review rent levels and vacancy reduction.",
		},
	}
}

// ClassifyOccupancy runs the occupancy rules.
func ClassifyOccupancy(stats OccupancyStats, th valueobject.InsightThresholds) []Insight {
	return Classify(OccupancyRules(th), stats, Insight{
		ID:      InsightBalancedOccupancy,
		Message: "Occupancy performance is balanced. Continue monitoring for optimization opportunities.",
	})
}

// ProfitabilityInput is the metric set the profitability rules read.
type ProfitabilityInput struct {
	Monthly       ProfitabilityMetrics
	Quarterly     ProfitabilityMetrics
	Yearly        ProfitabilityMetrics
	MonthsElapsed int
}

func (in ProfitabilityInput) monthlyAverageProfit() decimal.Decimal {
	return in.Yearly.NetProfit.Div(decimal.NewFromInt(int64(max(1, in.MonthsElapsed))))
}

// ProfitabilityRules returns the margin, momentum, cash flow and ROI rules.
func ProfitabilityRules(th valueobject.InsightThresholds) []Rule[ProfitabilityInput] {
	strongMonth := func(in ProfitabilityInput) bool {
		return in.Monthly.NetProfit.GreaterThan(in.monthlyAverageProfit().Mul(factor(th.AboveAverageFactor)))
	}

	return []Rule[ProfitabilityInput]{
		{
			ID: "excellent-margin",
			When: func(in ProfitabilityInput) bool {
				return in.Yearly.ProfitMargin > th.HighMarginPercent
			},
			Message: "Excellent profit margins! Your property is highly profitable.",
		},
		{
			ID: "low-margin",
			When: func(in ProfitabilityInput) bool {
				return in.Yearly.ProfitMargin < th.LowMarginPercent
			},
			Message: "Low profit margins. Review expenses and consider rent increases.",
		},
		{
			ID:      "strong-month",
			When:    strongMonth,
			Message: "Strong performance this month! Above average profitability.",
		},
		{
			ID: "below-average-month",
			When: func(in ProfitabilityInput) bool {
				return !strongMonth(in) &&
					in.Monthly.NetProfit.LessThan(in.monthlyAverageProfit().Mul(factor(th.BelowAverageFactor)))
			},
			Message: "Below-average month. Review recent changes and seasonal factors.",
		},
		{
			ID: "negative-cash-flow",
			When: func(in ProfitabilityInput) bool {
				return in.Yearly.CashFlowRatio.LessThan(factor(th.NegativeCashFlowRatio))
			},
			Message: "Negative cash flow. Immediate action needed to reduce expenses or increase revenue.",
		},
		{
			ID: "strong-cash-flow",
			When: func(in ProfitabilityInput) bool {
				return in.Yearly.CashFlowRatio.GreaterThan(factor(th.StrongCashFlowRatio))
			},
			Message: "Strong cash flow. Consider reinvestment opportunities.",
		},
		{
			ID: "excellent-roi",
			When: func(in ProfitabilityInput) bool {
				return in.Yearly.ROIEstimate > th.HighROIPercent
			},
			Message: "Excellent ROI! Your investment is performing very well.",
		},
		{
			ID: "low-roi",
			When: func(in ProfitabilityInput) bool {
				return in.Yearly.ROIEstimate < th.LowROIPercent
			},
			Message: "ROI below market average. Consider optimization strategies.",
		},
	}
}

// ClassifyProfitability runs the profitability rules.
func ClassifyProfitability(in ProfitabilityInput, th valueobject.InsightThresholds) []Insight {
	return Classify(ProfitabilityRules(th), in, Insight{
		ID:      InsightStableProfitability,
		Message: "Stable profitability. Continue monitoring for optimization opportunities.",
	})
}

func factor(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
