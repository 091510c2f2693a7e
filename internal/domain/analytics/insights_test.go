package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

func insightIDs(insights []Insight) []string {
	ids := make([]string, len(insights))
	for i, insight := range insights {
		ids[i] = insight.ID
	}
	return ids
}

func TestClassify_FallbackWhenNothingFires(t *testing.T) {
	rules := []Rule[int]{
		{ID: "big", When: func(n int) bool { return n > 100 }, Message: "big"},
	}

	got := Classify(rules, 5, Insight{ID: "fallback", Message: "nothing to report"})

	require.Len(t, got, 1)
	assert.Equal(t, "fallback", got[0].ID)
}

func TestClassify_EveryRuleIsChecked(t *testing.T) {
	rules := []Rule[int]{
		{ID: "positive", When: func(n int) bool { return n > 0 }, Message: "positive"},
		{ID: "even", When: func(n int) bool { return n%2 == 0 }, Message: "even"},
		{ID: "huge", When: func(n int) bool { return n > 1000 }, Message: "huge"},
	}

	got := Classify(rules, 4, Insight{ID: "fallback"})

	assert.Equal(t, []string{"positive", "even"}, insightIDs(got))
	assert.Equal(t, []string{"positive", "even"}, Messages(got))
}

// stableFinancial returns an input that fires no financial rule.
func stableFinancial() FinancialInput {
	return FinancialInput{
		Current:  PeriodAnalysis{Aggregation: Aggregation{TotalIncome: dec("1000")}},
		Previous: PeriodAnalysis{Aggregation: Aggregation{TotalIncome: dec("1000")}},
		YearToDate: PeriodAnalysis{
			Aggregation: Aggregation{
				TotalIncome:        dec("3000"),
				TotalExpenses:      dec("1800"),
				ExpensesByCategory: map[string]decimal.Decimal{"Maintenance": dec("100")},
			},
			ProfitMargin: 20,
		},
		MonthsElapsed: 3,
	}
}

func TestClassifyFinancial(t *testing.T) {
	th := valueobject.DefaultInsightThresholds()

	tests := []struct {
		name   string
		mutate func(in *FinancialInput)
		want   []string
	}{
		{
			name:   "stable",
			mutate: func(in *FinancialInput) {},
			want:   []string{InsightStablePerformance},
		},
		{
			name: "revenue growth and above average month",
			mutate: func(in *FinancialInput) {
				in.Current.TotalIncome = dec("1250")
			},
			want: []string{"revenue-growth", "above-average-month"},
		},
		{
			name: "revenue decline",
			mutate: func(in *FinancialInput) {
				in.Current.TotalIncome = dec("800")
			},
			want: []string{"revenue-decline"},
		},
		{
			name: "excellent margin",
			mutate: func(in *FinancialInput) {
				in.YearToDate.ProfitMargin = 30
			},
			want: []string{"excellent-margin"},
		},
		{
			name: "low margin",
			mutate: func(in *FinancialInput) {
				in.YearToDate.ProfitMargin = 5
			},
			want: []string{"low-margin"},
		},
		{
			name: "high expense ratio",
			mutate: func(in *FinancialInput) {
				in.YearToDate.TotalExpenses = dec("2700")
			},
			want: []string{"high-expense-ratio"},
		},
		{
			name: "high maintenance",
			mutate: func(in *FinancialInput) {
				in.YearToDate.ExpensesByCategory["Maintenance"] = dec("500")
			},
			want: []string{"high-maintenance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := stableFinancial()
			tt.mutate(&in)
			assert.Equal(t, tt.want, insightIDs(ClassifyFinancial(in, th)))
		})
	}
}

func TestClassifyFinancial_NoIncomeAnywhere(t *testing.T) {
	got := ClassifyFinancial(FinancialInput{MonthsElapsed: 1}, valueobject.DefaultInsightThresholds())

	// Zero margin is below the low margin threshold; nothing else can fire without income.
	assert.Equal(t, []string{"low-margin"}, insightIDs(got))
}

// balancedOccupancy returns stats that fire no occupancy rule.
func balancedOccupancy() OccupancyStats {
	return OccupancyStats{
		OverallOccupancy: 80,
		TenantOccupancy:  80,
		GuestOccupancy:   75,
		TenantRevPAR:     dec("600"),
		TenantADR:        dec("25"),
		GuestADR:         dec("30"),
	}
}

func TestClassifyOccupancy(t *testing.T) {
	th := valueobject.DefaultInsightThresholds()

	tests := []struct {
		name   string
		mutate func(s *OccupancyStats)
		want   []string
	}{
		{
			name:   "balanced",
			mutate: func(s *OccupancyStats) {},
			want:   []string{InsightBalancedOccupancy},
		},
		{
			name:   "low occupancy",
			mutate: func(s *OccupancyStats) { s.OverallOccupancy = 60 },
			want:   []string{"low-occupancy"},
		},
		{
			name:   "excellent occupancy",
			mutate: func(s *OccupancyStats) { s.OverallOccupancy = 95 },
			want:   []string{"excellent-occupancy"},
		},
		{
			name: "convert guest rooms",
			mutate: func(s *OccupancyStats) {
				s.TenantOccupancy = 100
				s.GuestOccupancy = 40
			},
			want: []string{"convert-guest-rooms"},
		},
		{
			name: "expand short term",
			mutate: func(s *OccupancyStats) {
				s.TenantOccupancy = 60
				s.GuestOccupancy = 90
			},
			want: []string{"expand-short-term"},
		},
		{
			name:   "guest rate premium",
			mutate: func(s *OccupancyStats) { s.GuestADR = dec("40") },
			want:   []string{"guest-rate-premium"},
		},
		{
			name:   "tenant revpar below benchmark",
			mutate: func(s *OccupancyStats) { s.TenantRevPAR = dec("375") },
			want:   []string{"tenant-revpar-below-benchmark"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := balancedOccupancy()
			tt.mutate(&s)
			assert.Equal(t, tt.want, insightIDs(ClassifyOccupancy(s, th)))
		})
	}
}

func TestClassifyOccupancy_MultipleRulesFire(t *testing.T) {
	s := balancedOccupancy()
	s.OverallOccupancy = 50
	s.TenantRevPAR = dec("100")

	got := ClassifyOccupancy(s, valueobject.DefaultInsightThresholds())

	assert.Equal(t, []string{"low-occupancy", "tenant-revpar-below-benchmark"}, insightIDs(got))
}

// stableProfitability returns an input that fires no profitability rule.
func stableProfitability() ProfitabilityInput {
	return ProfitabilityInput{
		Monthly: ProfitabilityMetrics{NetProfit: dec("1000")},
		Yearly: ProfitabilityMetrics{
			NetProfit:     dec("3000"),
			ProfitMargin:  20,
			CashFlowRatio: dec("1.25"),
			ROIEstimate:   10,
		},
		MonthsElapsed: 3,
	}
}

func TestClassifyProfitability(t *testing.T) {
	th := valueobject.DefaultInsightThresholds()

	tests := []struct {
		name   string
		mutate func(in *ProfitabilityInput)
		want   []string
	}{
		{
			name:   "stable",
			mutate: func(in *ProfitabilityInput) {},
			want:   []string{InsightStableProfitability},
		},
		{
			name:   "excellent margin",
			mutate: func(in *ProfitabilityInput) { in.Yearly.ProfitMargin = 40 },
			want:   []string{"excellent-margin"},
		},
		{
			name:   "low margin",
			mutate: func(in *ProfitabilityInput) { in.Yearly.ProfitMargin = 8 },
			want:   []string{"low-margin"},
		},
		{
			name:   "strong month",
			mutate: func(in *ProfitabilityInput) { in.Monthly.NetProfit = dec("1500") },
			want:   []string{"strong-month"},
		},
		{
			name:   "below average month",
			mutate: func(in *ProfitabilityInput) { in.Monthly.NetProfit = dec("500") },
			want:   []string{"below-average-month"},
		},
		{
			name:   "negative cash flow",
			mutate: func(in *ProfitabilityInput) { in.Yearly.CashFlowRatio = dec("0.9") },
			want:   []string{"negative-cash-flow"},
		},
		{
			name:   "strong cash flow",
			mutate: func(in *ProfitabilityInput) { in.Yearly.CashFlowRatio = dec("2") },
			want:   []string{"strong-cash-flow"},
		},
		{
			name:   "excellent roi",
			mutate: func(in *ProfitabilityInput) { in.Yearly.ROIEstimate = 15 },
			want:   []string{"excellent-roi"},
		},
		{
			name:   "low roi",
			mutate: func(in *ProfitabilityInput) { in.Yearly.ROIEstimate = 3 },
			want:   []string{"low-roi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := stableProfitability()
			tt.mutate(&in)
			assert.Equal(t, tt.want, insightIDs(ClassifyProfitability(in, th)))
		})
	}
}

func TestClassifyProfitability_MomentumRulesExcludeEachOther(t *testing.T) {
	// With a negative average both momentum comparisons can hold at once.
	in := stableProfitability()
	in.Yearly.NetProfit = dec("-1200")
	in.Monthly.NetProfit = dec("-350")

	got := insightIDs(ClassifyProfitability(in, valueobject.DefaultInsightThresholds()))

	assert.Contains(t, got, "strong-month")
	assert.NotContains(t, got, "below-average-month")
}

func TestClassifyProfitability_EmptyYearFlagsCashFlow(t *testing.T) {
	got := insightIDs(ClassifyProfitability(ProfitabilityInput{}, valueobject.DefaultInsightThresholds()))

	assert.Equal(t, []string{"low-margin", "negative-cash-flow", "low-roi"}, got)
}
