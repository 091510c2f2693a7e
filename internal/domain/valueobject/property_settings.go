// Package valueobject contains domain value objects for the property operations backend.
package valueobject

import (
	"strings"
	"time"
)

// DefaultDeductibleCategories is the allow-list of expense categories counted in tax summaries.
var DefaultDeductibleCategories = []string{
	"Maintenance",
	"Utilities",
	"Insurance",
	"Property Tax",
	"Advertising",
	"Professional Services",
	"Supplies",
	"Repairs",
	"Management Fees",
	"Legal Fees",
}

// PropertySettings is the per-property configuration passed into every report computation.
type PropertySettings struct {
	PropertyName         string            `yaml:"property_name"`
	ManagerEmail         string            `yaml:"manager_email"`
	Currency             string            `yaml:"currency"`
	TimeZone             string            `yaml:"time_zone"`
	LateFeeDays          int               `yaml:"late_fee_days"`
	LateFeeAmount        float64           `yaml:"late_fee_amount"`
	DeductibleCategories []string          `yaml:"deductible_categories"`
	Insights             InsightThresholds `yaml:"insights"`
}

// DefaultPropertySettings returns the settings the property has always run with.
func DefaultPropertySettings() PropertySettings {
	categories := make([]string, len(DefaultDeductibleCategories))
	copy(categories, DefaultDeductibleCategories)

	return PropertySettings{
		PropertyName:         "Parsonage Living Community",
		Currency:             "USD",
		TimeZone:             "UTC",
		LateFeeDays:          5,
		LateFeeAmount:        25,
		DeductibleCategories: categories,
		Insights:             DefaultInsightThresholds(),
	}
}

// IsDeductible reports whether an expense category is on the deductible allow-list.
// Matching is exact after trimming surrounding whitespace.
func (s PropertySettings) IsDeductible(category string) bool {
	category = strings.TrimSpace(category)
	for _, c := range s.DeductibleCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Location returns the property's time zone, or UTC when TimeZone is empty or unknown.
func (s PropertySettings) Location() *time.Location {
	if s.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// InsightThresholds holds the fixed thresholds the insight rules compare against.
type InsightThresholds struct {
	// Financial rules
	RevenueGrowthFactor    float64 `yaml:"revenue_growth_factor"`    // 1.1 = +10% vs last month
	RevenueDeclineFactor   float64 `yaml:"revenue_decline_factor"`   // 0.9 = -10% vs last month
	HighMarginPercent      int64   `yaml:"high_margin_percent"`      // 25
	LowMarginPercent       int64   `yaml:"low_margin_percent"`       // 10
	HighExpenseRatio       float64 `yaml:"high_expense_ratio"`       // 0.7
	MaintenanceIncomeShare float64 `yaml:"maintenance_income_share"` // 0.15
	AboveAverageFactor     float64 `yaml:"above_average_factor"`     // 1.2
	BelowAverageFactor     float64 `yaml:"below_average_factor"`     // 0.8
	NegativeCashFlowRatio  float64 `yaml:"negative_cash_flow_ratio"` // 1.0
	StrongCashFlowRatio    float64 `yaml:"strong_cash_flow_ratio"`   // 1.5
	HighROIPercent         int64   `yaml:"high_roi_percent"`         // 12
	LowROIPercent          int64   `yaml:"low_roi_percent"`          // 6

	// Occupancy rules
	LowOccupancyPercent   int64   `yaml:"low_occupancy_percent"`    // 70
	HighOccupancyPercent  int64   `yaml:"high_occupancy_percent"`   // 90
	TenantDemandPercent   int64   `yaml:"tenant_demand_percent"`    // 95
	GuestSlackPercent     int64   `yaml:"guest_slack_percent"`      // 50
	GuestStrongPercent    int64   `yaml:"guest_strong_percent"`     // 80
	TenantWeakPercent     int64   `yaml:"tenant_weak_percent"`      // 70
	GuestADRPremiumFactor float64 `yaml:"guest_adr_premium_factor"` // 1.5
	TenantRevPARBenchmark float64 `yaml:"tenant_revpar_benchmark"`  // 500
}

// DefaultInsightThresholds returns the thresholds the property reports have always used.
func DefaultInsightThresholds() InsightThresholds {
	return InsightThresholds{
		RevenueGrowthFactor:    1.1,
		RevenueDeclineFactor:   0.9,
		HighMarginPercent:      25,
		LowMarginPercent:       10,
		HighExpenseRatio:       0.7,
		MaintenanceIncomeShare: 0.15,
		AboveAverageFactor:     1.2,
		BelowAverageFactor:     0.8,
		NegativeCashFlowRatio:  1.0,
		StrongCashFlowRatio:    1.5,
		HighROIPercent:         12,
		LowROIPercent:          6,

		LowOccupancyPercent:   70,
		HighOccupancyPercent:  90,
		TenantDemandPercent:   95,
		GuestSlackPercent:     50,
		GuestStrongPercent:    80,
		TenantWeakPercent:     70,
		GuestADRPremiumFactor: 1.5,
		TenantRevPARBenchmark: 500,
	}
}
