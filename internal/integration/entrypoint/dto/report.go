package dto

import (
	"github.com/parsonage/property-ops/internal/application/usecase/report"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// DateWindowResponse represents an inclusive reporting window.
type DateWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ExtremeResponse represents the largest transaction on one side of the ledger.
type ExtremeResponse struct {
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
}

// CategoryAmountResponse represents one line of a sorted category breakdown.
type CategoryAmountResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

// InsightResponse represents a generated recommendation.
type InsightResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// PeriodAnalysisResponse represents the financial summary of one window.
type PeriodAnalysisResponse struct {
	Window              DateWindowResponse `json:"window"`
	TotalIncome         float64            `json:"total_income"`
	TotalExpenses       float64            `json:"total_expenses"`
	NetProfit           float64            `json:"net_profit"`
	ProfitMargin        int64              `json:"profit_margin"`
	AvgTransactionSize  float64            `json:"avg_transaction_size"`
	Trend               string             `json:"trend"`
	IncomeTxCount       int                `json:"income_tx_count"`
	ExpenseTxCount      int                `json:"expense_tx_count"`
	IncomeByCategory    map[string]float64 `json:"income_by_category"`
	ExpensesByCategory  map[string]float64 `json:"expenses_by_category"`
	PaymentMethodTotals map[string]float64 `json:"payment_method_totals"`
	LargestIncome       ExtremeResponse    `json:"largest_income"`
	LargestExpense      ExtremeResponse    `json:"largest_expense"`
}

// PeriodReportResponse is the response of GET /reports/period.
type PeriodReportResponse struct {
	Analysis         PeriodAnalysisResponse   `json:"analysis"`
	IncomeBreakdown  []CategoryAmountResponse `json:"income_breakdown"`
	ExpenseBreakdown []CategoryAmountResponse `json:"expense_breakdown"`
	UndatedRows      int                      `json:"undated_rows"`
}

// RevenueReportResponse is the response of GET /reports/revenue.
type RevenueReportResponse struct {
	Current              PeriodAnalysisResponse   `json:"current"`
	Previous             PeriodAnalysisResponse   `json:"previous"`
	YearToDate           PeriodAnalysisResponse   `json:"year_to_date"`
	IncomeChangePercent  float64                  `json:"income_change_percent"`
	AverageMonthlyIncome float64                  `json:"average_monthly_income"`
	IncomeStreams        []CategoryAmountResponse `json:"income_streams"`
	ExpenseStreams       []CategoryAmountResponse `json:"expense_streams"`
	Insights             []InsightResponse        `json:"insights"`
}

// ProfitabilityMetricsResponse represents profitability over one window.
type ProfitabilityMetricsResponse struct {
	Window           DateWindowResponse `json:"window"`
	TotalRevenue     float64            `json:"total_revenue"`
	TotalExpenses    float64            `json:"total_expenses"`
	NetProfit        float64            `json:"net_profit"`
	ProfitMargin     int64              `json:"profit_margin"`
	CashFlowRatio    float64            `json:"cash_flow_ratio"`
	EstimatedValue   float64            `json:"estimated_value"`
	ROIEstimate      int64              `json:"roi_estimate"`
	MonthsInPeriod   int                `json:"months_in_period"`
	BreakEvenMonthly float64            `json:"break_even_monthly"`
}

// ProfitabilityReportResponse is the response of GET /reports/profitability.
type ProfitabilityReportResponse struct {
	Monthly   ProfitabilityMetricsResponse `json:"monthly"`
	Quarterly ProfitabilityMetricsResponse `json:"quarterly"`
	Yearly    ProfitabilityMetricsResponse `json:"yearly"`
	Insights  []InsightResponse            `json:"insights"`
}

// OccupancyStatsResponse represents the occupancy snapshot.
type OccupancyStatsResponse struct {
	TotalRooms       int     `json:"total_rooms"`
	TotalOccupied    int     `json:"total_occupied"`
	TotalTenantRooms int     `json:"total_tenant_rooms"`
	TenantsOccupied  int     `json:"tenants_occupied"`
	TotalGuestRooms  int     `json:"total_guest_rooms"`
	GuestsOccupied   int     `json:"guests_occupied"`
	OverallOccupancy int64   `json:"overall_occupancy"`
	TenantOccupancy  int64   `json:"tenant_occupancy"`
	GuestOccupancy   int64   `json:"guest_occupancy"`
	TenantRevenue    float64 `json:"tenant_revenue"`
	GuestRevenue     float64 `json:"guest_revenue"`
	GuestNights      int     `json:"guest_nights"`
	TenantRevPAR     float64 `json:"tenant_revpar"`
	GuestRevPAR      float64 `json:"guest_revpar"`
	TenantADR        float64 `json:"tenant_adr"`
	GuestADR         float64 `json:"guest_adr"`
}

// OccupancyReportResponse is the response of GET /reports/occupancy.
type OccupancyReportResponse struct {
	Stats      OccupancyStatsResponse `json:"stats"`
	MonthStart string                 `json:"month_start"`
	Insights   []InsightResponse      `json:"insights"`
}

// TaxSummaryResponse is the response of GET /reports/tax.
type TaxSummaryResponse struct {
	Year                 int                      `json:"year"`
	Window               DateWindowResponse       `json:"window"`
	TotalIncome          float64                  `json:"total_income"`
	TotalDeductions      float64                  `json:"total_deductions"`
	NetIncome            float64                  `json:"net_income"`
	IncomeByCategory     map[string]float64       `json:"income_by_category"`
	DeductibleByCategory map[string]float64       `json:"deductible_by_category"`
	IncomeBreakdown      []CategoryAmountResponse `json:"income_breakdown"`
	DeductibleBreakdown  []CategoryAmountResponse `json:"deductible_breakdown"`
	Transactions         []TransactionResponse    `json:"transactions"`
}

// DashboardResponse is the response of GET /reports/dashboard.
type DashboardResponse struct {
	MonthLabel    string                      `json:"month_label"`
	Month         PeriodAnalysisResponse      `json:"month"`
	Quarter       PeriodAnalysisResponse      `json:"quarter"`
	Revenue       RevenueReportResponse       `json:"revenue"`
	Profitability ProfitabilityReportResponse `json:"profitability"`
	Occupancy     OccupancyReportResponse     `json:"occupancy"`
}

// ToDateWindowResponse converts a window to its DTO.
func ToDateWindowResponse(w valueobject.DateWindow) DateWindowResponse {
	return DateWindowResponse{
		Start: w.Start.Format(DateLayout),
		End:   w.End.Format(DateLayout),
	}
}

// ToPeriodAnalysisResponse converts a period analysis to its DTO.
func ToPeriodAnalysisResponse(a analytics.PeriodAnalysis) PeriodAnalysisResponse {
	return PeriodAnalysisResponse{
		Window:              ToDateWindowResponse(a.Window),
		TotalIncome:         Money(a.TotalIncome),
		TotalExpenses:       Money(a.TotalExpenses),
		NetProfit:           Money(a.NetProfit),
		ProfitMargin:        a.ProfitMargin,
		AvgTransactionSize:  Money(a.AvgTransactionSize),
		Trend:               string(a.Trend),
		IncomeTxCount:       a.IncomeTxCount,
		ExpenseTxCount:      a.ExpenseTxCount,
		IncomeByCategory:    moneyMap(a.IncomeByCategory),
		ExpensesByCategory:  moneyMap(a.ExpensesByCategory),
		PaymentMethodTotals: moneyMap(a.PaymentMethodTotals),
		LargestIncome:       ExtremeResponse{Amount: Money(a.LargestIncome.Amount), Source: a.LargestIncome.Source},
		LargestExpense:      ExtremeResponse{Amount: Money(a.LargestExpense.Amount), Source: a.LargestExpense.Source},
	}
}

// ToCategoryAmountResponses converts a sorted breakdown to DTOs.
func ToCategoryAmountResponses(lines []analytics.CategoryAmount) []CategoryAmountResponse {
	responses := make([]CategoryAmountResponse, len(lines))
	for i, line := range lines {
		responses[i] = CategoryAmountResponse{
			Category: line.Category,
			Amount:   Money(line.Amount),
			Percent:  line.Percent,
		}
	}
	return responses
}

// ToInsightResponses converts insights to DTOs.
func ToInsightResponses(insights []analytics.Insight) []InsightResponse {
	responses := make([]InsightResponse, len(insights))
	for i, insight := range insights {
		responses[i] = InsightResponse{ID: insight.ID, Message: insight.Message}
	}
	return responses
}

// ToPeriodReportResponse converts the period analysis output to its DTO.
func ToPeriodReportResponse(output *report.GetPeriodAnalysisOutput) PeriodReportResponse {
	return PeriodReportResponse{
		Analysis:         ToPeriodAnalysisResponse(output.Analysis),
		IncomeBreakdown:  ToCategoryAmountResponses(output.IncomeBreakdown),
		ExpenseBreakdown: ToCategoryAmountResponses(output.ExpenseBreakdown),
		UndatedRows:      output.UndatedRows,
	}
}

// ToRevenueReportResponse converts the revenue analysis output to its DTO.
func ToRevenueReportResponse(output *report.GetRevenueAnalysisOutput) RevenueReportResponse {
	return RevenueReportResponse{
		Current:              ToPeriodAnalysisResponse(output.Current),
		Previous:             ToPeriodAnalysisResponse(output.Previous),
		YearToDate:           ToPeriodAnalysisResponse(output.YearToDate),
		IncomeChangePercent:  output.IncomeChangePercent.InexactFloat64(),
		AverageMonthlyIncome: Money(output.AverageMonthlyIncome),
		IncomeStreams:        ToCategoryAmountResponses(output.IncomeStreams),
		ExpenseStreams:       ToCategoryAmountResponses(output.ExpenseStreams),
		Insights:             ToInsightResponses(output.Insights),
	}
}

// ToProfitabilityMetricsResponse converts profitability metrics to their DTO.
func ToProfitabilityMetricsResponse(m analytics.ProfitabilityMetrics) ProfitabilityMetricsResponse {
	return ProfitabilityMetricsResponse{
		Window:           ToDateWindowResponse(m.Window),
		TotalRevenue:     Money(m.TotalRevenue),
		TotalExpenses:    Money(m.TotalExpenses),
		NetProfit:        Money(m.NetProfit),
		ProfitMargin:     m.ProfitMargin,
		CashFlowRatio:    m.CashFlowRatio.InexactFloat64(),
		EstimatedValue:   Money(m.EstimatedValue),
		ROIEstimate:      m.ROIEstimate,
		MonthsInPeriod:   m.MonthsInPeriod,
		BreakEvenMonthly: Money(m.BreakEvenMonthly),
	}
}

// ToProfitabilityReportResponse converts the profitability output to its DTO.
func ToProfitabilityReportResponse(output *report.GetProfitabilityOutput) ProfitabilityReportResponse {
	return ProfitabilityReportResponse{
		Monthly:   ToProfitabilityMetricsResponse(output.Monthly),
		Quarterly: ToProfitabilityMetricsResponse(output.Quarterly),
		Yearly:    ToProfitabilityMetricsResponse(output.Yearly),
		Insights:  ToInsightResponses(output.Insights),
	}
}

// ToOccupancyReportResponse converts the occupancy output to its DTO.
func ToOccupancyReportResponse(output *report.GetOccupancyOutput) OccupancyReportResponse {
	s := output.Stats
	return OccupancyReportResponse{
		Stats: OccupancyStatsResponse{
			TotalRooms:       s.TotalRooms,
			TotalOccupied:    s.TotalOccupied,
			TotalTenantRooms: s.TotalTenantRooms,
			TenantsOccupied:  s.TenantsOccupied,
			TotalGuestRooms:  s.TotalGuestRooms,
			GuestsOccupied:   s.GuestsOccupied,
			OverallOccupancy: s.OverallOccupancy,
			TenantOccupancy:  s.TenantOccupancy,
			GuestOccupancy:   s.GuestOccupancy,
			TenantRevenue:    Money(s.TenantRevenue),
			GuestRevenue:     Money(s.GuestRevenue),
			GuestNights:      s.GuestNights,
			TenantRevPAR:     Money(s.TenantRevPAR),
			GuestRevPAR:      Money(s.GuestRevPAR),
			TenantADR:        Money(s.TenantADR),
			GuestADR:         Money(s.GuestADR),
		},
		MonthStart: output.MonthStart.Format(DateLayout),
		Insights:   ToInsightResponses(output.Insights),
	}
}

// ToTaxSummaryResponse converts the tax summary output to its DTO.
func ToTaxSummaryResponse(output *report.GetTaxSummaryOutput) TaxSummaryResponse {
	return TaxSummaryResponse{
		Year:                 output.Year,
		Window:               ToDateWindowResponse(output.Summary.Window),
		TotalIncome:          Money(output.Summary.TotalIncome),
		TotalDeductions:      Money(output.Summary.TotalDeductions),
		NetIncome:            Money(output.Summary.NetIncome),
		IncomeByCategory:     moneyMap(output.Summary.IncomeByCategory),
		DeductibleByCategory: moneyMap(output.Summary.DeductibleByCategory),
		IncomeBreakdown:      ToCategoryAmountResponses(output.IncomeBreakdown),
		DeductibleBreakdown:  ToCategoryAmountResponses(output.DeductibleBreakdown),
		Transactions:         ToTransactionListResponse(output.Transactions),
	}
}

// ToDashboardResponse converts the dashboard output to its DTO.
func ToDashboardResponse(output *report.GetDashboardOutput) DashboardResponse {
	return DashboardResponse{
		MonthLabel:    output.MonthLabel,
		Month:         ToPeriodAnalysisResponse(output.Month),
		Quarter:       ToPeriodAnalysisResponse(output.Quarter),
		Revenue:       ToRevenueReportResponse(output.Revenue),
		Profitability: ToProfitabilityReportResponse(output.Profitability),
		Occupancy:     ToOccupancyReportResponse(output.Occupancy),
	}
}
