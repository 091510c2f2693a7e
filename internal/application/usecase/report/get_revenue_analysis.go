package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// GetRevenueAnalysisOutput compares this month with last month and the year so far.
type GetRevenueAnalysisOutput struct {
	Current              analytics.PeriodAnalysis // month to date
	Previous             analytics.PeriodAnalysis // previous full month
	YearToDate           analytics.PeriodAnalysis
	IncomeChangePercent  decimal.Decimal // one decimal place, zero without previous income
	AverageMonthlyIncome decimal.Decimal
	IncomeStreams        []analytics.CategoryAmount // year to date
	ExpenseStreams       []analytics.CategoryAmount // year to date
	Insights             []analytics.Insight
}

// GetRevenueAnalysisUseCase builds the month-over-month revenue view.
type GetRevenueAnalysisUseCase struct {
	ledgerRepo adapter.LedgerRepository
	clock      adapter.Clock
	settings   valueobject.PropertySettings
}

// NewGetRevenueAnalysisUseCase creates a new GetRevenueAnalysisUseCase instance.
func NewGetRevenueAnalysisUseCase(
	ledgerRepo adapter.LedgerRepository,
	clock adapter.Clock,
	settings valueobject.PropertySettings,
) *GetRevenueAnalysisUseCase {
	return &GetRevenueAnalysisUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
		settings:   settings,
	}
}

// Execute runs the analysis.
func (uc *GetRevenueAnalysisUseCase) Execute(ctx context.Context) (*GetRevenueAnalysisOutput, error) {
	ledger, err := loadLedger(ctx, uc.ledgerRepo)
	if err != nil {
		return nil, err
	}
	return buildRevenueAnalysis(ledger, uc.clock.Now(), uc.settings.Insights), nil
}

func buildRevenueAnalysis(ledger []entity.Transaction, now time.Time, th valueobject.InsightThresholds) *GetRevenueAnalysisOutput {
	input := financialInput(ledger, now)
	months := decimal.NewFromInt(int64(input.MonthsElapsed))

	return &GetRevenueAnalysisOutput{
		Current:              input.Current,
		Previous:             input.Previous,
		YearToDate:           input.YearToDate,
		IncomeChangePercent:  incomeChangePercent(input.Current.TotalIncome, input.Previous.TotalIncome),
		AverageMonthlyIncome: input.YearToDate.TotalIncome.Div(months),
		IncomeStreams:        analytics.SortedBreakdown(input.YearToDate.IncomeByCategory, input.YearToDate.TotalIncome),
		ExpenseStreams:       analytics.SortedBreakdown(input.YearToDate.ExpensesByCategory, input.YearToDate.TotalExpenses),
		Insights:             analytics.ClassifyFinancial(input, th),
	}
}

func financialInput(ledger []entity.Transaction, now time.Time) analytics.FinancialInput {
	return analytics.FinancialInput{
		Current:       analytics.AnalyzePeriod(ledger, valueobject.MonthToDate(now)),
		Previous:      analytics.AnalyzePeriod(ledger, valueobject.PreviousMonth(now)),
		YearToDate:    analytics.AnalyzePeriod(ledger, valueobject.YearToDate(now)),
		MonthsElapsed: valueobject.MonthsElapsed(now),
	}
}

func incomeChangePercent(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1)
}
