package report

import (
	"context"
	"time"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// GetPeriodAnalysisInput optionally names an inclusive window. The current calendar month is
// used when both bounds are nil.
type GetPeriodAnalysisInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// GetPeriodAnalysisOutput is the analysis plus sorted category breakdowns.
type GetPeriodAnalysisOutput struct {
	Analysis         analytics.PeriodAnalysis
	IncomeBreakdown  []analytics.CategoryAmount
	ExpenseBreakdown []analytics.CategoryAmount
	UndatedRows      int // ledger rows no window can select
}

// GetPeriodAnalysisUseCase computes the financial summary of one window.
type GetPeriodAnalysisUseCase struct {
	ledgerRepo adapter.LedgerRepository
	clock      adapter.Clock
}

// NewGetPeriodAnalysisUseCase creates a new GetPeriodAnalysisUseCase instance.
func NewGetPeriodAnalysisUseCase(ledgerRepo adapter.LedgerRepository, clock adapter.Clock) *GetPeriodAnalysisUseCase {
	return &GetPeriodAnalysisUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
	}
}

// Execute runs the analysis.
func (uc *GetPeriodAnalysisUseCase) Execute(ctx context.Context, input GetPeriodAnalysisInput) (*GetPeriodAnalysisOutput, error) {
	window, err := resolveWindow(input.StartDate, input.EndDate, valueobject.CalendarMonth(uc.clock.Now()))
	if err != nil {
		return nil, err
	}

	ledger, err := loadLedger(ctx, uc.ledgerRepo)
	if err != nil {
		return nil, err
	}

	analysis := analytics.AnalyzePeriod(ledger, window)

	return &GetPeriodAnalysisOutput{
		Analysis:         analysis,
		IncomeBreakdown:  analytics.SortedBreakdown(analysis.IncomeByCategory, analysis.TotalIncome),
		ExpenseBreakdown: analytics.SortedBreakdown(analysis.ExpensesByCategory, analysis.TotalExpenses),
		UndatedRows:      analytics.CountUndated(ledger),
	}, nil
}
