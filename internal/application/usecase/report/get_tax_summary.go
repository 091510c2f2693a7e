package report

import (
	"context"
	"fmt"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

const (
	minTaxYear = 1900
	maxTaxYear = 9999
)

// GetTaxSummaryInput selects a calendar year. Zero means the current year.
type GetTaxSummaryInput struct {
	Year int
}

// GetTaxSummaryOutput is the tax view of one calendar year.
type GetTaxSummaryOutput struct {
	Year                int
	Summary             analytics.TaxSummary
	IncomeBreakdown     []analytics.CategoryAmount
	DeductibleBreakdown []analytics.CategoryAmount
	Transactions        []entity.Transaction // every row dated in the year
}

// GetTaxSummaryUseCase computes the deductible-only summary of a tax year.
type GetTaxSummaryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	clock      adapter.Clock
	settings   valueobject.PropertySettings
}

// NewGetTaxSummaryUseCase creates a new GetTaxSummaryUseCase instance.
func NewGetTaxSummaryUseCase(
	ledgerRepo adapter.LedgerRepository,
	clock adapter.Clock,
	settings valueobject.PropertySettings,
) *GetTaxSummaryUseCase {
	return &GetTaxSummaryUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
		settings:   settings,
	}
}

// Execute runs the calculation.
func (uc *GetTaxSummaryUseCase) Execute(ctx context.Context, input GetTaxSummaryInput) (*GetTaxSummaryOutput, error) {
	year := input.Year
	if year == 0 {
		year = uc.clock.Now().Year()
	}
	if year < minTaxYear || year > maxTaxYear {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidTaxYear,
			fmt.Sprintf("year must be between %d and %d", minTaxYear, maxTaxYear),
			domainerror.ErrInvalidTaxYear,
		)
	}

	ledger, err := loadLedger(ctx, uc.ledgerRepo)
	if err != nil {
		return nil, err
	}

	window := valueobject.CalendarYear(year, uc.settings.Location())
	summary := analytics.ComputeTaxSummary(ledger, window, uc.settings)

	return &GetTaxSummaryOutput{
		Year:                year,
		Summary:             summary,
		IncomeBreakdown:     analytics.SortedBreakdown(summary.IncomeByCategory, summary.TotalIncome),
		DeductibleBreakdown: analytics.SortedBreakdown(summary.DeductibleByCategory, summary.TotalDeductions),
		Transactions:        analytics.SelectWindow(ledger, window),
	}, nil
}
