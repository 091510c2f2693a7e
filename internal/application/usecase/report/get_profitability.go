package report

import (
	"context"
	"time"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// GetProfitabilityOutput holds month, quarter and year to date profitability.
type GetProfitabilityOutput struct {
	Monthly   analytics.ProfitabilityMetrics
	Quarterly analytics.ProfitabilityMetrics
	Yearly    analytics.ProfitabilityMetrics
	Insights  []analytics.Insight
}

// GetProfitabilityUseCase computes profitability for the running month, quarter and year.
type GetProfitabilityUseCase struct {
	ledgerRepo adapter.LedgerRepository
	clock      adapter.Clock
	settings   valueobject.PropertySettings
}

// NewGetProfitabilityUseCase creates a new GetProfitabilityUseCase instance.
func NewGetProfitabilityUseCase(
	ledgerRepo adapter.LedgerRepository,
	clock adapter.Clock,
	settings valueobject.PropertySettings,
) *GetProfitabilityUseCase {
	return &GetProfitabilityUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
		settings:   settings,
	}
}

// Execute runs the calculation.
func (uc *GetProfitabilityUseCase) Execute(ctx context.Context) (*GetProfitabilityOutput, error) {
	ledger, err := loadLedger(ctx, uc.ledgerRepo)
	if err != nil {
		return nil, err
	}
	return buildProfitability(ledger, uc.clock.Now(), uc.settings.Insights), nil
}

func buildProfitability(ledger []entity.Transaction, now time.Time, th valueobject.InsightThresholds) *GetProfitabilityOutput {
	input := analytics.ProfitabilityInput{
		Monthly:       analytics.ComputeProfitability(ledger, valueobject.MonthToDate(now)),
		Quarterly:     analytics.ComputeProfitability(ledger, valueobject.QuarterToDate(now)),
		Yearly:        analytics.ComputeProfitability(ledger, valueobject.YearToDate(now)),
		MonthsElapsed: valueobject.MonthsElapsed(now),
	}

	return &GetProfitabilityOutput{
		Monthly:   input.Monthly,
		Quarterly: input.Quarterly,
		Yearly:    input.Yearly,
		Insights:  analytics.ClassifyProfitability(input, th),
	}
}
