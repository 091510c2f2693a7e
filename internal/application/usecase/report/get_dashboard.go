package report

import (
	"context"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// GetDashboardOutput gathers every report over a single snapshot.
type GetDashboardOutput struct {
	MonthLabel    string // e.g. "March 2024"
	Month         analytics.PeriodAnalysis
	Quarter       analytics.PeriodAnalysis
	Revenue       *GetRevenueAnalysisOutput
	Profitability *GetProfitabilityOutput
	Occupancy     *GetOccupancyOutput
}

// GetDashboardUseCase builds the consolidated financial dashboard.
type GetDashboardUseCase struct {
	ledgerRepo    adapter.LedgerRepository
	roomRepo      adapter.RoomRepository
	guestRoomRepo adapter.GuestRoomRepository
	bookingRepo   adapter.BookingRepository
	clock         adapter.Clock
	settings      valueobject.PropertySettings
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	ledgerRepo adapter.LedgerRepository,
	roomRepo adapter.RoomRepository,
	guestRoomRepo adapter.GuestRoomRepository,
	bookingRepo adapter.BookingRepository,
	clock adapter.Clock,
	settings valueobject.PropertySettings,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ledgerRepo:    ledgerRepo,
		roomRepo:      roomRepo,
		guestRoomRepo: guestRoomRepo,
		bookingRepo:   bookingRepo,
		clock:         clock,
		settings:      settings,
	}
}

// Execute reads the ledger and property once and derives every section from that snapshot.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardOutput, error) {
	ledger, err := loadLedger(ctx, uc.ledgerRepo)
	if err != nil {
		return nil, err
	}

	snapshot, err := loadProperty(ctx, uc.roomRepo, uc.guestRoomRepo, uc.bookingRepo)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	th := uc.settings.Insights
	stats := snapshot.occupancyAt(now)
	revenue := buildRevenueAnalysis(ledger, now, th)

	return &GetDashboardOutput{
		MonthLabel:    now.Format("January 2006"),
		Month:         revenue.Current,
		Quarter:       analytics.AnalyzePeriod(ledger, valueobject.QuarterToDate(now)),
		Revenue:       revenue,
		Profitability: buildProfitability(ledger, now, th),
		Occupancy: &GetOccupancyOutput{
			Stats:      stats,
			MonthStart: valueobject.MonthStart(now),
			Insights:   analytics.ClassifyOccupancy(stats, th),
		},
	}, nil
}
