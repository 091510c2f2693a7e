package report

import (
	"context"
	"time"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// GetOccupancyOutput is the occupancy snapshot and its insights.
type GetOccupancyOutput struct {
	Stats      analytics.OccupancyStats
	MonthStart time.Time // guest revenue counts bookings checked in from here
	Insights   []analytics.Insight
}

// GetOccupancyUseCase computes room occupancy across tenant and guest rooms.
type GetOccupancyUseCase struct {
	roomRepo      adapter.RoomRepository
	guestRoomRepo adapter.GuestRoomRepository
	bookingRepo   adapter.BookingRepository
	clock         adapter.Clock
	settings      valueobject.PropertySettings
}

// NewGetOccupancyUseCase creates a new GetOccupancyUseCase instance.
func NewGetOccupancyUseCase(
	roomRepo adapter.RoomRepository,
	guestRoomRepo adapter.GuestRoomRepository,
	bookingRepo adapter.BookingRepository,
	clock adapter.Clock,
	settings valueobject.PropertySettings,
) *GetOccupancyUseCase {
	return &GetOccupancyUseCase{
		roomRepo:      roomRepo,
		guestRoomRepo: guestRoomRepo,
		bookingRepo:   bookingRepo,
		clock:         clock,
		settings:      settings,
	}
}

// Execute runs the calculation.
func (uc *GetOccupancyUseCase) Execute(ctx context.Context) (*GetOccupancyOutput, error) {
	snapshot, err := loadProperty(ctx, uc.roomRepo, uc.guestRoomRepo, uc.bookingRepo)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	stats := snapshot.occupancyAt(now)

	return &GetOccupancyOutput{
		Stats:      stats,
		MonthStart: valueobject.MonthStart(now),
		Insights:   analytics.ClassifyOccupancy(stats, uc.settings.Insights),
	}, nil
}
