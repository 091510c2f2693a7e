// Package report contains the read-only reporting use cases. Every call reads a fresh snapshot
// from the repositories and recomputes from scratch.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// propertySnapshot is everything the occupancy calculator reads.
type propertySnapshot struct {
	Rooms      []entity.Room
	GuestRooms []entity.GuestRoom
	Bookings   []entity.Booking
}

func loadLedger(ctx context.Context, repo adapter.LedgerRepository) ([]entity.Transaction, error) {
	ledger, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	return ledger, nil
}

func loadProperty(
	ctx context.Context,
	roomRepo adapter.RoomRepository,
	guestRoomRepo adapter.GuestRoomRepository,
	bookingRepo adapter.BookingRepository,
) (*propertySnapshot, error) {
	rooms, err := roomRepo.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rooms: %w", err)
	}

	guestRooms, err := guestRoomRepo.ListGuestRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read guest rooms: %w", err)
	}

	bookings, err := bookingRepo.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return &propertySnapshot{Rooms: rooms, GuestRooms: guestRooms, Bookings: bookings}, nil
}

// occupancyAt computes occupancy with guest revenue counted from the start of now's month.
func (s *propertySnapshot) occupancyAt(now time.Time) analytics.OccupancyStats {
	return analytics.ComputeOccupancy(s.Rooms, s.GuestRooms, s.Bookings, valueobject.MonthStart(now))
}

// resolveWindow validates an optional explicit window. With neither bound set, fallback is used.
func resolveWindow(start, end *time.Time, fallback valueobject.DateWindow) (valueobject.DateWindow, error) {
	switch {
	case start == nil && end == nil:
		return fallback, nil
	case start == nil:
		return valueobject.DateWindow{}, domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required when end_date is provided",
			domainerror.ErrMissingStartDate,
		)
	case end == nil:
		return valueobject.DateWindow{}, domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required when start_date is provided",
			domainerror.ErrMissingEndDate,
		)
	case end.Before(*start):
		return valueobject.DateWindow{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return valueobject.NewDateWindow(*start, *end), nil
}
