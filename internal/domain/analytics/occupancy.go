package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// OccupancyStats summarizes room usage across long-term and guest segments.
type OccupancyStats struct {
	TotalRooms    int
	TotalOccupied int

	TotalTenantRooms int
	TenantsOccupied  int
	TotalGuestRooms  int
	GuestsOccupied   int

	OverallOccupancy int64 // whole percent, 0..100
	TenantOccupancy  int64
	GuestOccupancy   int64

	TenantRevenue decimal.Decimal // monthly rent roll of occupied rooms
	GuestRevenue  decimal.Decimal // bookings checked in since monthStart
	GuestNights   int

	TenantRevPAR decimal.Decimal
	GuestRevPAR  decimal.Decimal
	TenantADR    decimal.Decimal // monthly rent approximated to a daily rate
	GuestADR     decimal.Decimal
}

// ComputeOccupancy aggregates room, guest room and booking snapshots.
//
// Rooms without a room number are ignored. Only bookings that check in on or after
// monthStart with a positive amount contribute to guest revenue and nights. Check-in is
// compared by calendar date in monthStart's location.
func ComputeOccupancy(
	rooms []entity.Room,
	guestRooms []entity.GuestRoom,
	bookings []entity.Booking,
	monthStart time.Time,
) OccupancyStats {
	stats := OccupancyStats{
		TenantRevenue: decimal.Zero,
		GuestRevenue:  decimal.Zero,
	}

	for _, room := range rooms {
		if strings.TrimSpace(room.RoomNumber) == "" {
			continue
		}
		stats.TotalTenantRooms++
		if room.IsOccupied() {
			stats.TenantsOccupied++
			stats.TenantRevenue = stats.TenantRevenue.Add(room.EffectiveRent())
		}
	}

	for _, room := range guestRooms {
		if strings.TrimSpace(room.RoomNumber) == "" {
			continue
		}
		stats.TotalGuestRooms++
		if room.IsOccupied() {
			stats.GuestsOccupied++
		}
	}

	for _, booking := range bookings {
		if booking.CheckInDate.IsZero() {
			continue
		}
		if valueobject.CalendarDay(booking.CheckInDate, monthStart.Location()).Before(monthStart) {
			continue
		}
		if !booking.TotalAmount.IsPositive() {
			continue
		}
		stats.GuestRevenue = stats.GuestRevenue.Add(booking.TotalAmount)
		stats.GuestNights += booking.Nights
	}

	stats.TotalRooms = stats.TotalTenantRooms + stats.TotalGuestRooms
	stats.TotalOccupied = stats.TenantsOccupied + stats.GuestsOccupied

	stats.OverallOccupancy = percentOfCount(stats.TotalOccupied, stats.TotalRooms)
	stats.TenantOccupancy = percentOfCount(stats.TenantsOccupied, stats.TotalTenantRooms)
	stats.GuestOccupancy = percentOfCount(stats.GuestsOccupied, stats.TotalGuestRooms)

	stats.TenantRevPAR = safeDiv(stats.TenantRevenue, decimal.NewFromInt(int64(stats.TotalTenantRooms)))
	stats.GuestRevPAR = safeDiv(stats.GuestRevenue, decimal.NewFromInt(int64(stats.TotalGuestRooms)))
	stats.TenantADR = safeDiv(
		safeDiv(stats.TenantRevenue, decimal.NewFromInt(int64(stats.TenantsOccupied))),
		decimal.NewFromInt(daysPerMonth),
	)
	stats.GuestADR = safeDiv(stats.GuestRevenue, decimal.NewFromInt(int64(stats.GuestNights)))

	return stats
}
