// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/parsonage/property-ops/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_room_repository.go -package=mocks -source=room_repository.go RoomRepository GuestRoomRepository BookingRepository

// RoomRepository defines persistence operations for long-term tenant rooms.
type RoomRepository interface {
	// ListRooms returns every tenant room.
	ListRooms(ctx context.Context) ([]entity.Room, error)

	// FindByNumber returns the room with the given number.
	FindByNumber(ctx context.Context, roomNumber string) (*entity.Room, error)

	// UpdateLastPayment records a payment date and status against a room.
	UpdateLastPayment(ctx context.Context, roomNumber string, paidAt time.Time, status entity.PaymentStatus) error

	// Save creates or updates a room.
	Save(ctx context.Context, room *entity.Room) error
}

// GuestRoomRepository defines persistence operations for short-stay guest rooms.
type GuestRoomRepository interface {
	// ListGuestRooms returns every guest room.
	ListGuestRooms(ctx context.Context) ([]entity.GuestRoom, error)

	// Save creates or updates a guest room.
	Save(ctx context.Context, room *entity.GuestRoom) error
}

// BookingRepository defines persistence operations for guest bookings.
type BookingRepository interface {
	// ListBookings returns every booking.
	ListBookings(ctx context.Context) ([]entity.Booking, error)

	// Save creates or updates a booking.
	Save(ctx context.Context, booking *entity.Booking) error
}
