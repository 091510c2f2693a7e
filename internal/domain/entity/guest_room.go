// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GuestRoomStatus represents the status of a short-stay guest room.
type GuestRoomStatus string

const (
	GuestRoomStatusAvailable   GuestRoomStatus = "Available"
	GuestRoomStatusOccupied    GuestRoomStatus = "Occupied"
	GuestRoomStatusMaintenance GuestRoomStatus = "Maintenance"
)

// GuestRoom represents a room let by the night.
type GuestRoom struct {
	ID         uuid.UUID
	RoomNumber string
	Status     GuestRoomStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOccupied reports whether a guest is currently checked in.
func (g GuestRoom) IsOccupied() bool {
	return g.Status == GuestRoomStatusOccupied
}

// BookingStatus represents the lifecycle of a guest booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusConfirmed  BookingStatus = "Confirmed"
	BookingStatusCheckedIn  BookingStatus = "Checked In"
	BookingStatusCheckedOut BookingStatus = "Checked Out"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// Booking represents a guest room booking.
type Booking struct {
	ID          uuid.UUID
	RoomNumber  string
	GuestName   string
	CheckInDate time.Time // zero when unknown
	Nights      int
	TotalAmount decimal.Decimal
	Status      BookingStatus
	CreatedAt   time.Time
}

// NewGuestRoom creates an available GuestRoom.
func NewGuestRoom(roomNumber string) *GuestRoom {
	now := time.Now().UTC()

	return &GuestRoom{
		ID:         uuid.New(),
		RoomNumber: roomNumber,
		Status:     GuestRoomStatusAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewBooking creates a confirmed Booking.
func NewBooking(roomNumber, guestName string, checkIn time.Time, nights int, totalAmount decimal.Decimal) *Booking {
	return &Booking{
		ID:          uuid.New(),
		RoomNumber:  roomNumber,
		GuestName:   guestName,
		CheckInDate: checkIn,
		Nights:      nights,
		TotalAmount: totalAmount.Round(MoneyPlaces),
		Status:      BookingStatusConfirmed,
		CreatedAt:   time.Now().UTC(),
	}
}
