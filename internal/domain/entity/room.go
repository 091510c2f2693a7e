// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomStatus represents the status of a long-term tenant room.
type RoomStatus string

const (
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusVacant      RoomStatus = "Vacant"
	RoomStatusMaintenance RoomStatus = "Maintenance"
	RoomStatusPending     RoomStatus = "Pending"
)

// PaymentStatus represents the rent payment state of a tenant room.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusDue     PaymentStatus = "Due"
	PaymentStatusOverdue PaymentStatus = "Overdue"
	PaymentStatusPartial PaymentStatus = "Partial"
)

// Room represents a long-term tenant room.
type Room struct {
	ID               uuid.UUID
	RoomNumber       string
	StandardRent     decimal.Decimal
	NegotiatedRent   *decimal.Decimal // overrides StandardRent when set
	OccupantName     string
	Email            string
	Phone            string
	MoveInDate       *time.Time
	SecurityDeposit  decimal.Decimal
	Status           RoomStatus
	LastPaymentDate  *time.Time
	PaymentStatus    PaymentStatus
	PlannedMoveOut   *time.Time
	EmergencyContact string
	LeaseEnd         *time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewRoom creates a vacant Room with the given number and standard rent.
func NewRoom(roomNumber string, standardRent decimal.Decimal) *Room {
	now := time.Now().UTC()

	return &Room{
		ID:           uuid.New(),
		RoomNumber:   roomNumber,
		StandardRent: standardRent.Round(MoneyPlaces),
		Status:       RoomStatusVacant,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// EffectiveRent returns the negotiated rent when present, otherwise the standard rent.
// A zero negotiated rent counts as absent.
func (r Room) EffectiveRent() decimal.Decimal {
	if r.NegotiatedRent != nil && !r.NegotiatedRent.IsZero() {
		return *r.NegotiatedRent
	}
	return r.StandardRent
}

// IsOccupied reports whether the room is currently let.
func (r Room) IsOccupied() bool {
	return r.Status == RoomStatusOccupied
}
