package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
)

// GuestRoomModel represents the guest_rooms table in the database.
type GuestRoomModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoomNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Status     string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GuestRoomModel.
func (GuestRoomModel) TableName() string {
	return "guest_rooms"
}

// ToEntity converts a GuestRoomModel to a domain GuestRoom entity.
func (m *GuestRoomModel) ToEntity() entity.GuestRoom {
	return entity.GuestRoom{
		ID:         m.ID,
		RoomNumber: m.RoomNumber,
		Status:     entity.GuestRoomStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// GuestRoomFromEntity converts a domain GuestRoom entity to a GuestRoomModel.
func GuestRoomFromEntity(g *entity.GuestRoom) *GuestRoomModel {
	return &GuestRoomModel{
		ID:         g.ID,
		RoomNumber: g.RoomNumber,
		Status:     string(g.Status),
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

// BookingModel represents the guest_bookings table in the database.
type BookingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RoomNumber  string          `gorm:"type:varchar(20);not null;index"`
	GuestName   string          `gorm:"type:varchar(255)"`
	CheckInDate *time.Time      `gorm:"type:date;index"`
	Nights      int             `gorm:"not null;default:0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(20)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BookingModel.
func (BookingModel) TableName() string {
	return "guest_bookings"
}

// ToEntity converts a BookingModel to a domain Booking entity.
func (m *BookingModel) ToEntity() entity.Booking {
	var checkIn time.Time
	if m.CheckInDate != nil {
		checkIn = *m.CheckInDate
	}

	return entity.Booking{
		ID:          m.ID,
		RoomNumber:  m.RoomNumber,
		GuestName:   m.GuestName,
		CheckInDate: checkIn,
		Nights:      m.Nights,
		TotalAmount: m.TotalAmount,
		Status:      entity.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// BookingFromEntity converts a domain Booking entity to a BookingModel.
func BookingFromEntity(b *entity.Booking) *BookingModel {
	var checkIn *time.Time
	if !b.CheckInDate.IsZero() {
		d := b.CheckInDate
		checkIn = &d
	}

	return &BookingModel{
		ID:          b.ID,
		RoomNumber:  b.RoomNumber,
		GuestName:   b.GuestName,
		CheckInDate: checkIn,
		Nights:      b.Nights,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}

// AllModels lists every model the service migrates.
func AllModels() []any {
	return []any{
		&TransactionModel{},
		&RoomModel{},
		&GuestRoomModel{},
		&BookingModel{},
	}
}
