package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
)

// RoomModel represents the rooms table in the database.
type RoomModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	RoomNumber       string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	StandardRent     decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	NegotiatedRent   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	OccupantName     string           `gorm:"type:varchar(255)"`
	Email            string           `gorm:"type:varchar(255)"`
	Phone            string           `gorm:"type:varchar(50)"`
	MoveInDate       *time.Time       `gorm:"type:date"`
	SecurityDeposit  decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Status           string           `gorm:"type:varchar(20);not null;index"`
	LastPaymentDate  *time.Time       `gorm:"type:date"`
	PaymentStatus    string           `gorm:"type:varchar(20)"`
	PlannedMoveOut   *time.Time       `gorm:"type:date"`
	EmergencyContact string           `gorm:"type:varchar(255)"`
	LeaseEnd         *time.Time       `gorm:"type:date"`
	Notes            string           `gorm:"type:text"`
	CreatedAt        time.Time        `gorm:"not null"`
	UpdatedAt        time.Time        `gorm:"not null"`
}

// TableName returns the table name for the RoomModel.
func (RoomModel) TableName() string {
	return "rooms"
}

// ToEntity converts a RoomModel to a domain Room entity.
func (m *RoomModel) ToEntity() entity.Room {
	return entity.Room{
		ID:               m.ID,
		RoomNumber:       m.RoomNumber,
		StandardRent:     m.StandardRent,
		NegotiatedRent:   m.NegotiatedRent,
		OccupantName:     m.OccupantName,
		Email:            m.Email,
		Phone:            m.Phone,
		MoveInDate:       m.MoveInDate,
		SecurityDeposit:  m.SecurityDeposit,
		Status:           entity.RoomStatus(m.Status),
		LastPaymentDate:  m.LastPaymentDate,
		PaymentStatus:    entity.PaymentStatus(m.PaymentStatus),
		PlannedMoveOut:   m.PlannedMoveOut,
		EmergencyContact: m.EmergencyContact,
		LeaseEnd:         m.LeaseEnd,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// RoomFromEntity converts a domain Room entity to a RoomModel.
func RoomFromEntity(r *entity.Room) *RoomModel {
	return &RoomModel{
		ID:               r.ID,
		RoomNumber:       r.RoomNumber,
		StandardRent:     r.StandardRent,
		NegotiatedRent:   r.NegotiatedRent,
		OccupantName:     r.OccupantName,
		Email:            r.Email,
		Phone:            r.Phone,
		MoveInDate:       r.MoveInDate,
		SecurityDeposit:  r.SecurityDeposit,
		Status:           string(r.Status),
		LastPaymentDate:  r.LastPaymentDate,
		PaymentStatus:    string(r.PaymentStatus),
		PlannedMoveOut:   r.PlannedMoveOut,
		EmergencyContact: r.EmergencyContact,
		LeaseEnd:         r.LeaseEnd,
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
