// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
)

// TransactionModel represents the ledger table. Rows are only ever inserted.
type TransactionModel struct {
	Position      int64           `gorm:"primaryKey;autoIncrement"`
	ID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Date          *time.Time      `gorm:"type:date;index"` // NULL when the source date was unparsable
	Kind          string          `gorm:"type:varchar(50);not null"`
	Description   string          `gorm:"type:varchar(255)"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	Reference     string          `gorm:"type:varchar(100);index"`
	RelatedParty  string          `gorm:"type:varchar(255)"`
	ReceiptRef    string          `gorm:"type:varchar(255)"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "ledger_transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() entity.Transaction {
	var date time.Time
	if m.Date != nil {
		date = *m.Date
	}

	return entity.Transaction{
		ID:            m.ID,
		Position:      m.Position,
		Date:          date,
		Kind:          m.Kind,
		Description:   m.Description,
		Amount:        m.Amount,
		Category:      m.Category,
		PaymentMethod: m.PaymentMethod,
		Reference:     m.Reference,
		RelatedParty:  m.RelatedParty,
		ReceiptRef:    m.ReceiptRef,
		CreatedAt:     m.CreatedAt,
	}
}

// TransactionFromEntity converts a domain Transaction entity to a TransactionModel.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	var date *time.Time
	if t.HasDate() {
		d := t.Date
		date = &d
	}

	return &TransactionModel{
		ID:            t.ID,
		Date:          date,
		Kind:          t.Kind,
		Description:   t.Description,
		Amount:        t.Amount,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		Reference:     t.Reference,
		RelatedParty:  t.RelatedParty,
		ReceiptRef:    t.ReceiptRef,
		CreatedAt:     t.CreatedAt,
	}
}
