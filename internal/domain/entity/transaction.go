// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCategory is used when a transaction carries no category.
	DefaultCategory = "Other"

	// DefaultKind is used when a transaction carries no kind label.
	DefaultKind = "Other"

	// UnspecifiedPaymentMethod is the reporting key for transactions without a payment method.
	UnspecifiedPaymentMethod = "Not Specified"

	// MoneyPlaces is the number of decimal places every stored amount is rounded to.
	MoneyPlaces int32 = 2
)

// Well-known transaction kinds written by the payment capture workflows.
// Kind is a free-text label; the sign of Amount is authoritative.
const (
	KindRentIncome       = "Rent Income"
	KindSecurityDeposit  = "Security Deposit"
	KindDepositRefund    = "Security Deposit Refund"
	KindDepositDeduction = "Deposit Deduction"
	KindExpense          = "Expense"
	KindIncome           = "Income"
)

// Transaction is one immutable ledger row.
type Transaction struct {
	ID            uuid.UUID
	Position      int64     // 1-based append position in the ledger
	Date          time.Time // zero when the stored date could not be parsed
	Kind          string
	Description   string
	Amount        decimal.Decimal // positive = income, negative = expense
	Category      string
	PaymentMethod string
	Reference     string
	RelatedParty  string // tenant or guest name
	ReceiptRef    string
	CreatedAt     time.Time
}

// NewTransaction creates a Transaction with field defaults applied. The amount is rounded
// half away from zero to MoneyPlaces.
func NewTransaction(
	date time.Time,
	kind string,
	description string,
	amount decimal.Decimal,
	category string,
	paymentMethod string,
	reference string,
	relatedParty string,
	receiptRef string,
) *Transaction {
	if kind == "" {
		kind = DefaultKind
	}
	if category == "" {
		category = DefaultCategory
	}

	return &Transaction{
		ID:            uuid.New(),
		Date:          date,
		Kind:          kind,
		Description:   description,
		Amount:        amount.Round(MoneyPlaces),
		Category:      category,
		PaymentMethod: paymentMethod,
		Reference:     reference,
		RelatedParty:  relatedParty,
		ReceiptRef:    receiptRef,
		CreatedAt:     time.Now().UTC(),
	}
}

// HasDate reports whether the transaction carries a usable date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// IsIncome reports whether the amount is strictly positive.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the amount is strictly negative.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// CategoryOrDefault returns the category, or DefaultCategory when empty.
func (t Transaction) CategoryOrDefault() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}

// PaymentMethodOrDefault returns the payment method, or UnspecifiedPaymentMethod when empty.
func (t Transaction) PaymentMethodOrDefault() string {
	if t.PaymentMethod == "" {
		return UnspecifiedPaymentMethod
	}
	return t.PaymentMethod
}
