package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/entity"
)

// RecordTransactionInput represents the input for recording a ledger row.
// Nil Date and Amount take their defaults.
type RecordTransactionInput struct {
	Date          *time.Time
	Kind          string
	Description   string
	Amount        *decimal.Decimal
	Category      string
	PaymentMethod string
	Reference     string
	RelatedParty  string
	ReceiptRef    string
}

// RecordTransactionUseCase appends one row to the ledger after applying field defaults.
type RecordTransactionUseCase struct {
	ledgerRepo adapter.LedgerRepository
	clock      adapter.Clock
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(ledgerRepo adapter.LedgerRepository, clock adapter.Clock) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
	}
}

// Execute records the transaction. Missing date becomes now, missing kind and category become
// "Other" and missing amount becomes zero. The amount sign is stored as given.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*TransactionOutput, error) {
	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	amount := decimal.Zero
	if input.Amount != nil {
		amount = *input.Amount
	}

	tx := entity.NewTransaction(
		date,
		input.Kind,
		input.Description,
		amount,
		input.Category,
		input.PaymentMethod,
		input.Reference,
		input.RelatedParty,
		input.ReceiptRef,
	)

	output, err := appendTransaction(ctx, uc.ledgerRepo, tx)
	if err != nil {
		return nil, err
	}

	slog.Info("Transaction recorded",
		"position", output.Position,
		"kind", tx.Kind,
		"category", tx.Category,
		"amount", tx.Amount.String(),
	)

	return output, nil
}
