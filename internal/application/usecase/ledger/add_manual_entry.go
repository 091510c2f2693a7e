package ledger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// AddManualEntryInput is a budget entry as typed by the manager. Amount is free text and only
// its magnitude is used; Type decides the sign.
type AddManualEntryInput struct {
	Date          string // YYYY-MM-DD, empty for today
	Type          string
	Description   string
	Amount        string
	Category      string
	PaymentMethod string
	ReceiptRef    string
}

// AddManualEntryUseCase records manually entered income and expenses.
type AddManualEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
	clock      adapter.Clock
	settings   valueobject.PropertySettings
}

// NewAddManualEntryUseCase creates a new AddManualEntryUseCase instance.
func NewAddManualEntryUseCase(
	ledgerRepo adapter.LedgerRepository,
	clock adapter.Clock,
	settings valueobject.PropertySettings,
) *AddManualEntryUseCase {
	return &AddManualEntryUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
		settings:   settings,
	}
}

// Execute records the entry. An "Expense" type is stored as a negative amount, any other type
// as positive. A non-numeric amount is recorded as zero.
func (uc *AddManualEntryUseCase) Execute(ctx context.Context, input AddManualEntryInput) (*TransactionOutput, error) {
	date := uc.clock.Now()
	if strings.TrimSpace(input.Date) != "" {
		parsed, ok := parseDate(input.Date, uc.settings.Location())
		if !ok {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date must be in YYYY-MM-DD format",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		date = parsed
	}

	amount, ok := parseAmount(input.Amount)
	if !ok {
		slog.Warn("Non-numeric manual entry amount recorded as zero", "amount", input.Amount)
	}
	amount = amount.Abs()
	if isExpenseType(input.Type) {
		amount = amount.Neg()
	}

	tx := entity.NewTransaction(
		date,
		strings.TrimSpace(input.Type),
		input.Description,
		amount,
		strings.TrimSpace(input.Category),
		strings.TrimSpace(input.PaymentMethod),
		"",
		"",
		input.ReceiptRef,
	)

	return appendTransaction(ctx, uc.ledgerRepo, tx)
}

func isExpenseType(entryType string) bool {
	return strings.EqualFold(strings.TrimSpace(entryType), entity.KindExpense)
}
