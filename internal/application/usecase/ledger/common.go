// Package ledger contains ledger-related use cases: recording, payment capture, import and export.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255

	// DateLayout is the wire format for dates accepted and produced by the ledger.
	DateLayout = "2006-01-02"
)

// importDateLayouts are tried in order when reading dates from imported rows.
var importDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// TransactionOutput is the ledger row returned by the recording use cases.
type TransactionOutput struct {
	Transaction *entity.Transaction
	Position    int64
}

// validateTransaction checks a row before it is written.
func validateTransaction(tx *entity.Transaction) error {
	if len(tx.Description) > MaxDescriptionLength {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

// appendTransaction validates and appends a single row.
func appendTransaction(ctx context.Context, repo adapter.LedgerRepository, tx *entity.Transaction) (*TransactionOutput, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	position, err := repo.Append(ctx, tx)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerAppendFailed,
			"failed to append transaction",
			err,
		)
	}
	tx.Position = position

	return &TransactionOutput{Transaction: tx, Position: position}, nil
}

// parseAmount reads a decimal amount. Blank input is zero; ok is false only for non-numeric text.
func parseAmount(raw string) (amount decimal.Decimal, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, true
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// parseDate tries every accepted layout in loc. The zero time is returned when none match.
func parseDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range importDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
