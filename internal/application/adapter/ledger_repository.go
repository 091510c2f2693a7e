// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/parsonage/property-ops/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_ledger_repository.go -package=mocks -source=ledger_repository.go LedgerRepository

// LedgerRepository is the storage collaborator for the append-only transaction ledger.
type LedgerRepository interface {
	// ListAll returns every ledger row in append order.
	ListAll(ctx context.Context) ([]entity.Transaction, error)

	// Append adds one row to the end of the ledger and returns its 1-based position.
	Append(ctx context.Context, tx *entity.Transaction) (int64, error)

	// AppendAll adds rows to the end of the ledger in order, all or none, and sets each
	// row's Position.
	AppendAll(ctx context.Context, txs []*entity.Transaction) error
}
