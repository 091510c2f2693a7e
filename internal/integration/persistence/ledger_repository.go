// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// ListAll returns every ledger row in append order.
func (r *ledgerRepository) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	var models []model.TransactionModel
	result := r.db.WithContext(ctx).
		Order("position ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions, nil
}

// Append stores a new row at the end of the ledger and returns its position.
func (r *ledgerRepository) Append(ctx context.Context, transaction *entity.Transaction) (int64, error) {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return 0, result.Error
	}

	transaction.Position = transactionModel.Position
	return transactionModel.Position, nil
}

// AppendAll stores rows in one database transaction so a failed batch leaves the ledger untouched.
func (r *ledgerRepository) AppendAll(ctx context.Context, transactions []*entity.Transaction) error {
	models := make([]*model.TransactionModel, len(transactions))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, transaction := range transactions {
			models[i] = model.TransactionFromEntity(transaction)
			if err := tx.Create(models[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, transaction := range transactions {
		transaction.Position = models[i].Position
	}
	return nil
}
