package analytics

import (
	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// SelectWindow returns the transactions dated inside w, in ledger order.
// Transactions without a usable date are never selected.
func SelectWindow(ledger []entity.Transaction, w valueobject.DateWindow) []entity.Transaction {
	selected := make([]entity.Transaction, 0, len(ledger))
	for _, tx := range ledger {
		if w.Contains(tx.Date) {
			selected = append(selected, tx)
		}
	}
	return selected
}

// CountUndated returns how many ledger rows carry no usable date and are therefore
// invisible to every windowed report.
func CountUndated(ledger []entity.Transaction) int {
	n := 0
	for _, tx := range ledger {
		if !tx.HasDate() {
			n++
		}
	}
	return n
}
