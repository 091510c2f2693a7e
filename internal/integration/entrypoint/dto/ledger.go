package dto

import (
	"github.com/parsonage/property-ops/internal/application/usecase/ledger"
	"github.com/parsonage/property-ops/internal/domain/entity"
)

// RecordTransactionRequest represents the request body for appending a ledger row.
type RecordTransactionRequest struct {
	Date          *string  `json:"date,omitempty"`
	Type          string   `json:"type"`
	Description   string   `json:"description" binding:"max=255"`
	Amount        *float64 `json:"amount,omitempty"`
	Category      string   `json:"category"`
	PaymentMethod string   `json:"payment_method"`
	Reference     string   `json:"reference"`
	TenantGuest   string   `json:"tenant_guest"`
	ReceiptRef    string   `json:"receipt_ref"`
}

// ManualEntryRequest represents a manager-entered income or expense.
type ManualEntryRequest struct {
	Date          string `json:"date" binding:"required"`
	Type          string `json:"type" binding:"required"`
	Description   string `json:"description" binding:"max=255"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	PaymentMethod string `json:"payment_method"`
	ReceiptRef    string `json:"receipt_ref"`
}

// CapturePaymentRequest represents a rent payment, deposit, refund or deduction.
type CapturePaymentRequest struct {
	Kind          string   `json:"kind" binding:"required,oneof=rent deposit refund deduction"`
	RoomNumber    string   `json:"room_number" binding:"required"`
	Date          *string  `json:"date,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	PaymentMethod string   `json:"payment_method"`
	Reason        string   `json:"reason"`
	ReceiptRef    string   `json:"receipt_ref"`
}

// TransactionResponse represents a single ledger row in API responses.
type TransactionResponse struct {
	Position      int64   `json:"position"`
	ID            string  `json:"id"`
	Date          string  `json:"date"` // empty when undated
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"payment_method"`
	Reference     string  `json:"reference"`
	TenantGuest   string  `json:"tenant_guest"`
	ReceiptRef    string  `json:"receipt_ref"`
}

// ImportWarningResponse represents a data-quality warning raised during import.
type ImportWarningResponse struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ImportLedgerResponse summarizes a ledger import.
type ImportLedgerResponse struct {
	Imported int                     `json:"imported"`
	Undated  int                     `json:"undated"`
	Warnings []ImportWarningResponse `json:"warnings"`
}

// ToTransactionResponse converts a ledger row to a TransactionResponse DTO.
func ToTransactionResponse(tx entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		Position:      tx.Position,
		ID:            tx.ID.String(),
		Type:          tx.Kind,
		Description:   tx.Description,
		Amount:        Money(tx.Amount),
		Category:      tx.Category,
		PaymentMethod: tx.PaymentMethod,
		Reference:     tx.Reference,
		TenantGuest:   tx.RelatedParty,
		ReceiptRef:    tx.ReceiptRef,
	}
	if tx.HasDate() {
		response.Date = tx.Date.Format(DateLayout)
	}
	return response
}

// ToTransactionListResponse converts ledger rows to TransactionResponse DTOs.
func ToTransactionListResponse(rows []entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(rows))
	for i, tx := range rows {
		responses[i] = ToTransactionResponse(tx)
	}
	return responses
}

// ToImportLedgerResponse converts an import summary to its DTO.
func ToImportLedgerResponse(output *ledger.ImportLedgerOutput) ImportLedgerResponse {
	warnings := make([]ImportWarningResponse, len(output.Warnings))
	for i, w := range output.Warnings {
		warnings[i] = ImportWarningResponse{
			Row:     w.Row,
			Field:   w.Field,
			Value:   w.Value,
			Message: w.Message,
		}
	}
	return ImportLedgerResponse{
		Imported: output.Imported,
		Undated:  output.Undated,
		Warnings: warnings,
	}
}
