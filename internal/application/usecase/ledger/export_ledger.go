package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/analytics"
	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// ExportHeader is the header row of a ledger export.
var ExportHeader = [ledgerColumns]string{
	"Date",
	"Type",
	"Description",
	"Amount",
	"Category",
	"Payment Method",
	"Reference",
	"Tenant/Guest",
	"Receipt",
}

// ExportLedgerInput optionally restricts the export to an inclusive date range.
// Both bounds must be set together.
type ExportLedgerInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ExportLedgerOutput is a rendered CSV file.
type ExportLedgerOutput struct {
	FileName string
	Content  []byte
	Rows     int
}

// ExportLedgerUseCase renders the ledger, or a window of it, as CSV.
type ExportLedgerUseCase struct {
	ledgerRepo adapter.LedgerRepository
	clock      adapter.Clock
}

// NewExportLedgerUseCase creates a new ExportLedgerUseCase instance.
func NewExportLedgerUseCase(ledgerRepo adapter.LedgerRepository, clock adapter.Clock) *ExportLedgerUseCase {
	return &ExportLedgerUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
	}
}

// Execute renders the export. A full export includes undated rows with an empty date column.
func (uc *ExportLedgerUseCase) Execute(ctx context.Context, input ExportLedgerInput) (*ExportLedgerOutput, error) {
	if (input.StartDate == nil) != (input.EndDate == nil) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"start_date and end_date must be provided together",
			domainerror.ErrInvalidDateRange,
		)
	}
	if input.StartDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	ledger, err := uc.ledgerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	fileName := fmt.Sprintf("FinancialData_%s.csv", uc.clock.Now().Format("20060102_150405"))
	if input.StartDate != nil {
		ledger = analytics.SelectWindow(ledger, valueobject.NewDateWindow(*input.StartDate, *input.EndDate))
		fileName = fmt.Sprintf("FinancialData_%s_%s.csv",
			input.StartDate.Format(DateLayout), input.EndDate.Format(DateLayout))
	}

	content, err := WriteLedgerCSV(ledger)
	if err != nil {
		return nil, err
	}

	return &ExportLedgerOutput{
		FileName: fileName,
		Content:  content,
		Rows:     len(ledger),
	}, nil
}

// WriteLedgerCSV renders rows under ExportHeader.
func WriteLedgerCSV(rows []entity.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ExportHeader[:]); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, tx := range rows {
		if err := w.Write(ledgerRecord(tx)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func ledgerRecord(tx entity.Transaction) []string {
	record := make([]string, ledgerColumns)
	if tx.HasDate() {
		record[colDate] = tx.Date.Format(DateLayout)
	}
	record[colKind] = tx.Kind
	record[colDescription] = tx.Description
	record[colAmount] = tx.Amount.StringFixed(2)
	record[colCategory] = tx.Category
	record[colPaymentMethod] = tx.PaymentMethod
	record[colReference] = tx.Reference
	record[colRelatedParty] = tx.RelatedParty
	record[colReceiptRef] = tx.ReceiptRef
	return record
}
