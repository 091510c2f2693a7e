package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// Ledger row column order, shared by import and export.
const (
	colDate = iota
	colKind
	colDescription
	colAmount
	colCategory
	colPaymentMethod
	colReference
	colRelatedParty
	colReceiptRef
	ledgerColumns
)

// ImportWarning flags a data-quality problem in one imported row. The row is still imported.
type ImportWarning struct {
	Row     int // 1-based, counting the header when present
	Field   string
	Value   string
	Message string
}

// ImportLedgerInput carries raw CSV ledger rows.
type ImportLedgerInput struct {
	Data []byte
}

// ImportLedgerOutput summarizes an import.
type ImportLedgerOutput struct {
	Imported int
	Undated  int
	Warnings []ImportWarning
}

// ImportLedgerUseCase is the typed ingestion boundary for ledger rows kept outside the service.
type ImportLedgerUseCase struct {
	ledgerRepo adapter.LedgerRepository
	settings   valueobject.PropertySettings
}

// NewImportLedgerUseCase creates a new ImportLedgerUseCase instance.
func NewImportLedgerUseCase(ledgerRepo adapter.LedgerRepository, settings valueobject.PropertySettings) *ImportLedgerUseCase {
	return &ImportLedgerUseCase{
		ledgerRepo: ledgerRepo,
		settings:   settings,
	}
}

// Execute parses and validates every row, then appends them in order as one batch. A row that
// fails validation rejects the whole import and nothing is written.
//
// Rows whose date cannot be parsed are stored without a date, which keeps them out of every
// windowed report, and reported as warnings. Non-numeric amounts are stored as zero.
func (uc *ImportLedgerUseCase) Execute(ctx context.Context, input ImportLedgerInput) (*ImportLedgerOutput, error) {
	records, err := readRecords(input.Data)
	if err != nil {
		return nil, err
	}

	output := &ImportLedgerOutput{Warnings: []ImportWarning{}}
	loc := uc.settings.Location()

	var rows []*entity.Transaction
	for i, record := range records {
		rowNumber := i + 1
		if i == 0 && isHeader(record) {
			continue
		}
		if isBlank(record) {
			continue
		}

		tx, warnings := uc.parseRow(record, rowNumber, loc)
		if err := validateTransaction(tx); err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNumber, err)
		}
		output.Warnings = append(output.Warnings, warnings...)

		rows = append(rows, tx)
		if !tx.HasDate() {
			output.Undated++
		}
	}

	if len(rows) == 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyImport,
			"import contains no ledger rows",
			domainerror.ErrEmptyImport,
		)
	}

	if err := uc.ledgerRepo.AppendAll(ctx, rows); err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerAppendFailed,
			"failed to append imported rows",
			err,
		)
	}
	output.Imported = len(rows)

	slog.Info("Ledger import completed",
		"imported", output.Imported,
		"undated", output.Undated,
		"warnings", len(output.Warnings),
	)

	return output, nil
}

func (uc *ImportLedgerUseCase) parseRow(record []string, rowNumber int, loc *time.Location) (*entity.Transaction, []ImportWarning) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var warnings []ImportWarning

	date, ok := parseDate(field(colDate), loc)
	if !ok {
		warnings = append(warnings, ImportWarning{
			Row:     rowNumber,
			Field:   "date",
			Value:   field(colDate),
			Message: "unparsable date; row excluded from date-ranged reports",
		})
		slog.Warn("Imported row has an unparsable date", "row", rowNumber, "value", field(colDate))
	}

	amount, ok := parseAmount(field(colAmount))
	if !ok {
		warnings = append(warnings, ImportWarning{
			Row:     rowNumber,
			Field:   "amount",
			Value:   field(colAmount),
			Message: "non-numeric amount recorded as zero",
		})
		slog.Warn("Imported row has a non-numeric amount", "row", rowNumber, "value", field(colAmount))
	}

	tx := entity.NewTransaction(
		date,
		field(colKind),
		field(colDescription),
		amount,
		field(colCategory),
		field(colPaymentMethod),
		field(colReference),
		field(colRelatedParty),
		field(colReceiptRef),
	)

	return tx, warnings
}

func readRecords(data []byte) ([][]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptyImport,
			"import body is empty",
			domainerror.ErrEmptyImport,
		)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMalformedImport,
				"import body is not valid CSV",
				errors.Join(domainerror.ErrMalformedImport, err),
			)
		}
		records = append(records, record)
	}

	return records, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[colDate]), "date")
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
