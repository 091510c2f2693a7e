package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/application/adapter"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

// ReportTypeScheduleE labels exported tax reports.
const ReportTypeScheduleE = "Schedule E - Rental Property"

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// taxCSVHeader is the header row of the tax transactions CSV.
var taxCSVHeader = []string{"Date", "Type", "Description", "Amount", "Category", "Payment Method", "Reference"}

// TaxReportDocument is the JSON tax export handed to a tax professional.
type TaxReportDocument struct {
	ReportInfo    TaxReportInfo          `json:"reportInfo"`
	Summary       TaxReportSummary       `json:"summary"`
	IncomeDetail  map[string]float64     `json:"incomeDetail"`
	ExpenseDetail map[string]float64     `json:"expenseDetail"`
	Transactions  []TaxReportTransaction `json:"transactions"`
}

// TaxReportInfo identifies the report.
type TaxReportInfo struct {
	PropertyName  string `json:"propertyName"`
	TaxYear       int    `json:"taxYear"`
	GeneratedDate string `json:"generatedDate"`
	ReportType    string `json:"reportType"`
}

// TaxReportSummary holds the Schedule E totals.
type TaxReportSummary struct {
	TotalRentalIncome       float64 `json:"totalRentalIncome"`
	TotalDeductibleExpenses float64 `json:"totalDeductibleExpenses"`
	NetRentalIncome         float64 `json:"netRentalIncome"`
}

// TaxReportTransaction is one ledger row dated in the tax year.
type TaxReportTransaction struct {
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"paymentMethod"`
	Reference     string  `json:"reference"`
}

// ExportTaxReportInput selects the year and output format.
type ExportTaxReportInput struct {
	Year   int
	Format string
}

// ExportTaxReportOutput is a rendered file.
type ExportTaxReportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportTaxReportUseCase renders the tax year as a JSON report or a transactions CSV.
type ExportTaxReportUseCase struct {
	taxSummary *GetTaxSummaryUseCase
	clock      adapter.Clock
	settings   valueobject.PropertySettings
}

// NewExportTaxReportUseCase creates a new ExportTaxReportUseCase instance.
func NewExportTaxReportUseCase(
	ledgerRepo adapter.LedgerRepository,
	clock adapter.Clock,
	settings valueobject.PropertySettings,
) *ExportTaxReportUseCase {
	return &ExportTaxReportUseCase{
		taxSummary: NewGetTaxSummaryUseCase(ledgerRepo, clock, settings),
		clock:      clock,
		settings:   settings,
	}
}

// Execute renders the export.
func (uc *ExportTaxReportUseCase) Execute(ctx context.Context, input ExportTaxReportInput) (*ExportTaxReportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatCSV {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidExportFormat,
			"format must be: json or csv",
			domainerror.ErrInvalidExportFormat,
		)
	}

	tax, err := uc.taxSummary.Execute(ctx, GetTaxSummaryInput{Year: input.Year})
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	doc := uc.buildDocument(tax, now.UTC().Format("2006-01-02T15:04:05.000Z"))

	if format == FormatCSV {
		content, err := renderTaxCSV(doc.Transactions)
		if err != nil {
			return nil, err
		}
		return &ExportTaxReportOutput{
			FileName:    fmt.Sprintf("TaxTransactions_%d_%s.csv", tax.Year, now.Format("20060102")),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tax report: %w", err)
	}
	return &ExportTaxReportOutput{
		FileName:    fmt.Sprintf("TaxData_%d_%s.json", tax.Year, now.Format("20060102")),
		ContentType: "application/json",
		Content:     content,
	}, nil
}

func (uc *ExportTaxReportUseCase) buildDocument(tax *GetTaxSummaryOutput, generated string) TaxReportDocument {
	doc := TaxReportDocument{
		ReportInfo: TaxReportInfo{
			PropertyName:  uc.settings.PropertyName,
			TaxYear:       tax.Year,
			GeneratedDate: generated,
			ReportType:    ReportTypeScheduleE,
		},
		Summary: TaxReportSummary{
			TotalRentalIncome:       tax.Summary.TotalIncome.InexactFloat64(),
			TotalDeductibleExpenses: tax.Summary.TotalDeductions.InexactFloat64(),
			NetRentalIncome:         tax.Summary.NetIncome.InexactFloat64(),
		},
		IncomeDetail:  floatMap(tax.Summary.IncomeByCategory),
		ExpenseDetail: floatMap(tax.Summary.DeductibleByCategory),
		Transactions:  make([]TaxReportTransaction, 0, len(tax.Transactions)),
	}

	for _, tx := range tax.Transactions {
		doc.Transactions = append(doc.Transactions, TaxReportTransaction{
			Date:          tx.Date.Format("2006-01-02"),
			Type:          tx.Kind,
			Description:   tx.Description,
			Amount:        tx.Amount.InexactFloat64(),
			Category:      tx.Category,
			PaymentMethod: tx.PaymentMethod,
			Reference:     tx.Reference,
		})
	}

	return doc
}

func renderTaxCSV(rows []TaxReportTransaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(taxCSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Date,
			r.Type,
			r.Description,
			decimal.NewFromFloat(r.Amount).StringFixed(2),
			r.Category,
			r.PaymentMethod,
			r.Reference,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func floatMap(m map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v.InexactFloat64()
	}
	return out
}
