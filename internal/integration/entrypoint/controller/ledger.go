// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/application/usecase/ledger"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/entrypoint/dto"
)

// maxImportBytes caps the size of a CSV import body.
const maxImportBytes = 10 << 20

// LedgerController handles ledger endpoints.
type LedgerController struct {
	recordUseCase  *ledger.RecordTransactionUseCase
	manualUseCase  *ledger.AddManualEntryUseCase
	captureUseCase *ledger.CapturePaymentUseCase
	importUseCase  *ledger.ImportLedgerUseCase
	exportUseCase  *ledger.ExportLedgerUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	recordUseCase *ledger.RecordTransactionUseCase,
	manualUseCase *ledger.AddManualEntryUseCase,
	captureUseCase *ledger.CapturePaymentUseCase,
	importUseCase *ledger.ImportLedgerUseCase,
	exportUseCase *ledger.ExportLedgerUseCase,
) *LedgerController {
	return &LedgerController{
		recordUseCase:  recordUseCase,
		manualUseCase:  manualUseCase,
		captureUseCase: captureUseCase,
		importUseCase:  importUseCase,
		exportUseCase:  exportUseCase,
	}
}

// Record handles POST /ledger/transactions requests.
func (c *LedgerController) Record(ctx *gin.Context) {
	var req dto.RecordTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, ok := parseBodyDate(ctx, req.Date)
	if !ok {
		return
	}

	input := ledger.RecordTransactionInput{
		Date:          date,
		Kind:          req.Type,
		Description:   req.Description,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		RelatedParty:  req.TenantGuest,
		ReceiptRef:    req.ReceiptRef,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(*output.Transaction))
}

// AddManualEntry handles POST /ledger/manual-entries requests.
func (c *LedgerController) AddManualEntry(ctx *gin.Context) {
	var req dto.ManualEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.manualUseCase.Execute(ctx.Request.Context(), ledger.AddManualEntryInput{
		Date:          req.Date,
		Type:          req.Type,
		Description:   req.Description,
		Amount:        req.Amount,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		ReceiptRef:    req.ReceiptRef,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(*output.Transaction))
}

// CapturePayment handles POST /ledger/payments requests.
func (c *LedgerController) CapturePayment(ctx *gin.Context) {
	var req dto.CapturePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, ok := parseBodyDate(ctx, req.Date)
	if !ok {
		return
	}

	input := ledger.CapturePaymentInput{
		Kind:          ledger.PaymentKind(req.Kind),
		RoomNumber:    req.RoomNumber,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		Reason:        req.Reason,
		ReceiptRef:    req.ReceiptRef,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.captureUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(*output.Transaction))
}

// Import handles POST /ledger/import requests with a CSV body.
func (c *LedgerController) Import(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxImportBytes)
	data, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: "Import body could not be read: " + err.Error(),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), ledger.ImportLedgerInput{Data: data})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToImportLedgerResponse(output))
}

// Export handles GET /ledger/export requests.
func (c *LedgerController) Export(ctx *gin.Context) {
	startDate, err := parseDateParam(ctx, "start_date")
	if err != nil {
		handleError(ctx, err)
		return
	}
	endDate, err := parseDateParam(ctx, "end_date")
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), ledger.ExportLedgerInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", output.Content)
}

// parseBodyDate parses an optional YYYY-MM-DD body field, writing a 400 response on failure.
func parseBodyDate(ctx *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	date, err := time.Parse(dto.DateLayout, *raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return nil, false
	}
	return &date, true
}
