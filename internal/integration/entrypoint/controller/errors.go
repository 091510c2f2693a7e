package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/entrypoint/dto"
)

// handleError writes the HTTP response for a use case error.
func handleError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := statusForLedgerError(ledgerErr.Code)
		if status >= http.StatusInternalServerError {
			slog.Error("Ledger operation failed", "code", ledgerErr.Code, "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(statusForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForLedgerError maps ledger error codes to HTTP status codes.
func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeRoomNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidPaymentKind,
		domainerror.ErrCodeMissingRoomNumber,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeEmptyImport,
		domainerror.ErrCodeMalformedImport,
		domainerror.ErrCodeNonPositiveAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForReportError maps report error codes to HTTP status codes.
func statusForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidTaxYear,
		domainerror.ErrCodeInvalidExportFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDateParam reads an optional YYYY-MM-DD query parameter.
func parseDateParam(ctx *gin.Context, name string) (*time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateFormat,
			name+" must be a date in YYYY-MM-DD format",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return &date, nil
}
