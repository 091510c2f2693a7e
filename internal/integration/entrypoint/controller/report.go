package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parsonage/property-ops/internal/application/usecase/report"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	periodUseCase        *report.GetPeriodAnalysisUseCase
	revenueUseCase       *report.GetRevenueAnalysisUseCase
	profitabilityUseCase *report.GetProfitabilityUseCase
	occupancyUseCase     *report.GetOccupancyUseCase
	taxSummaryUseCase    *report.GetTaxSummaryUseCase
	taxExportUseCase     *report.ExportTaxReportUseCase
	dashboardUseCase     *report.GetDashboardUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	periodUseCase *report.GetPeriodAnalysisUseCase,
	revenueUseCase *report.GetRevenueAnalysisUseCase,
	profitabilityUseCase *report.GetProfitabilityUseCase,
	occupancyUseCase *report.GetOccupancyUseCase,
	taxSummaryUseCase *report.GetTaxSummaryUseCase,
	taxExportUseCase *report.ExportTaxReportUseCase,
	dashboardUseCase *report.GetDashboardUseCase,
) *ReportController {
	return &ReportController{
		periodUseCase:        periodUseCase,
		revenueUseCase:       revenueUseCase,
		profitabilityUseCase: profitabilityUseCase,
		occupancyUseCase:     occupancyUseCase,
		taxSummaryUseCase:    taxSummaryUseCase,
		taxExportUseCase:     taxExportUseCase,
		dashboardUseCase:     dashboardUseCase,
	}
}

// Period handles GET /reports/period requests.
// Without dates the current calendar month is analyzed.
func (c *ReportController) Period(ctx *gin.Context) {
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

	output, err := c.periodUseCase.Execute(ctx.Request.Context(), report.GetPeriodAnalysisInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodReportResponse(output))
}

// Revenue handles GET /reports/revenue requests.
func (c *ReportController) Revenue(ctx *gin.Context) {
	output, err := c.revenueUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueReportResponse(output))
}

// Profitability handles GET /reports/profitability requests.
func (c *ReportController) Profitability(ctx *gin.Context) {
	output, err := c.profitabilityUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitabilityReportResponse(output))
}

// Occupancy handles GET /reports/occupancy requests.
func (c *ReportController) Occupancy(ctx *gin.Context) {
	output, err := c.occupancyUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOccupancyReportResponse(output))
}

// TaxSummary handles GET /reports/tax requests.
func (c *ReportController) TaxSummary(ctx *gin.Context) {
	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	output, err := c.taxSummaryUseCase.Execute(ctx.Request.Context(), report.GetTaxSummaryInput{Year: year})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaxSummaryResponse(output))
}

// TaxExport handles GET /reports/tax/export requests.
func (c *ReportController) TaxExport(ctx *gin.Context) {
	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	output, err := c.taxExportUseCase.Execute(ctx.Request.Context(), report.ExportTaxReportInput{
		Year:   year,
		Format: ctx.DefaultQuery("format", report.FormatJSON),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// Dashboard handles GET /reports/dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	output, err := c.dashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// parseYearParam reads the optional year query parameter; zero means the current year.
func parseYearParam(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("year")
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be a number",
			Code:  string(domainerror.ErrCodeInvalidTaxYear),
		})
		return 0, false
	}
	return year, true
}
