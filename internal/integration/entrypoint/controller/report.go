package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coliving-manager/backend/internal/application/usecase/report"
	domainerror "github.com/coliving-manager/backend/internal/domain/error"
	"github.com/coliving-manager/backend/internal/integration/cache"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/dto"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles financial reporting endpoints.
type ReportController struct {
	financialReportUseCase *report.GenerateFinancialReportUseCase
	profitLossUseCase      *report.GenerateProfitLossStatementUseCase
	cashFlowUseCase        *report.GenerateCashFlowAnalysisUseCase
	taxSummaryUseCase      *report.GenerateTaxSummaryUseCase
	reportCache            *cache.ReportCache
}

// NewReportController creates a new report controller instance.
func NewReportController(
	financialReportUseCase *report.GenerateFinancialReportUseCase,
	profitLossUseCase *report.GenerateProfitLossStatementUseCase,
	cashFlowUseCase *report.GenerateCashFlowAnalysisUseCase,
	taxSummaryUseCase *report.GenerateTaxSummaryUseCase,
	reportCache *cache.ReportCache,
) *ReportController {
	return &ReportController{
		financialReportUseCase: financialReportUseCase,
		profitLossUseCase:      profitLossUseCase,
		cashFlowUseCase:        cashFlowUseCase,
		taxSummaryUseCase:      taxSummaryUseCase,
		reportCache:            reportCache,
	}
}

// GetFinancialReport handles GET /reports/financial requests.
func (c *ReportController) GetFinancialReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseWindow(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseOptionalIDQuery(ctx, "property_id")
	if !ok {
		return
	}
	includeComparison := ctx.Query("include_comparison") == "true"

	kind := fmt.Sprintf("financial:cmp=%t", includeComparison)
	key := cache.Key(userID.String(), kind, idOrEmpty(propertyID), startDate, endDate)

	var cached report.FinancialReport
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.financialReportUseCase.Execute(ctx.Request.Context(), report.GenerateFinancialReportInput{
		UserID:            userID,
		PropertyID:        propertyID,
		StartDate:         startDate,
		EndDate:           endDate,
		IncludeComparison: includeComparison,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	c.reportCache.Set(ctx.Request.Context(), key, output)
	ctx.JSON(http.StatusOK, output)
}

// GetProfitLossStatement handles GET /reports/profit-loss requests.
func (c *ReportController) GetProfitLossStatement(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseWindow(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseOptionalIDQuery(ctx, "property_id")
	if !ok {
		return
	}
	groupBy := report.Granularity(ctx.DefaultQuery("group_by", string(report.GranularityMonthly)))
	includeDetails := ctx.Query("include_details") == "true"

	kind := fmt.Sprintf("pnl:by=%s:det=%t", groupBy, includeDetails)
	key := cache.Key(userID.String(), kind, idOrEmpty(propertyID), startDate, endDate)

	var cached report.ProfitLossStatement
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), report.GenerateProfitLossStatementInput{
		UserID:         userID,
		PropertyID:     propertyID,
		StartDate:      startDate,
		EndDate:        endDate,
		GroupBy:        groupBy,
		IncludeDetails: includeDetails,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	c.reportCache.Set(ctx.Request.Context(), key, output)
	ctx.JSON(http.StatusOK, output)
}

// GetCashFlowAnalysis handles GET /reports/cash-flow requests.
func (c *ReportController) GetCashFlowAnalysis(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, endDate, ok := c.parseWindow(ctx)
	if !ok {
		return
	}
	propertyID, ok := parseOptionalIDQuery(ctx, "property_id")
	if !ok {
		return
	}
	granularity := report.Granularity(ctx.DefaultQuery("granularity", string(report.GranularityMonthly)))
	includeForecast := ctx.Query("include_forecast") == "true"

	kind := fmt.Sprintf("cashflow:by=%s:fc=%t", granularity, includeForecast)
	key := cache.Key(userID.String(), kind, idOrEmpty(propertyID), startDate, endDate)

	var cached report.CashFlowAnalysis
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.cashFlowUseCase.Execute(ctx.Request.Context(), report.GenerateCashFlowAnalysisInput{
		UserID:          userID,
		PropertyID:      propertyID,
		StartDate:       startDate,
		EndDate:         endDate,
		Granularity:     granularity,
		IncludeForecast: includeForecast,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	c.reportCache.Set(ctx.Request.Context(), key, output)
	ctx.JSON(http.StatusOK, output)
}

// GetTaxSummary handles GET /reports/tax-summary requests.
func (c *ReportController) GetTaxSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taxYearStr := ctx.Query("tax_year")
	if taxYearStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "tax_year is required",
			Code:  string(domainerror.ErrCodeInvalidTaxYear),
		})
		return
	}
	taxYear, err := strconv.Atoi(taxYearStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tax_year format",
			Code:  string(domainerror.ErrCodeInvalidTaxYear),
		})
		return
	}

	propertyID, ok := parseOptionalIDQuery(ctx, "property_id")
	if !ok {
		return
	}
	includeReceipts := ctx.Query("include_receipts") == "true"
	format := report.ReportFormat(ctx.DefaultQuery("format", string(report.FormatDetailed)))

	yearStart := time.Date(taxYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(taxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	kind := fmt.Sprintf("tax:rcpt=%t:fmt=%s", includeReceipts, format)
	key := cache.Key(userID.String(), kind, idOrEmpty(propertyID), yearStart, yearEnd)

	var cached report.TaxSummary
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.taxSummaryUseCase.Execute(ctx.Request.Context(), report.GenerateTaxSummaryInput{
		UserID:          userID,
		PropertyID:      propertyID,
		TaxYear:         taxYear,
		IncludeReceipts: includeReceipts,
		Format:          format,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	c.reportCache.Set(ctx.Request.Context(), key, output)
	ctx.JSON(http.StatusOK, output)
}

// parseWindow parses the required start_date and end_date query parameters.
func (c *ReportController) parseWindow(ctx *gin.Context) (time.Time, time.Time, bool) {
	startDateStr := ctx.Query("start_date")
	endDateStr := ctx.Query("end_date")

	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return time.Time{}, time.Time{}, false
	}
	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return time.Time{}, time.Time{}, false
	}

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}
	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidGranularity,
		domainerror.ErrCodeInvalidTaxYear,
		domainerror.ErrCodeInvalidReportFormat,
		domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// idOrEmpty returns the string form of an optional UUID.
func idOrEmpty(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
