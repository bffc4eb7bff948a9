package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
)

// reportingHandler handles HTTP requests for the report queries.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes for the report queries.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/income-receipts", h.queryIncomeReceipts)
		reports.GET("/expense-receipts", h.queryExpenseReceipts)
		reports.GET("/income-by-concept", h.queryIncomeByConcept)
	}
}

// queryIncomeReceipts godoc
// @Summary Query income receipts
// @Description Returns a page of income receipts in a date range, all relations resolved
// @Tags reports
// @Produce  json
// @Param   dateFrom query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param   dateTo query string true "End date (YYYY-MM-DD, inclusive)"
// @Param   conceptID query int false "Only receipts containing this concept"
// @Param   paymentMethodID query int false "Only receipts with this payment method"
// @Param   includeInactive query bool false "Include voided receipts"
// @Param   page query int false "Page number, 1-based"
// @Param   pageSize query int false "Page size, default 20, max 100"
// @Success 200 {object} dto.PagedResponse[domain.IncomeReceiptReport]
// @Failure 400 {object} map[string]string "Invalid date range"
// @Security BearerAuth
// @Router /reports/income-receipts [get]
func (h *reportingHandler) queryIncomeReceipts(c *gin.Context) {
	var params dto.IncomeReceiptReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	page, err := h.reportingService.QueryIncomeReceipts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to query income receipts")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *reportingHandler) queryExpenseReceipts(c *gin.Context) {
	var params dto.ExpenseReceiptReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	page, err := h.reportingService.QueryExpenseReceipts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to query expense receipts")
		return
	}
	c.JSON(http.StatusOK, page)
}

// queryIncomeByConcept godoc
// @Summary Income detail history for concept aggregation
// @Description Returns every income receipt detail flattened with concept, stand and client
// @Tags reports
// @Produce  json
// @Success 200 {array} domain.ConceptSummaryRow
// @Security BearerAuth
// @Router /reports/income-by-concept [get]
func (h *reportingHandler) queryIncomeByConcept(c *gin.Context) {
	rows, err := h.reportingService.QueryIncomeByConceptSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to query income by concept")
		return
	}
	c.JSON(http.StatusOK, rows)
}
