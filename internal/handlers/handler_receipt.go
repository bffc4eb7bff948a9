package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/middleware"
)

// receiptHandler handles HTTP requests for income and expense receipts.
type receiptHandler struct {
	incomeService  portssvc.IncomeReceiptSvcFacade
	expenseService portssvc.ExpenseReceiptSvcFacade
}

func newReceiptHandler(income portssvc.IncomeReceiptSvcFacade, expense portssvc.ExpenseReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{incomeService: income, expenseService: expense}
}

// registerReceiptRoutes registers routes for the receipt engine.
func registerReceiptRoutes(rg *gin.RouterGroup, income portssvc.IncomeReceiptSvcFacade, expense portssvc.ExpenseReceiptSvcFacade) {
	h := newReceiptHandler(income, expense)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("/income", h.createIncomeReceipt)
		receipts.GET("/income/:receiptID", h.getIncomeReceiptByID)
		receipts.POST("/income/:receiptID/void", h.voidIncomeReceipt)
		receipts.POST("/expense", h.createExpenseReceipt)
		receipts.GET("/expense/:receiptID", h.getExpenseReceiptByID)
		receipts.POST("/expense/:receiptID/void", h.voidExpenseReceipt)
	}
}

// createIncomeReceipt godoc
// @Summary Record an income receipt
// @Description Records money received, allocating payment across debt line items atomically
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.CreateIncomeReceiptRequest true "Receipt details"
// @Success 201 {object} domain.IncomeReceipt
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Allocation exceeds remaining balance"
// @Security BearerAuth
// @Router /receipts/income [post]
func (h *receiptHandler) createIncomeReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.incomeService.CreateIncomeReceipt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create income receipt")
		return
	}

	logger.Info("Income receipt created",
		slog.Int64("receipt_id", created.ReceiptID),
		slog.Int64("stand_id", created.StandID),
		slog.String("total", created.Total().String()))
	c.JSON(http.StatusCreated, created)
}

func (h *receiptHandler) getIncomeReceiptByID(c *gin.Context) {
	receiptID, ok := pathID(c, "receiptID")
	if !ok {
		return
	}
	receipt, err := h.incomeService.GetIncomeReceiptByID(c.Request.Context(), receiptID)
	if err != nil {
		respondError(c, err, "Failed to retrieve income receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// voidIncomeReceipt godoc
// @Summary Void an income receipt
// @Description Marks the receipt inactive, restoring every allocated line item's balance
// @Tags receipts
// @Produce  json
// @Param   receiptID path int true "Receipt ID"
// @Success 204 "Voided"
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 409 {object} map[string]string "Receipt already void"
// @Security BearerAuth
// @Router /receipts/income/{receiptID}/void [post]
func (h *receiptHandler) voidIncomeReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID, ok := pathID(c, "receiptID")
	if !ok {
		return
	}
	voiderUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.incomeService.VoidIncomeReceipt(c.Request.Context(), receiptID, voiderUserID); err != nil {
		respondError(c, err, "Failed to void income receipt")
		return
	}

	logger.Info("Income receipt voided", slog.Int64("receipt_id", receiptID))
	c.Status(http.StatusNoContent)
}

func (h *receiptHandler) createExpenseReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.expenseService.CreateExpenseReceipt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create expense receipt")
		return
	}

	logger.Info("Expense receipt created", slog.Int64("receipt_id", created.ReceiptID))
	c.JSON(http.StatusCreated, created)
}

func (h *receiptHandler) getExpenseReceiptByID(c *gin.Context) {
	receiptID, ok := pathID(c, "receiptID")
	if !ok {
		return
	}
	receipt, err := h.expenseService.GetExpenseReceiptByID(c.Request.Context(), receiptID)
	if err != nil {
		respondError(c, err, "Failed to retrieve expense receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *receiptHandler) voidExpenseReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID, ok := pathID(c, "receiptID")
	if !ok {
		return
	}
	voiderUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.expenseService.VoidExpenseReceipt(c.Request.Context(), receiptID, voiderUserID); err != nil {
		respondError(c, err, "Failed to void expense receipt")
		return
	}

	logger.Info("Expense receipt voided", slog.Int64("receipt_id", receiptID))
	c.Status(http.StatusNoContent)
}
