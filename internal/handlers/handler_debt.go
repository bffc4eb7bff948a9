package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/middleware"
)

// debtHandler handles HTTP requests for the debt ledger.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers routes for the debt ledger.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	rg.POST("/debts", h.createDebt)
	rg.GET("/debts/:debtID", h.getDebtByID)
	rg.GET("/stands/:standID/outstanding", h.getOutstanding)
	rg.GET("/stands/:standID/debts", h.listDebtsByStand)
}

// createDebt godoc
// @Summary Assess a debt against a stand
// @Description Creates a debt header with one or more line items in one atomic write
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} domain.DebtHeader
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Stand or concept not found"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.debtService.CreateDebt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create debt")
		return
	}

	logger.Info("Debt created",
		slog.Int64("debt_id", created.DebtID),
		slog.Int64("stand_id", created.StandID),
		slog.Int("line_items", len(created.LineItems)))
	c.JSON(http.StatusCreated, created)
}

func (h *debtHandler) getDebtByID(c *gin.Context) {
	debtID, ok := pathID(c, "debtID")
	if !ok {
		return
	}
	header, err := h.debtService.GetDebtByID(c.Request.Context(), debtID)
	if err != nil {
		respondError(c, err, "Failed to retrieve debt")
		return
	}
	c.JSON(http.StatusOK, header)
}

// getOutstanding godoc
// @Summary List a stand's outstanding line items
// @Description Returns line items with a positive remaining balance, oldest period first
// @Tags debts
// @Produce  json
// @Param   standID path int true "Stand ID"
// @Success 200 {array} domain.OutstandingLineItem
// @Failure 404 {object} map[string]string "Stand not found"
// @Security BearerAuth
// @Router /stands/{standID}/outstanding [get]
func (h *debtHandler) getOutstanding(c *gin.Context) {
	standID, ok := pathID(c, "standID")
	if !ok {
		return
	}
	outstanding, err := h.debtService.GetOutstanding(c.Request.Context(), standID)
	if err != nil {
		respondError(c, err, "Failed to retrieve outstanding line items")
		return
	}
	c.JSON(http.StatusOK, outstanding)
}

func (h *debtHandler) listDebtsByStand(c *gin.Context) {
	standID, ok := pathID(c, "standID")
	if !ok {
		return
	}
	headers, err := h.debtService.ListDebtsByStand(c.Request.Context(), standID)
	if err != nil {
		respondError(c, err, "Failed to list debts")
		return
	}
	c.JSON(http.StatusOK, headers)
}
