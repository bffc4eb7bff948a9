package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/middleware"
)

// catalogHandler handles HTTP requests for the catalog entities: clients,
// stands, concepts and payment methods.
type catalogHandler struct {
	clientService  portssvc.ClientSvcFacade
	standService   portssvc.StandSvcFacade
	conceptService portssvc.ConceptSvcFacade
	methodService  portssvc.PaymentMethodSvcFacade
}

func newCatalogHandler(
	clients portssvc.ClientSvcFacade,
	stands portssvc.StandSvcFacade,
	concepts portssvc.ConceptSvcFacade,
	methods portssvc.PaymentMethodSvcFacade,
) *catalogHandler {
	return &catalogHandler{
		clientService:  clients,
		standService:   stands,
		conceptService: concepts,
		methodService:  methods,
	}
}

// registerCatalogRoutes registers routes for the catalog entities.
func registerCatalogRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCatalogHandler(services.Client, services.Stand, services.Concept, services.PaymentMethod)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClientByID)
	}

	stands := rg.Group("/stands")
	{
		stands.POST("", h.createStand)
		stands.GET("", h.listStands)
		stands.GET("/:standID", h.getStandByID)
	}

	concepts := rg.Group("/concepts")
	{
		concepts.POST("", h.createConcept)
		concepts.GET("", h.listConcepts)
		concepts.GET("/:conceptID", h.getConceptByID)
		concepts.PUT("/:conceptID", h.renameConcept)
	}

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:paymentMethodID", h.getPaymentMethodByID)
	}
}

// createClient godoc
// @Summary Create a new client
// @Description Registers a billed party in the catalog
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} domain.Client
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /clients [post]
func (h *catalogHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.clientService.CreateClient(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create client")
		return
	}

	logger.Info("Client created", slog.Int64("client_id", created.ClientID))
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) listClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *catalogHandler) getClientByID(c *gin.Context) {
	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}
	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// createStand godoc
// @Summary Create a new stand
// @Description Registers a rentable unit owned by an existing client
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   stand body dto.CreateStandRequest true "Stand details"
// @Success 201 {object} domain.Stand
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /stands [post]
func (h *catalogHandler) createStand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.standService.CreateStand(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create stand")
		return
	}

	logger.Info("Stand created", slog.Int64("stand_id", created.StandID), slog.String("code", created.Code))
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) listStands(c *gin.Context) {
	stands, err := h.standService.ListStands(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list stands")
		return
	}
	c.JSON(http.StatusOK, stands)
}

func (h *catalogHandler) getStandByID(c *gin.Context) {
	standID, ok := pathID(c, "standID")
	if !ok {
		return
	}
	stand, err := h.standService.GetStandByID(c.Request.Context(), standID)
	if err != nil {
		respondError(c, err, "Failed to retrieve stand")
		return
	}
	c.JSON(http.StatusOK, stand)
}

func (h *catalogHandler) createConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.conceptService.CreateConcept(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create concept")
		return
	}

	logger.Info("Concept created", slog.Int64("concept_id", created.ConceptID))
	c.JSON(http.StatusCreated, created)
}

// renameConcept godoc
// @Summary Rename a concept
// @Description Changes a concept's label; its id and all historical references are unchanged
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   conceptID path int true "Concept ID"
// @Param   concept body dto.RenameConceptRequest true "New name"
// @Success 200 {object} domain.Concept
// @Failure 404 {object} map[string]string "Concept not found"
// @Security BearerAuth
// @Router /concepts/{conceptID} [put]
func (h *catalogHandler) renameConcept(c *gin.Context) {
	conceptID, ok := pathID(c, "conceptID")
	if !ok {
		return
	}
	var req dto.RenameConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	updated, err := h.conceptService.RenameConcept(c.Request.Context(), conceptID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to rename concept")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *catalogHandler) listConcepts(c *gin.Context) {
	concepts, err := h.conceptService.ListConcepts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list concepts")
		return
	}
	c.JSON(http.StatusOK, concepts)
}

func (h *catalogHandler) getConceptByID(c *gin.Context) {
	conceptID, ok := pathID(c, "conceptID")
	if !ok {
		return
	}
	concept, err := h.conceptService.GetConceptByID(c.Request.Context(), conceptID)
	if err != nil {
		respondError(c, err, "Failed to retrieve concept")
		return
	}
	c.JSON(http.StatusOK, concept)
}

func (h *catalogHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.methodService.CreatePaymentMethod(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create payment method")
		return
	}

	logger.Info("Payment method created", slog.Int64("payment_method_id", created.PaymentMethodID))
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) listPaymentMethods(c *gin.Context) {
	methods, err := h.methodService.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list payment methods")
		return
	}
	c.JSON(http.StatusOK, methods)
}

func (h *catalogHandler) getPaymentMethodByID(c *gin.Context) {
	paymentMethodID, ok := pathID(c, "paymentMethodID")
	if !ok {
		return
	}
	method, err := h.methodService.GetPaymentMethodByID(c.Request.Context(), paymentMethodID)
	if err != nil {
		respondError(c, err, "Failed to retrieve payment method")
		return
	}
	c.JSON(http.StatusOK, method)
}
