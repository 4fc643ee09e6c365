package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	salesService portssvc.SalesSvcFacade
}

func newSaleHandler(ss portssvc.SalesSvcFacade) *saleHandler {
	return &saleHandler{
		salesService: ss,
	}
}

// RegisterSaleRoutes registers all sale-related routes.
func RegisterSaleRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvcFacade) {
	h := newSaleHandler(salesService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
		sales.POST("/:id/void", h.voidSale)
	}
}

// recordSale godoc
// @Summary Record a sale
// @Description Records a sale with one or more line items, decrementing stock for each line in a single transaction.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sale, err := h.salesService.RecordSale(c.Request.Context(), req, userID)
	if err != nil {
		logger.Warn("Failed to record sale", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to record sale")
		return
	}

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID), slog.String("total", sale.TotalAmount.String()))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale by ID
// @Description Retrieves a sale with its line items.
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	sale, err := h.salesService.GetSaleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve sale")
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Lists sales filtered by date range, user or payment method. Voided sales are excluded unless includeVoided is set.
// @Tags sales
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Param   userID query string false "User ID"
// @Param   paymentMethod query string false "Payment method"
// @Param   includeVoided query bool false "Include voided sales"
// @Param   limit query int false "Max sales to return" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.SaleFilter{
		From:          params.From,
		To:            params.To,
		UserID:        params.UserID,
		PaymentMethod: params.PaymentMethod,
		IncludeVoided: params.IncludeVoided,
		Limit:         params.Limit,
		Offset:        params.Offset,
	}

	sales, err := h.salesService.ListSales(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales))
}

// voidSale godoc
// @Summary Void a sale
// @Description Marks a sale voided and restores the sold quantities to inventory. Requires manager or admin role.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   id path string true "Sale ID"
// @Param   void body dto.VoidSaleRequest true "Reason for voiding"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/void [post]
func (h *saleHandler) voidSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	var req dto.VoidSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.salesService.VoidSale(c.Request.Context(), saleID, req.Reason, requestingUserID); err != nil {
		logger.Warn("Failed to void sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to void sale")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale voided"})
}
