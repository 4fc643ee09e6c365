package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// inventoryHandler handles HTTP requests related to inventory items and stock movements.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
	}
}

// registerInventoryRoutes registers all inventory-related routes.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.addItem)
		inventory.GET("", h.listItems)
		inventory.GET("/low-stock", h.listLowStock)
		inventory.GET("/:id", h.getItem)
		inventory.PUT("/:id", h.updateItem)
		inventory.POST("/:id/restock", h.restock)
		inventory.POST("/:id/adjust", h.adjust)
		inventory.GET("/:id/transactions", h.listTransactions)
	}
}

// addItem godoc
// @Summary Add an inventory item
// @Description Creates a new inventory item with an opening quantity.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   item body dto.AddInventoryItemRequest true "Item details"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) addItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.AddItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Warn("Failed to add inventory item", slog.String("name", req.Name), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to add inventory item")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// getItem godoc
// @Summary Get an inventory item by ID
// @Tags inventory
// @Produce  json
// @Param   id path string true "Item ID"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [get]
func (h *inventoryHandler) getItem(c *gin.Context) {
	item, err := h.inventoryService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve inventory item")
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Tags inventory
// @Produce  json
// @Param   limit query int false "Max items to return" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListInventoryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	var params dto.ListInventoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list inventory items")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

// listLowStock godoc
// @Summary List items at or below their reorder level
// @Tags inventory
// @Produce  json
// @Success 200 {object} dto.ListInventoryResponse
// @Security BearerAuth
// @Router /inventory/low-stock [get]
func (h *inventoryHandler) listLowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStockItems(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list low stock items")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInventoryResponse(items))
}

// updateItem godoc
// @Summary Update an inventory item
// @Description Updates descriptive fields. Quantity can only change through restock, adjustment or sale.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   item body dto.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	var req dto.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// restock godoc
// @Summary Restock an inventory item
// @Description Increases an item's quantity and records a restock ledger entry.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   restock body dto.RestockRequest true "Restock quantity and notes"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/restock [post]
func (h *inventoryHandler) restock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.Restock(c.Request.Context(), itemID, req.Quantity, req.Notes, userID)
	if err != nil {
		logger.Warn("Failed to restock item", slog.String("item_id", itemID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to restock item")
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// adjust godoc
// @Summary Adjust an inventory item's stock
// @Description Applies a signed quantity correction with a mandatory reason. Fails with 422 if the result would be negative.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   adjustment body dto.AdjustStockRequest true "Signed delta and reason"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/adjust [post]
func (h *inventoryHandler) adjust(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("id")

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.inventoryService.Adjust(c.Request.Context(), itemID, req.Delta, req.Notes, userID)
	if err != nil {
		logger.Warn("Failed to adjust stock", slog.String("item_id", itemID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to adjust stock")
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// listTransactions godoc
// @Summary List an item's stock movement history
// @Description Returns the item's inventory ledger entries, most recent first.
// @Tags inventory
// @Produce  json
// @Param   id path string true "Item ID"
// @Param   limit query int false "Max entries to return" default(50)
// @Success 200 {object} dto.ListInventoryTransactionsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/transactions [get]
func (h *inventoryHandler) listTransactions(c *gin.Context) {
	itemID := c.Param("id")

	limit := 50
	if raw, exists := c.GetQuery("limit"); exists {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	transactions, err := h.inventoryService.GetTransactionHistory(c.Request.Context(), itemID, limit)
	if err != nil {
		respondWithError(c, err, "Failed to list stock transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInventoryTransactionsResponse(transactions))
}
