package handlers

import (
	"net/http"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"

	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/expenses", h.expenseSummary)
		reports.GET("/sales", h.salesReport)
		reports.GET("/sales/daily", h.dailySummary)
		reports.GET("/sales/top-items", h.topSellingItems)
		reports.GET("/inventory", h.inventoryReport)
	}
}

// expenseSummary godoc
// @Summary Expense summary by category
// @Description Totals expenses per category for the given date range.
// @Tags reports
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ExpenseSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/expenses [get]
func (h *reportingHandler) expenseSummary(c *gin.Context) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.ExpenseSummary(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondWithError(c, err, "Failed to build expense summary")
		return
	}

	c.JSON(http.StatusOK, report)
}

// salesReport godoc
// @Summary Sales trend report
// @Description Buckets sales totals by day, week or month for the given date range. Voided sales are excluded.
// @Tags reports
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Param   groupBy query string false "Bucket size (day, week or month)" default(day)
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportingHandler) salesReport(c *gin.Context) {
	var params dto.SalesReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.SalesReport(c.Request.Context(), params.From, params.To, domain.SalesGrouping(params.GroupBy))
	if err != nil {
		respondWithError(c, err, "Failed to build sales report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// dailySummary godoc
// @Summary Daily sales summary
// @Description Totals, payment method breakdown and top items for a single day. Defaults to today.
// @Tags reports
// @Produce  json
// @Param   date query string false "Day to summarize (YYYY-MM-DD)"
// @Success 200 {object} domain.DailySalesSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales/daily [get]
func (h *reportingHandler) dailySummary(c *gin.Context) {
	day := time.Now()
	if raw, exists := c.GetQuery("date"); exists {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	summary, err := h.reportingService.DailySummary(c.Request.Context(), day)
	if err != nil {
		respondWithError(c, err, "Failed to build daily summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// topSellingItems godoc
// @Summary Top selling items
// @Description Ranks items by revenue over the given date range.
// @Tags reports
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD)"
// @Param   to query string true "End date (YYYY-MM-DD)"
// @Param   limit query int false "Number of items to return" default(5)
// @Success 200 {array} domain.TopItemRow
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales/top-items [get]
func (h *reportingHandler) topSellingItems(c *gin.Context) {
	var params dto.TopItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.TopSellingItems(c.Request.Context(), params.From, params.To, params.Limit)
	if err != nil {
		respondWithError(c, err, "Failed to list top selling items")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// inventoryReport godoc
// @Summary Inventory valuation report
// @Description Current stock value per item plus the low-stock listing.
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.InventoryReportResponse
// @Security BearerAuth
// @Router /reports/inventory [get]
func (h *reportingHandler) inventoryReport(c *gin.Context) {
	report, err := h.reportingService.InventoryReport(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to build inventory report")
		return
	}

	c.JSON(http.StatusOK, report)
}
