package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStocks(base *echo.Group) {
	base.GET("/stocks", h.getStocks)
}

func (h *HttpAPIHandler) healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Nifty 50 scanner is running")
}

func (h *HttpAPIHandler) getStocks(c echo.Context) error {
	ctx := c.Request().Context()

	results, err := h.service.StockScannerService.Scan(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, results)
}
