package http

import (
	"context"

	"nifty50-scanner/internal/service"

	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo    *echo.Echo
	service *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:    echo,
		service: service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.GET("/", h.healthCheck)

	base := h.echo.Group("/api")
	h.SetupStocks(base)
}
