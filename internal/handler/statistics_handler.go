package handler

import (
	"net/http"

	"lixishop/internal/config"
	"lixishop/internal/export"
	"lixishop/internal/middleware"
	"lixishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type StatisticsHandler struct {
	uc *usecase.StatisticsUsecase
}

func NewStatisticsHandler(uc *usecase.StatisticsUsecase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

func (h *StatisticsHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders/statistics")
	g.Use(middleware.AdminJWT(cfg))

	g.GET("/overview", h.overview)
	g.GET("/export", h.export)
}

type statisticsOverview struct {
	OrderStatistics   usecase.OrderStatistics     `json:"order_statistics"`
	ProductStatistics []usecase.ProductStatistics `json:"product_statistics"`
}

func (h *StatisticsHandler) overview(c echo.Context) error {
	r, err := usecase.ParseDateRange(c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	orderStats, err := h.uc.OrderStatistics(ctx, r)
	if err != nil {
		return writeError(c, err)
	}
	productStats, err := h.uc.ProductStatistics(ctx, r)
	if err != nil {
		return writeError(c, err)
	}

	return successJSON(c, http.StatusOK, statisticsOverview{
		OrderStatistics:   orderStats,
		ProductStatistics: productStats,
	})
}

func (h *StatisticsHandler) export(c echo.Context) error {
	r, err := usecase.ParseDateRange(c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	orderStats, err := h.uc.OrderStatistics(ctx, r)
	if err != nil {
		return writeError(c, err)
	}
	productStats, err := h.uc.ProductStatistics(ctx, r)
	if err != nil {
		return writeError(c, err)
	}

	f, err := export.StatisticsWorkbook(orderStats, productStats)
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	return writeWorkbook(c, f, "statistics.xlsx")
}
