package handler

import (
	"net/http"

	"lixishop/internal/config"
	"lixishop/internal/export"
	"lixishop/internal/middleware"
	"lixishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	//注文の作成だけ公開。それ以外は管理者専用
	e.POST("/orders", h.create)

	admin := e.Group("/orders")
	admin.Use(middleware.AdminJWT(cfg))
	admin.GET("", h.list)
	admin.GET("/export", h.export)
	admin.GET("/:id", h.detail)
	admin.PATCH("/:id/status", h.updateStatus)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return successJSON(c, http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.ListOrdersInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 注文一覧をxlsxでダウンロードさせる
func (h *OrderHandler) export(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context(), usecase.ListOrdersInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return writeError(c, err)
	}

	f, err := export.OrdersWorkbook(orders)
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	return writeWorkbook(c, f, "orders.xlsx")
}
