package server

import (
	"lixishop/internal/config"
	"lixishop/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はルーティングに必要なハンドラ一式
type Handlers struct {
	Auth       *handler.AuthHandler
	Order      *handler.OrderHandler
	Statistics *handler.StatisticsHandler
	Product    *handler.ProductHandler
	Comment    *handler.CommentHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Statistics.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Product.RegisterRoutes(e, cfg)
	h.Comment.RegisterRoutes(e, cfg)
}
