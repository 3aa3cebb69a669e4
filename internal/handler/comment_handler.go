package handler

import (
	"net/http"
	"strconv"

	"lixishop/internal/config"
	"lixishop/internal/middleware"
	"lixishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	uc *usecase.CommentUsecase
}

func NewCommentHandler(uc *usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

func (h *CommentHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/comments", h.create)
	e.GET("/comments/product/:productId", h.listByProduct)

	admin := e.Group("/comments")
	admin.Use(middleware.AdminJWT(cfg))
	admin.GET("", h.adminList)
	admin.PATCH("/:id/toggle", h.toggle)
	admin.DELETE("/:id", h.remove)
}

type commentList struct {
	Items interface{}             `json:"items"`
	Meta  usecase.CommentListMeta `json:"meta"`
}

func queryInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}

func (h *CommentHandler) create(c echo.Context) error {
	var req usecase.CreateCommentInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return successJSON(c, http.StatusCreated, out)
}

func (h *CommentHandler) listByProduct(c echo.Context) error {
	items, meta, err := h.uc.ListByProduct(
		c.Request().Context(),
		c.Param("productId"),
		queryInt(c, "page"),
		queryInt(c, "limit"),
	)
	if err != nil {
		return writeError(c, err)
	}
	return successJSON(c, http.StatusOK, commentList{Items: items, Meta: meta})
}

func (h *CommentHandler) adminList(c echo.Context) error {
	items, meta, err := h.uc.AdminList(c.Request().Context(), usecase.AdminListCommentsInput{
		ProductID: c.QueryParam("productId"),
		Search:    c.QueryParam("search"),
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return successJSON(c, http.StatusOK, commentList{Items: items, Meta: meta})
}

func (h *CommentHandler) toggle(c echo.Context) error {
	out, err := h.uc.ToggleVisibility(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommentHandler) remove(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
