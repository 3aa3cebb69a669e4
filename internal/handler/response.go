package handler

import (
	"fmt"
	"net/http"

	"lixishop/internal/apperr"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

func successJSON(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, SuccessResponse{Status: "success", Data: data})
}

// apperr.KindをHTTPステータスへ変換して返す。分類できないものは500
func writeError(c echo.Context, err error) error {
	if e, ok := apperr.As(err); ok {
		switch e.Kind {
		case apperr.KindValidation, apperr.KindTransition:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: e.Message})
		case apperr.KindUnauthorized:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: e.Message})
		case apperr.KindNotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: e.Message})
		case apperr.KindConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: e.Message})
		}
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ワークブックを添付ファイルとしてレスポンスに書き出す
func writeWorkbook(c echo.Context, f *excelize.File, filename string) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, xlsxContentType)
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	res.WriteHeader(http.StatusOK)
	return f.Write(res)
}
