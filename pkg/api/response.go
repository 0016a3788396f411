package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hr-system/pkg/types"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

// SuccessOne - для возврата одного объекта
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

// SuccessPage - для возврата страницы списка вместе с пагинацией
func SuccessPage[T any](c echo.Context, message string, page types.Page[T]) error {
	if page.Items == nil {
		page.Items = make([]T, 0)
	}
	return c.JSON(http.StatusOK, Response[types.Page[T]]{
		Status:  true,
		Message: message,
		Body:    page,
	})
}

func SuccessEmpty(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response[any]{
		Status:  true,
		Message: message,
	})
}
