package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/personal-finance/internal/core/domain"
)

// CategoryHandler exposes the static category registry.
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List handles GET /v1/categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        type  query     string  false  "expense | income; omitted lists both"
// @Success      200   {array}   categoryResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	var cats []domain.Category
	switch t := domain.TransactionType(c.QueryParam("type")); {
	case t == "":
		cats = domain.AllCategories()
	case t.Valid():
		cats = domain.Categories(t)
	default:
		return fmt.Errorf("%w: type must be expense or income", domain.ErrValidation)
	}

	out := make([]categoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, toCategoryResponse(cat))
	}
	return c.JSON(http.StatusOK, out)
}
