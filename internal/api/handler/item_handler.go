package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type ItemHandler struct {
	service ports.CatalogService
}

func NewItemHandler(service ports.CatalogService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /items.
//
// @Summary      List menu items
// @Tags         items
// @Produce      json
// @Param        category  query     string  false  "Category, or \"all\""
// @Param        search    query     string  false  "Case-insensitive name search"
// @Param        active    query     string  false  "\"all\" to include inactive items"
// @Success      200       {array}   domain.Item
// @Router       /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context(), ports.ListItemsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Active:   c.QueryParam("active"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /items/:id.
//
// @Summary      Get a menu item
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item id"
// @Success      200  {object}  domain.Item
// @Failure      404  {object}  errorResponse
// @Router       /items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.service.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}
