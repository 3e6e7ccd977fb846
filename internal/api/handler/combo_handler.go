package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type ComboHandler struct {
	service ports.ComboService
}

func NewComboHandler(service ports.ComboService) *ComboHandler {
	return &ComboHandler{service: service}
}

// List handles GET /combos.
//
// @Summary      List combos
// @Tags         combos
// @Produce      json
// @Param        active  query     string  false  "true, false or all (default)"
// @Success      200     {array}   domain.Combo
// @Failure      400     {object}  errorResponse
// @Router       /combos [get]
func (h *ComboHandler) List(c echo.Context) error {
	active, err := activeParam(c)
	if err != nil {
		return err
	}
	combos, err := h.service.ListCombos(c.Request().Context(), ports.ComboFilter{Active: active})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, combos)
}

// Get handles GET /combos/:id.
//
// @Summary      Get a combo
// @Tags         combos
// @Produce      json
// @Param        id   path      string  true  "Combo id"
// @Success      200  {object}  domain.Combo
// @Failure      404  {object}  errorResponse
// @Router       /combos/{id} [get]
func (h *ComboHandler) Get(c echo.Context) error {
	combo, err := h.service.GetCombo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, combo)
}

// Create handles POST /combos.
//
// @Summary      Create a combo
// @Tags         combos
// @Accept       json
// @Produce      json
// @Param        body  body      createComboRequest  true  "Combo"
// @Success      201   {object}  domain.Combo
// @Failure      400   {object}  errorResponse
// @Router       /combos [post]
func (h *ComboHandler) Create(c echo.Context) error {
	var req createComboRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	combo, err := h.service.CreateCombo(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, combo)
}

// Update handles PUT /combos/:id.
//
// @Summary      Update a combo
// @Tags         combos
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Combo id"
// @Param        body  body      updateComboRequest  true  "Fields to change"
// @Success      200   {object}  domain.Combo
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /combos/{id} [put]
func (h *ComboHandler) Update(c echo.Context) error {
	var req updateComboRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	combo, err := h.service.UpdateCombo(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, combo)
}

// Delete handles DELETE /combos/:id.
//
// @Summary      Delete a combo
// @Tags         combos
// @Produce      json
// @Param        id   path      string  true  "Combo id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /combos/{id} [delete]
func (h *ComboHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteCombo(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Combo deleted successfully"})
}
