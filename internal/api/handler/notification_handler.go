package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// SendAllClient handles POST /notifications/sendAllClient.
//
// @Summary      Broadcast a notification to every dashboard
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      notificationRequest  true  "Notification"
// @Success      200   {object}  notificationResponse
// @Failure      400   {object}  errorResponse
// @Router       /notifications/sendAllClient [post]
func (h *NotificationHandler) SendAllClient(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	n, err := h.service.BroadcastAdmin(c.Request().Context(), ports.BroadcastInput{
		Title: req.Title,
		Body:  req.Body,
		Type:  req.Type,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notificationResponse{
		Success: true,
		Message: "Notification sent successfully",
		Data:    notificationData{Title: n.Title, Body: n.Body, Type: n.Type},
	})
}
