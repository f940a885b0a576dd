package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type notificationListResponse struct {
	Success       bool                  `json:"success"`
	Notifications []domain.Notification `json:"notifications"`
}

// List returns the requester's notifications, unread first.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  notificationListResponse
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.notifications.ListForRecipient(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationListResponse{Success: true, Notifications: items})
}

// MarkAllRead marks every notification of the requester as read.
//
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /notifications/read [post]
// @Security     BearerAuth
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.notifications.MarkAllRead(c.Request().Context(), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "notifications marked read"})
}
