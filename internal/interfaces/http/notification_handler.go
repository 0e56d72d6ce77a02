package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Stanko5566/lean-cockpit-api/internal/infrastructure/notify"
)

// NotificationHandler expone el feed de notificaciones de mutaciones.
type NotificationHandler struct {
	feed *notify.Feed
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// Recent godoc
// @Summary      Notificaciones recientes
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de notificaciones"  default(50)
// @Success      200    {array}  notify.Notification
// @Router       /api/notifications [get]
func (h *NotificationHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return c.JSON(h.feed.Recent(limit))
}
