package handler

import (
	"errors"
	"net/http"

	"Scribe/config"
	"Scribe/middleware"
	"Scribe/pkg/context"
	"Scribe/pkg/response"
	"Scribe/service"
	"Scribe/types"

	"github.com/gin-gonic/gin"
)

type Notification struct {
	Config              *config.Config
	NotificationService service.INotificationService
}

func (n *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret))
	g := r.Group("/v1/user-actions/notifications", authorize)
	g.GET("", context.Wrap(n.List))
	g.GET("/unread-count", context.Wrap(n.UnreadCount))
	g.PUT("/read-all", context.Wrap(n.ReadAll))
	g.PUT("/:id/read", context.Wrap(n.Read))
}

func (n *Notification) List(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid pagination parameters.")
	}

	items, err := n.NotificationService.List(c.Request.Context(), uid, page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err, "Failed to fetch notifications.")
	}

	resp := types.NotificationListResponse{Notifications: make([]types.NotificationItem, 0, len(items))}
	for _, item := range items {
		resp.Notifications = append(resp.Notifications, types.NotificationItem{
			ID:        item.ID,
			Message:   item.Message,
			Type:      item.Type,
			IsRead:    item.IsRead,
			CreatedAt: item.CreatedAt,
		})
	}
	response.Success(c, resp)
	return nil
}

// UnreadCount 未读通知数
func (n *Notification) UnreadCount(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}

	count, err := n.NotificationService.UnreadCount(c.Request.Context(), uid)
	if err != nil {
		return internalError(c, err, "Failed to fetch unread count.")
	}

	response.Success(c, types.UnreadCountResponse{Count: count})
	return nil
}

func (n *Notification) Read(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid notification id.")
	}

	err = n.NotificationService.MarkRead(c.Request.Context(), id, uid)
	if errors.Is(err, service.ErrNotFound) {
		return response.NewError(http.StatusNotFound, "Notification not found.")
	}
	if err != nil {
		return internalError(c, err, "Failed to mark notification as read.")
	}

	response.OK(c, "Notification marked as read.")
	return nil
}

func (n *Notification) ReadAll(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := n.NotificationService.MarkAllRead(c.Request.Context(), uid); err != nil {
		return internalError(c, err, "Failed to mark notifications as read.")
	}

	response.OK(c, "All notifications marked as read.")
	return nil
}
