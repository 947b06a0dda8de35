package service

import (
	"context"
	"fmt"

	"Scribe/dao"
	"Scribe/models"
	"Scribe/pkg/log"

	"go.uber.org/zap"
)

// UnreadCounter caches unread notification counts. Misses and failures
// fall back to the database.
type UnreadCounter interface {
	Get(ctx context.Context, uid int64) (int64, bool)
	Set(ctx context.Context, uid int64, count int64) error
	Del(ctx context.Context, uid int64) error
}

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	List(ctx context.Context, receiverID int64, limit, offset int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, receiverID int64) (int64, error)
	MarkRead(ctx context.Context, id, receiverID int64) error
	MarkAllRead(ctx context.Context, receiverID int64) error
}

type NotificationService struct {
	NotificationDAO *dao.NotificationDAO
	Unread          UnreadCounter
}

func (s *NotificationService) List(ctx context.Context, receiverID int64, limit, offset int) ([]models.Notification, error) {
	items, err := s.NotificationDAO.ListByReceiver(ctx, receiverID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, receiverID int64) (int64, error) {
	if n, ok := s.Unread.Get(ctx, receiverID); ok {
		return n, nil
	}

	n, err := s.NotificationDAO.CountUnread(ctx, receiverID)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	if err := s.Unread.Set(ctx, receiverID, n); err != nil {
		log.L.Warn("cache unread count", zap.Int64("uid", receiverID), zap.Error(err))
	}
	return n, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, receiverID int64) error {
	n, err := s.NotificationDAO.MarkRead(ctx, id, receiverID)
	if err != nil {
		return fmt.Errorf("mark notification %d read: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	invalidateUnread(ctx, s.Unread, receiverID)
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, receiverID int64) error {
	if err := s.NotificationDAO.MarkAllRead(ctx, receiverID); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	invalidateUnread(ctx, s.Unread, receiverID)
	return nil
}

func invalidateUnread(ctx context.Context, c UnreadCounter, uid int64) {
	if err := c.Del(ctx, uid); err != nil {
		log.L.Warn("invalidate unread count", zap.Int64("uid", uid), zap.Error(err))
	}
}
