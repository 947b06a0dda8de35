package dao

import (
	"context"

	"Scribe/models"
	"Scribe/pkg/snowflake"

	"gorm.io/gorm"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](db)}
}

func (d *NotificationDAO) WithTx(tx *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](tx)}
}

// Create assigns a snowflake id when the caller left it empty.
func (d *NotificationDAO) Create(ctx context.Context, n *models.Notification) error {
	if n.ID == 0 {
		n.ID = snowflake.GenID()
	}
	return d.Repo.Create(ctx, n)
}

// ListByReceiver 按时间倒序；limit <= 0 表示不分页
func (d *NotificationDAO) ListByReceiver(ctx context.Context, receiverID int64, limit, offset int) ([]models.Notification, error) {
	items := make([]models.Notification, 0)
	q := d.Db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (d *NotificationDAO) CountUnread(ctx context.Context, receiverID int64) (int64, error) {
	return d.FindCount(ctx, "receiver_id = ? AND is_read = ?", receiverID, false)
}

// MarkRead returns the number of rows matched; zero means the notification
// is not the receiver's.
func (d *NotificationDAO) MarkRead(ctx context.Context, id, receiverID int64) (int64, error) {
	var n int64
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.Notification{}).
			Where("id = ? AND receiver_id = ?", id, receiverID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		return tx.Model(&models.Notification{}).
			Where("id = ? AND receiver_id = ?", id, receiverID).
			Update("is_read", true).Error
	})
	return n, err
}

func (d *NotificationDAO) MarkAllRead(ctx context.Context, receiverID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Update("is_read", true).Error
}
