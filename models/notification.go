package models

import "time"

const (
	NotificationFollow = "FOLLOW"
	NotificationSystem = "SYSTEM"
)

// Notification ids come from pkg/snowflake, not the database.
type Notification struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	ReceiverID int64     `gorm:"column:receiver_id;not null;index:idx_notification_receiver,priority:1" json:"receiverId"`
	ActorID    int64     `gorm:"column:actor_id;not null;default:0" json:"actorId"`
	Type       string    `gorm:"column:type;size:16;not null" json:"type"`
	Message    string    `gorm:"column:message;size:500;not null" json:"message"`
	IsRead     bool      `gorm:"column:is_read;not null;default:false" json:"isRead"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_notification_receiver,priority:2" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
