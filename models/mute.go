package models

import "time"

type Mute struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"column:user_id;not null;uniqueIndex:uk_mute_pair,priority:1" json:"userId"`
	MutedUserID int64     `gorm:"column:muted_user_id;not null;uniqueIndex:uk_mute_pair,priority:2" json:"mutedUserId"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Mute) TableName() string {
	return "mutes"
}
