package models

import (
	"time"
)

type Follow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID  int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follow_pair,priority:1" json:"followerId"`          // 关注人
	FollowingID int64     `gorm:"column:following_id;not null;uniqueIndex:uk_follow_pair,priority:2;index" json:"followingId"` // 被关注人
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}
