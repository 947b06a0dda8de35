package models

import "time"

const (
	ActionIncrease = "INCREASE_RECOMMENDATION"
	ActionDecrease = "DECREASE_RECOMMENDATION"
)

// Recommendation 推荐记录
// 唯一键: user_id + blog_id
// A row exists only while the user recommends the blog; blogs.recommendation_count
// always equals the number of rows for that blog.
type Recommendation struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_recommendation_user_blog,priority:1" json:"userId"`
	BlogID    int64     `gorm:"column:blog_id;not null;uniqueIndex:uk_recommendation_user_blog,priority:2;index" json:"blogId"`
	Action    string    `gorm:"column:action;size:32;not null" json:"action"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`

	Blog *Blog `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recommendation) TableName() string { return "recommendations" }
