package models

import "time"

type Blog struct {
	ID                  int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title               string    `gorm:"column:title;size:255;not null" json:"title"`
	Content             string    `gorm:"column:content;type:text;not null" json:"content"`
	AuthorID            int64     `gorm:"column:author_id;not null;index" json:"authorId"`
	RecommendationCount int64     `gorm:"column:recommendation_count;not null;default:0" json:"recommendationCount"`
	CreatedAt           time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"column:updated_at" json:"updatedAt"`

	Author *Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Blog) TableName() string {
	return "blogs"
}
