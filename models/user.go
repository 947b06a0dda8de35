package models

import "time"

// User 用户, created outside this service.
type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null;default:''" json:"name"`
	Username  string    `gorm:"column:username;size:100;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// Author is the public projection of a User embedded in blog payloads.
type Author struct {
	ID       int64  `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;size:100;not null;default:''" json:"name"`
	Username string `gorm:"column:username;size:100;not null;uniqueIndex" json:"username"`
}

func (Author) TableName() string {
	return "users"
}
