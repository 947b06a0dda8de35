package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		Repo: NewRepo[models.User](db),
	}
}

func (u *UserDAO) Exists(ctx context.Context, id int64) (bool, error) {
	return u.IsExist(ctx, "id = ?", id)
}

func (u *UserDAO) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.IsExist(ctx, "username = ?", username)
}
