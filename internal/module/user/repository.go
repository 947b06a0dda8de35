package user

import (
	"context"

	"Scribe/dao"
	"Scribe/models"

	"gorm.io/gorm"
)

// Repository 接口定义
type Repository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u *models.User) error
	Stats(ctx context.Context, id int64) (blogs, followers, following int64, err error)
}

// repository 基于共享 DAO 实现
type repository struct {
	users   *dao.UserDAO
	blogs   *dao.BlogDAO
	follows *dao.FollowDAO
}

// NewRepository 构造函数
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		users:   dao.NewUserDAO(db),
		blogs:   dao.NewBlogDAO(db),
		follows: dao.NewFollowDAO(db),
	}
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return r.users.FindById(ctx, id)
}

func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.users.IsUsernameExist(ctx, username)
}

func (r *repository) Create(ctx context.Context, u *models.User) error {
	return r.users.Create(ctx, u)
}

func (r *repository) Stats(ctx context.Context, id int64) (blogs, followers, following int64, err error) {
	if blogs, err = r.blogs.CountByAuthor(ctx, id); err != nil {
		return
	}
	if followers, err = r.follows.GetFollowerCount(ctx, id); err != nil {
		return
	}
	following, err = r.follows.GetFollowingCount(ctx, id)
	return
}
