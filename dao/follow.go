package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.Follow](db),
	}
}

func (d *FollowDAO) WithTx(tx *gorm.DB) *FollowDAO {
	return &FollowDAO{Repo: NewRepo[models.Follow](tx)}
}

// IsFollowing 检查是否已关注
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND following_id = ?", followerID, followingID)
}

// Insert 关注，已存在时返回 false
func (d *FollowDAO) Insert(ctx context.Context, followerID, followingID int64) (bool, error) {
	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Remove 取消关注，不存在时视为成功
func (d *FollowDAO) Remove(ctx context.Context, followerID, followingID int64) error {
	return d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

// GetFollowerCount 获取粉丝数
func (d *FollowDAO) GetFollowerCount(ctx context.Context, userID int64) (int64, error) {
	return d.FindCount(ctx, "following_id = ?", userID)
}

// GetFollowingCount 获取关注数
func (d *FollowDAO) GetFollowingCount(ctx context.Context, userID int64) (int64, error) {
	return d.FindCount(ctx, "follower_id = ?", userID)
}
