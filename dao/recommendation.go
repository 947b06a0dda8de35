package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommendationDAO struct {
	Repo[models.Recommendation]
}

func NewRecommendationDAO(db *gorm.DB) *RecommendationDAO {
	return &RecommendationDAO{Repo: NewRepo[models.Recommendation](db)}
}

func (d *RecommendationDAO) WithTx(tx *gorm.DB) *RecommendationDAO {
	return &RecommendationDAO{Repo: NewRepo[models.Recommendation](tx)}
}

// Insert records that userID recommends blogID. It reports false when the
// recommendation already existed.
func (d *RecommendationDAO) Insert(ctx context.Context, userID, blogID int64) (bool, error) {
	item := models.Recommendation{UserID: userID, BlogID: blogID, Action: models.ActionIncrease}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Remove deletes the recommendation and reports whether one existed.
func (d *RecommendationDAO) Remove(ctx context.Context, userID, blogID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND blog_id = ?", userID, blogID).
		Delete(&models.Recommendation{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *RecommendationDAO) CountByBlog(ctx context.Context, blogID int64) (int64, error) {
	return d.FindCount(ctx, "blog_id = ? AND action = ?", blogID, models.ActionIncrease)
}
