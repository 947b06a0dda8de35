package dao

import (
	"context"
	"errors"
	"time"

	"Scribe/models"

	"gorm.io/gorm"
)

type BlogDAO struct {
	Repo[models.Blog]
}

func NewBlogDAO(db *gorm.DB) *BlogDAO {
	return &BlogDAO{Repo: NewRepo[models.Blog](db)}
}

// WithTx returns a BlogDAO bound to tx.
func (d *BlogDAO) WithTx(tx *gorm.DB) *BlogDAO {
	return &BlogDAO{Repo: NewRepo[models.Blog](tx)}
}

func withAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("Author")
}

// Get 查询单篇博客（含作者）
func (d *BlogDAO) Get(ctx context.Context, id int64) (*models.Blog, error) {
	var blog models.Blog
	err := d.Db.WithContext(ctx).Scopes(withAuthor).Where("id = ?", id).First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// List 按创建时间倒序返回博客；limit <= 0 表示不分页
func (d *BlogDAO) List(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	blogs := make([]models.Blog, 0)
	q := d.Db.WithContext(ctx).Scopes(withAuthor).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// TopPicks returns id and title of the n most recent blogs.
func (d *BlogDAO) TopPicks(ctx context.Context, n int) ([]models.Blog, error) {
	blogs := make([]models.Blog, 0, n)
	err := d.Db.WithContext(ctx).
		Select("id", "title").
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&blogs).Error
	return blogs, err
}

// UpdateOwned changes title and content of a blog owned by authorID and
// returns the reloaded row. gorm.ErrRecordNotFound means the blog does not
// exist or belongs to someone else.
func (d *BlogDAO) UpdateOwned(ctx context.Context, id, authorID int64, title, content string) (*models.Blog, error) {
	var blog models.Blog
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&models.Blog{}).
			Where("id = ? AND author_id = ?", id, authorID).
			Updates(map[string]any{
				"title":      title,
				"content":    content,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		// MySQL reports zero affected rows when nothing changed
		if res.RowsAffected == 0 {
			var owned int64
			if err := tx.Model(&models.Blog{}).Where("id = ? AND author_id = ?", id, authorID).Count(&owned).Error; err != nil {
				return err
			}
			if owned == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return tx.Scopes(withAuthor).Where("id = ?", id).First(&blog).Error
	})
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteOwned deletes a blog owned by authorID and reports how many rows went.
func (d *BlogDAO) DeleteOwned(ctx context.Context, id, authorID int64) (int64, error) {
	res := d.Db.WithContext(ctx).Where("id = ? AND author_id = ?", id, authorID).Delete(&models.Blog{})
	return res.RowsAffected, res.Error
}

// IncrRecommendationCount 原子增减推荐数
func (d *BlogDAO) IncrRecommendationCount(ctx context.Context, id int64, delta int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("recommendation_count", gorm.Expr("recommendation_count + ?", delta)).Error
}

func (d *BlogDAO) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	return d.FindCount(ctx, "author_id = ?", authorID)
}

func (d *BlogDAO) Exists(ctx context.Context, id int64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
