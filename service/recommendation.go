package service

import (
	"context"
	"fmt"

	"Scribe/dao"
	"Scribe/models"

	"gorm.io/gorm"
)

var _ IRecommendationService = (*RecommendationService)(nil)

type IRecommendationService interface {
	Apply(ctx context.Context, userID, blogID int64, action string) error
}

type RecommendationService struct {
	BlogDAO           *dao.BlogDAO
	RecommendationDAO *dao.RecommendationDAO
}

// Apply records or withdraws a recommendation. The row and the blog counter
// change in one transaction and only when the row actually changed, so
// repeating an action is a no-op.
func (s *RecommendationService) Apply(ctx context.Context, userID, blogID int64, action string) error {
	if action != models.ActionIncrease && action != models.ActionDecrease {
		return ErrInvalidAction
	}

	exist, err := s.BlogDAO.Exists(ctx, blogID)
	if err != nil {
		return fmt.Errorf("check blog %d: %w", blogID, err)
	}
	if !exist {
		return ErrBlogNotFound
	}

	return s.BlogDAO.Transaction(ctx, func(tx *gorm.DB) error {
		blogs := s.BlogDAO.WithTx(tx)
		recs := s.RecommendationDAO.WithTx(tx)

		var (
			changed bool
			delta   int64
			err     error
		)
		switch action {
		case models.ActionIncrease:
			changed, err = recs.Insert(ctx, userID, blogID)
			delta = 1
		case models.ActionDecrease:
			changed, err = recs.Remove(ctx, userID, blogID)
			delta = -1
		}
		if err != nil {
			return fmt.Errorf("%s blog %d: %w", action, blogID, err)
		}
		if !changed {
			return nil
		}
		return blogs.IncrRecommendationCount(ctx, blogID, delta)
	})
}
