package service

import (
	"context"
	"fmt"

	"Scribe/dao"
	"Scribe/models"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, authorID int64) error
	Unfollow(ctx context.Context, followerID, authorID int64) error
	IsFollowing(ctx context.Context, followerID, authorID int64) (bool, error)
}

type FollowService struct {
	FollowDAO       *dao.FollowDAO
	MuteDAO         *dao.MuteDAO
	UserDAO         *dao.UserDAO
	NotificationDAO *dao.NotificationDAO
	Unread          UnreadCounter
}

func (s *FollowService) Follow(ctx context.Context, followerID, authorID int64) error {
	// 不能关注自己
	if followerID == authorID {
		return ErrSelfAction
	}

	// 校验被关注用户是否存在
	exist, err := s.UserDAO.Exists(ctx, authorID)
	if err != nil {
		return fmt.Errorf("check author %d: %w", authorID, err)
	}
	if !exist {
		return ErrAuthorNotFound
	}

	message := s.followMessage(ctx, followerID)
	notified := false
	err = s.FollowDAO.Transaction(ctx, func(tx *gorm.DB) error {
		created, err := s.FollowDAO.WithTx(tx).Insert(ctx, followerID, authorID)
		if err != nil {
			return err
		}
		// 已经关注过，直接返回成功
		if !created {
			return nil
		}

		muted, err := s.MuteDAO.WithTx(tx).IsMuted(ctx, authorID, followerID)
		if err != nil {
			return err
		}
		if muted {
			return nil
		}

		notified = true
		return s.NotificationDAO.WithTx(tx).Create(ctx, &models.Notification{
			ReceiverID: authorID,
			ActorID:    followerID,
			Type:       models.NotificationFollow,
			Message:    message,
		})
	})
	if err != nil {
		return fmt.Errorf("follow %d -> %d: %w", followerID, authorID, err)
	}

	if notified {
		invalidateUnread(ctx, s.Unread, authorID)
	}
	return nil
}

func (s *FollowService) followMessage(ctx context.Context, followerID int64) string {
	follower, err := s.UserDAO.FindById(ctx, followerID)
	if err != nil || follower == nil {
		return "Someone started following you."
	}
	return fmt.Sprintf("%s (@%s) started following you.", follower.Name, follower.Username)
}

// Unfollow 取消关注，未关注时同样成功
func (s *FollowService) Unfollow(ctx context.Context, followerID, authorID int64) error {
	if err := s.FollowDAO.Remove(ctx, followerID, authorID); err != nil {
		return fmt.Errorf("unfollow %d -> %d: %w", followerID, authorID, err)
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, authorID int64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, authorID)
}
