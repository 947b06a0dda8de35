package service

import (
	"context"
	"fmt"

	"Scribe/dao"
)

var _ IMuteService = (*MuteService)(nil)

type IMuteService interface {
	Mute(ctx context.Context, userID, authorID int64) error
	Unmute(ctx context.Context, userID, authorID int64) error
	IsMuted(ctx context.Context, userID, authorID int64) (bool, error)
}

// MuteService hides an author's follow notifications from the muting user.
type MuteService struct {
	MuteDAO *dao.MuteDAO
	UserDAO *dao.UserDAO
}

func (s *MuteService) Mute(ctx context.Context, userID, authorID int64) error {
	if userID == authorID {
		return ErrSelfAction
	}
	exist, err := s.UserDAO.Exists(ctx, authorID)
	if err != nil {
		return fmt.Errorf("check author %d: %w", authorID, err)
	}
	if !exist {
		return ErrAuthorNotFound
	}
	if err := s.MuteDAO.Insert(ctx, userID, authorID); err != nil {
		return fmt.Errorf("mute %d -> %d: %w", userID, authorID, err)
	}
	return nil
}

func (s *MuteService) Unmute(ctx context.Context, userID, authorID int64) error {
	if err := s.MuteDAO.Remove(ctx, userID, authorID); err != nil {
		return fmt.Errorf("unmute %d -> %d: %w", userID, authorID, err)
	}
	return nil
}

func (s *MuteService) IsMuted(ctx context.Context, userID, authorID int64) (bool, error) {
	return s.MuteDAO.IsMuted(ctx, userID, authorID)
}
