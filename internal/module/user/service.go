package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Scribe/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidInput  = errors.New("name, username and password are required")
)

// Service 接口
type Service interface {
	GetProfile(ctx context.Context, id int64) (*ProfileResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
}

// service 实现
type service struct {
	repo Repository
}

// NewService 构造函数
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, id int64) (*ProfileResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	blogs, followers, following, err := s.repo.Stats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user %d stats: %w", id, err)
	}

	return &ProfileResponse{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		CreatedAt:      u.CreatedAt,
		BlogCount:      blogs,
		FollowerCount:  followers,
		FollowingCount: following,
	}, nil
}

// CreateUser stores a user with a bcrypt password hash. Accounts are
// provisioned by operators, there is no public sign-up route.
func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	exist, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Username: req.Username,
		Password: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
