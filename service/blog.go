package service

import (
	"context"
	"fmt"

	"Scribe/dao"
	"Scribe/models"
	"Scribe/pkg/llm"
)

const topPicksSize = 5

var _ IBlogService = (*BlogService)(nil)

type IBlogService interface {
	Publish(ctx context.Context, authorID int64, title, content string) (int64, error)
	Update(ctx context.Context, id, authorID int64, title, content string) (*models.Blog, error)
	Delete(ctx context.Context, id, authorID int64) error
	List(ctx context.Context, limit, offset int) ([]models.Blog, error)
	Get(ctx context.Context, id int64) (*models.Blog, error)
	TopPicks(ctx context.Context) ([]models.Blog, error)
	Generate(ctx context.Context, title string) (string, error)
}

type BlogService struct {
	BlogDAO   *dao.BlogDAO
	Generator llm.Generator
}

func (s *BlogService) Publish(ctx context.Context, authorID int64, title, content string) (int64, error) {
	blog := &models.Blog{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.BlogDAO.Create(ctx, blog); err != nil {
		return 0, fmt.Errorf("create blog: %w", err)
	}
	return blog.ID, nil
}

// Update 只有作者本人可以修改；不存在与非本人一律 ErrForbidden
func (s *BlogService) Update(ctx context.Context, id, authorID int64, title, content string) (*models.Blog, error) {
	blog, err := s.BlogDAO.UpdateOwned(ctx, id, authorID, title, content)
	if dao.IsNotFound(err) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, fmt.Errorf("update blog %d: %w", id, err)
	}
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, id, authorID int64) error {
	n, err := s.BlogDAO.DeleteOwned(ctx, id, authorID)
	if err != nil {
		return fmt.Errorf("delete blog %d: %w", id, err)
	}
	if n == 0 {
		return ErrForbidden
	}
	return nil
}

func (s *BlogService) List(ctx context.Context, limit, offset int) ([]models.Blog, error) {
	return s.BlogDAO.List(ctx, limit, offset)
}

func (s *BlogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	blog, err := s.BlogDAO.Get(ctx, id)
	if dao.IsNotFound(err) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog %d: %w", id, err)
	}
	return blog, nil
}

// TopPicks is a recency placeholder until there is a real ranking.
func (s *BlogService) TopPicks(ctx context.Context) ([]models.Blog, error) {
	return s.BlogDAO.TopPicks(ctx, topPicksSize)
}

// Generate drafts a Markdown body for title. The returned error wraps
// llm.ErrTimeout when the provider did not answer in time.
func (s *BlogService) Generate(ctx context.Context, title string) (string, error) {
	text, err := s.Generator.Generate(ctx, llm.BlogPrompt(title))
	if err != nil {
		return "", fmt.Errorf("generate blog content: %w", err)
	}
	return text, nil
}
