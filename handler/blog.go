package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"Scribe/config"
	"Scribe/middleware"
	"Scribe/pkg/context"
	"Scribe/pkg/llm"
	"Scribe/pkg/response"
	"Scribe/service"
	"Scribe/types"

	"github.com/gin-gonic/gin"
)

const generateAction = "generate"

type Blog struct {
	Config      *config.Config
	BlogService service.IBlogService
	Limiter     middleware.Limiter
}

func (b *Blog) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(b.Config.Jwt.Secret))
	limit := middleware.RateLimit(b.Limiter, generateAction, b.Config.RateLimit.GeneratePerMinute, time.Minute)

	g := r.Group("/v1/blog")
	g.POST("/publish", authorize, context.Wrap(b.Publish))
	g.PUT("/update/:id", authorize, context.Wrap(b.Update))
	g.DELETE("/delete/:id", authorize, context.Wrap(b.Delete))
	g.GET("/bulk", context.Wrap(b.List))
	g.GET("/top-picks", context.Wrap(b.TopPicks))
	g.GET("/:id", context.Wrap(b.Get))
	g.POST("/with-ai", authorize, limit, context.Wrap(b.GenerateWithAI))
}

// Publish 发布博客
func (b *Blog) Publish(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.PublishBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil || blank(req.Title, req.Content) {
		return response.NewError(http.StatusLengthRequired, "Inputs not correct")
	}

	id, err := b.BlogService.Publish(c.Request.Context(), uid, strings.TrimSpace(req.Title), req.Content)
	if err != nil {
		return internalError(c, err, "Failed to publish blog.")
	}

	response.Success(c, types.PublishBlogResponse{ID: id})
	return nil
}

// Update 修改博客，仅作者本人
func (b *Blog) Update(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid input format")
	}
	var req types.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil || blank(req.Title, req.Content) {
		return response.NewError(http.StatusBadRequest, "Invalid input format")
	}

	blog, err := b.BlogService.Update(c.Request.Context(), id, uid, strings.TrimSpace(req.Title), req.Content)
	if errors.Is(err, service.ErrForbidden) {
		return response.NewError(http.StatusForbidden, "You are not authorized to edit this blog.")
	}
	if err != nil {
		return internalError(c, err, "Failed to update blog.")
	}

	response.Success(c, types.UpdateBlogResponse{
		Message: "Blog updated successfully!",
		Blog:    blog,
	})
	return nil
}

// Delete 删除博客，仅作者本人
func (b *Blog) Delete(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}

	forbidden := response.NewError(http.StatusForbidden, "You are not authorized to delete this blog")
	id, err := paramID(c, "id")
	if err != nil {
		return forbidden
	}

	err = b.BlogService.Delete(c.Request.Context(), id, uid)
	if errors.Is(err, service.ErrForbidden) {
		return forbidden
	}
	if err != nil {
		return internalError(c, err, "Internal server error")
	}

	response.OK(c, "Blog deleted successfully")
	return nil
}

func (b *Blog) List(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid pagination parameters.")
	}

	blogs, err := b.BlogService.List(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err, "Failed to fetch blogs")
	}

	response.Success(c, types.BlogListResponse{Blogs: blogs})
	return nil
}

func (b *Blog) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid blog ID.")
	}

	blog, err := b.BlogService.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrBlogNotFound) {
		return response.NewError(http.StatusNotFound, "Blog not found.")
	}
	if err != nil {
		return internalError(c, err, "Internal Server Error.")
	}

	response.Success(c, blog)
	return nil
}

func (b *Blog) TopPicks(c *gin.Context) error {
	blogs, err := b.BlogService.TopPicks(c.Request.Context())
	if err != nil {
		return internalError(c, err, "Internal Server Error")
	}

	picks := make([]types.TopPick, 0, len(blogs))
	for _, blog := range blogs {
		picks = append(picks, types.TopPick{ID: blog.ID, Title: blog.Title})
	}
	response.Success(c, picks)
	return nil
}

// GenerateWithAI 根据标题生成 Markdown 正文
func (b *Blog) GenerateWithAI(c *gin.Context) error {
	var req types.GenerateBlogRequest
	// a malformed body is reported the same way as a missing title
	_ = c.ShouldBindJSON(&req)
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return response.NewError(http.StatusBadRequest, "Title is required")
	}

	content, err := b.BlogService.Generate(c.Request.Context(), title)
	if errors.Is(err, llm.ErrTimeout) {
		return response.NewError(http.StatusGatewayTimeout, "Content generation timed out, please retry")
	}
	if err != nil {
		return internalError(c, err, "Failed to generate content")
	}

	response.Success(c, types.GenerateBlogResponse{Content: content})
	return nil
}
