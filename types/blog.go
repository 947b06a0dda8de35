package types

import "Scribe/models"

type PublishBlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type PublishBlogResponse struct {
	ID int64 `json:"id"`
}

type UpdateBlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateBlogResponse struct {
	Message string       `json:"message"`
	Blog    *models.Blog `json:"blog"`
}

type BlogListResponse struct {
	Blogs []models.Blog `json:"blogs"`
}

type TopPick struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type GenerateBlogRequest struct {
	Title string `json:"title"`
}

type GenerateBlogResponse struct {
	Content string `json:"content"`
}
