package user

import (
	"errors"
	"net/http"
	"strconv"

	"Scribe/pkg/context"
	"Scribe/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler 用户模块的 HTTP 处理器
type Handler struct {
	svc Service
}

// NewHandler 构造函数
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRouter 注册路由
func (h *Handler) RegisterRouter(r gin.IRouter) {
	userGroup := r.Group("/v1/user")
	{
		userGroup.GET("/:id", context.Wrap(h.GetProfile))
	}
}

// GetProfile 作者公开资料
func (h *Handler) GetProfile(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.NewError(http.StatusBadRequest, "Invalid user id.")
	}

	profile, err := h.svc.GetProfile(c.Request.Context(), id)
	if errors.Is(err, ErrUserNotFound) {
		return response.NewError(http.StatusNotFound, "User not found.")
	}
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}
