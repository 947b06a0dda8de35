package handler

import (
	"errors"
	"net/http"

	"Scribe/config"
	"Scribe/middleware"
	"Scribe/pkg/context"
	"Scribe/pkg/response"
	"Scribe/service"
	"Scribe/types"

	"github.com/gin-gonic/gin"
)

type UserAction struct {
	Config        *config.Config
	FollowService service.IFollowService
	MuteService   service.IMuteService
}

func (u *UserAction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/user-actions", authorize)
	g.POST("/follow/:authorId", context.Wrap(u.Follow))
	g.DELETE("/unfollow/:authorId", context.Wrap(u.Unfollow))
	g.POST("/mute/:authorId", context.Wrap(u.Mute))
	g.DELETE("/unmute/:authorId", context.Wrap(u.Unmute))
	g.GET("/status/:authorId", context.Wrap(u.Status))
}

// target returns the caller and the author named in the path.
func (u *UserAction) target(c *gin.Context) (int64, int64, error) {
	uid, err := currentUser(c)
	if err != nil {
		return 0, 0, err
	}
	authorID, err := paramID(c, "authorId")
	if err != nil {
		return 0, 0, response.NewError(http.StatusBadRequest, "Invalid author id.")
	}
	return uid, authorID, nil
}

// Follow 关注作者
func (u *UserAction) Follow(c *gin.Context) error {
	uid, authorID, err := u.target(c)
	if err != nil {
		return err
	}

	err = u.FollowService.Follow(c.Request.Context(), uid, authorID)
	switch {
	case errors.Is(err, service.ErrSelfAction):
		return response.NewError(http.StatusBadRequest, "You cannot follow yourself.")
	case errors.Is(err, service.ErrAuthorNotFound):
		return response.NewError(http.StatusNotFound, "Author not found.")
	case err != nil:
		return internalError(c, err, "Failed to follow author.")
	}

	response.OK(c, "You are now following this author.")
	return nil
}

// Unfollow 取消关注
func (u *UserAction) Unfollow(c *gin.Context) error {
	uid, authorID, err := u.target(c)
	if err != nil {
		return err
	}

	if err := u.FollowService.Unfollow(c.Request.Context(), uid, authorID); err != nil {
		return internalError(c, err, "Failed to unfollow author.")
	}

	response.OK(c, "You unfollowed this author.")
	return nil
}

func (u *UserAction) Mute(c *gin.Context) error {
	uid, authorID, err := u.target(c)
	if err != nil {
		return err
	}

	err = u.MuteService.Mute(c.Request.Context(), uid, authorID)
	switch {
	case errors.Is(err, service.ErrSelfAction):
		return response.NewError(http.StatusBadRequest, "You cannot mute yourself.")
	case errors.Is(err, service.ErrAuthorNotFound):
		return response.NewError(http.StatusNotFound, "Author not found.")
	case err != nil:
		return internalError(c, err, "Failed to mute author.")
	}

	response.OK(c, "Author has been muted successfully.")
	return nil
}

func (u *UserAction) Unmute(c *gin.Context) error {
	uid, authorID, err := u.target(c)
	if err != nil {
		return err
	}

	if err := u.MuteService.Unmute(c.Request.Context(), uid, authorID); err != nil {
		return internalError(c, err, "Failed to unmute author.")
	}

	response.OK(c, "You unmuted this author.")
	return nil
}

// Status 当前用户是否关注 / 屏蔽该作者
func (u *UserAction) Status(c *gin.Context) error {
	uid, authorID, err := u.target(c)
	if err != nil {
		return err
	}

	ctx := c.Request.Context()
	following, err := u.FollowService.IsFollowing(ctx, uid, authorID)
	if err != nil {
		return internalError(c, err, "Failed to fetch author status.")
	}
	muted, err := u.MuteService.IsMuted(ctx, uid, authorID)
	if err != nil {
		return internalError(c, err, "Failed to fetch author status.")
	}

	response.Success(c, types.FollowStatusResponse{Following: following, Muted: muted})
	return nil
}
