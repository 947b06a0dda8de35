package handler

import (
	"errors"
	"net/http"

	"Scribe/config"
	"Scribe/middleware"
	"Scribe/models"
	"Scribe/pkg/context"
	"Scribe/pkg/response"
	"Scribe/service"
	"Scribe/types"

	"github.com/gin-gonic/gin"
)

var recommendationMessages = map[string]string{
	models.ActionIncrease: "Got it, we'll recommend more stories like this!",
	models.ActionDecrease: "Got it, we'll recommend fewer like this. You can additionally take any of the actions below.",
}

type Recommendation struct {
	Config                *config.Config
	RecommendationService service.IRecommendationService
}

func (h *Recommendation) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("/recommendations", authorize, context.Wrap(h.Recommend))
}

func (h *Recommendation) Recommend(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}

	var req types.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == "" || req.BlogID == 0 {
		return response.NewError(http.StatusBadRequest, "Missing required fields: action or blogId.")
	}

	err = h.RecommendationService.Apply(c.Request.Context(), uid, req.BlogID, req.Action)
	switch {
	case errors.Is(err, service.ErrInvalidAction):
		return response.NewError(http.StatusBadRequest, "Invalid action type.")
	case errors.Is(err, service.ErrBlogNotFound):
		return response.NewError(http.StatusNotFound, "Blog not found.")
	case err != nil:
		return internalError(c, err, "Something went wrong while processing your recommendation.")
	}

	response.OK(c, recommendationMessages[req.Action])
	return nil
}
