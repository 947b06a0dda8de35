package server

import (
	"Scribe/handler"
	"Scribe/internal/module/user"
)

type Handlers struct {
	Blog           *handler.Blog
	Recommendation *handler.Recommendation
	UserAction     *handler.UserAction
	Notification   *handler.Notification
	User           *user.Handler
}
