package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Scribe/config"
	"Scribe/models"
	"Scribe/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-secret"

var errDown = errors.New("database is down")

type brokenNotifications struct{}

func (brokenNotifications) List(context.Context, int64, int, int) ([]models.Notification, error) {
	return nil, errDown
}
func (brokenNotifications) UnreadCount(context.Context, int64) (int64, error) { return 0, errDown }
func (brokenNotifications) MarkRead(context.Context, int64, int64) error { return errDown }
func (brokenNotifications) MarkAllRead(context.Context, int64) error { return errDown }

type brokenFollows struct{}

func (brokenFollows) Follow(context.Context, int64, int64) error { return errDown }
func (brokenFollows) Unfollow(context.Context, int64, int64) error { return errDown }
func (brokenFollows) IsFollowing(context.Context, int64, int64) (bool, error) {
	return false, errDown
}

type brokenMutes struct{}

func (brokenMutes) Mute(context.Context, int64, int64) error { return errDown }
func (brokenMutes) Unmute(context.Context, int64, int64) error { return errDown }
func (brokenMutes) IsMuted(context.Context, int64, int64) (bool, error) {
	return false, errDown
}

func TestStoreFailuresUseRouteMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	conf := &config.Config{Jwt: &config.Jwt{Secret: testSecret}}

	r := gin.New()
	api := r.Group("/api")
	(&UserAction{Config: conf, FollowService: brokenFollows{}, MuteService: brokenMutes{}}).RegisterRouter(api)
	(&Notification{Config: conf, NotificationService: brokenNotifications{}}).RegisterRouter(api)

	tok, err := jwt.GenerateToken([]byte(testSecret), 1, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		msg    string
	}{
		{http.MethodGet, "/api/v1/user-actions/status/2", "Failed to fetch author status."},
		{http.MethodGet, "/api/v1/user-actions/notifications", "Failed to fetch notifications."},
		{http.MethodGet, "/api/v1/user-actions/notifications/unread-count", "Failed to fetch unread count."},
		{http.MethodPut, "/api/v1/user-actions/notifications/5/read", "Failed to mark notification as read."},
		{http.MethodPut, "/api/v1/user-actions/notifications/read-all", "Failed to mark notifications as read."},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"message":"`+tt.msg+`"}`, w.Body.String())
		})
	}
}
