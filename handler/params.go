package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"Scribe/pkg/context"
	"Scribe/pkg/log"
	"Scribe/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errBadID = errors.New("invalid id")

// paramID reads a positive integer path parameter.
func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// blank reports whether any value is empty after trimming whitespace.
func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// currentUser returns the id set by middleware.Auth.
func currentUser(c *gin.Context) (int64, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return 0, response.NewError(http.StatusForbidden, "Authorization header missing or invalid")
	}
	return uid, nil
}

// internalError logs err and hides it behind a fixed 500 message.
func internalError(c *gin.Context, err error, msg string) error {
	log.L.Error(msg,
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(context.CtxRequestID)),
	)
	return response.NewError(http.StatusInternalServerError, msg)
}
