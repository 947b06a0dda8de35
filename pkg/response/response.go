package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body of every error response and of the confirmation-only
// success responses.
type Message struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Message{Message: msg})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Message{Message: msg})
}
