package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediasearch-srv/pkg/discord"
	"mediasearch-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPErrors keep their status code and
// message; anything else becomes a 500 and is reported to Discord when a
// webhook is configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*errors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Internal error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	if notifier != nil {
		_ = notifier.SendError(context.Background(), "Panic recovered",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
