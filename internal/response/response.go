package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope wraps every body the console writes itself. Proxied backend
// bodies are relayed as-is and never pass through here.
type Envelope struct {
	Data      interface{} `json:"data"`
	Error     *ErrorBody  `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorBody identifies a failure by code and its fixed message.
type ErrorBody struct {
	Code    ErrCode `json:"code"`
	Message string  `json:"message"`
}

// Success writes data with the given status.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, envelope(c, data, ""))
}

// Fail writes an error with no payload.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, envelope(c, nil, code))
}

// FailWithData writes an error alongside a payload describing it.
func FailWithData(c *gin.Context, statusCode int, code ErrCode, data interface{}) {
	c.JSON(statusCode, envelope(c, data, code))
}

// AbortFail stops the middleware chain with an error.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, envelope(c, nil, code))
}

func envelope(c *gin.Context, data interface{}, code ErrCode) Envelope {
	env := Envelope{
		Data:      data,
		RequestID: RequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if code != "" {
		env.Error = &ErrorBody{Code: code, Message: GetMessage(code)}
	}
	return env
}
