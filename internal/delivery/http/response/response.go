package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API reply
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func write(c *gin.Context, code int, body Response) {
	// Set by the RequestID middleware; absent in bare test routers
	body.RequestID = c.GetString("RequestID")
	c.JSON(code, body)
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	write(c, code, Response{Success: true, Message: message, Data: data})
}

// Error sends an error response. err carries field messages, never internals.
func Error(c *gin.Context, code int, message string, err interface{}) {
	write(c, code, Response{Message: message, Error: err})
}

// ErrorWithData sends an error response that still carries a payload, for
// operations that committed part of their work before failing.
func ErrorWithData(c *gin.Context, code int, message string, data interface{}, err interface{}) {
	write(c, code, Response{Message: message, Data: data, Error: err})
}
