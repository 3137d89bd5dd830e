// SPDX-License-Identifier: MIT

package server

import "github.com/gin-gonic/gin"

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// Error messages.
const (
	msgInvalidRequest = "invalid request"
	msgNotFound       = "not found"
	msgDetectFailed   = "detection failed"
	msgInternal       = "internal server error"
	msgNoHistory      = "run history is disabled"
)

// respondError writes an ErrorResponse and aborts the chain.
func respondError(c *gin.Context, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg, Code: status}
	if err != nil {
		resp.Message = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
