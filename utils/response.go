package utils

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hotel-admin/client"
)

// JSONSuccess writes the standard envelope around a payload.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "messages": []string{}, "data": data})
}

// JSONError writes a failure envelope carrying one or more messages.
func JSONError(c *gin.Context, code int, messages ...string) {
	if len(messages) == 0 {
		messages = []string{"request failed"}
	}
	c.JSON(code, gin.H{"success": false, "messages": messages})
}

// ErrorMessages extracts the message list to show the user. Backend failures
// keep the backend's own wording; everything else becomes a single message.
func ErrorMessages(err error) []string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Messages) == 0 {
			return []string{apiErr.Error()}
		}
		return apiErr.Messages
	}
	return []string{err.Error()}
}
