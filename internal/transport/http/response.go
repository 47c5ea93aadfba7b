package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the JSON envelope for every API reply.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// respondError maps err to a status code and writes the envelope. Unexpected
// errors are logged with the request id and reported without detail.
func respondError(c *gin.Context, err error) {
	status, message := mapDomainErrorToHTTP(err)
	if status >= 500 {
		loggerFrom(c).Error("request failed", zap.Error(err))
		c.AbortWithStatusJSON(status, Response{Success: false, Message: message})
		return
	}
	c.AbortWithStatusJSON(status, Response{Success: false, Message: message, Error: err.Error()})
}

func respondBadRequest(c *gin.Context, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}
