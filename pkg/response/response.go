package response

import "github.com/gin-gonic/gin"

type APIError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

type DataEnvelope struct {
	Data interface{} `json:"data"`
}

func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, DataEnvelope{Data: data})
}

func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{Code: code, Message: message}})
}
