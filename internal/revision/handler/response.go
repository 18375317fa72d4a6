package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorResponse(c *gin.Context, code, message string, status int) {
	c.JSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, "NOT_FOUND", message, http.StatusNotFound)
}
