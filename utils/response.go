package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StandardResponse represents the standard API response structure
type StandardResponse struct {
	Status  string      `json:"status"`
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a standardized success response
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, StandardResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Created sends a standardized created response (201)
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, StandardResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response
func Error(c *gin.Context, statusCode int, kind, message string) {
	c.JSON(statusCode, StandardResponse{
		Status:  "error",
		Kind:    kind,
		Message: message,
	})
}

// RespondError converts err into the error envelope. Anything that is not
// an AppError is treated as internal.
func RespondError(c *gin.Context, err error) {
	appErr := GetAppError(err)
	if appErr == nil {
		appErr = InternalError("Server error", err)
	}
	if appErr.Kind == KindInternal {
		LogError("%s %s failed: %v", c.Request.Method, c.FullPath(), appErr)
		Error(c, appErr.Code, appErr.Kind, "Server error")
		return
	}
	Error(c, appErr.Code, appErr.Kind, appErr.Message)
}

// AbortWithError writes the error envelope and stops the handler chain
func AbortWithError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}
