// Package response holds the JSON helpers shared by all handlers. Success
// bodies are the entity payloads themselves; every error body is the flat
// {"error": "<message>"} shape the dashboard expects.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 with the given payload.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 with the given payload.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response with the standard body shape.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// BadRequest sends a 400 bad request response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 not found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a generic 500; the detail stays in the logs.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Server error")
}
