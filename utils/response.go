// File: /utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// SendError writes the flat error body every failure path uses.
func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// AbortWithError is SendError for middleware, stopping the handler chain.
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
