package fakemarket

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends the marketplace's standard success envelope. The remote
// client on the other side of the wire decodes exactly this shape.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends the marketplace's standard error envelope
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
