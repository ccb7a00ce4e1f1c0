package handlers

import "github.com/gin-gonic/gin"

// ok writes a success envelope with the given extra fields.
func ok(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail writes a failure envelope with a human-readable message.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// failWithError writes a failure envelope carrying diagnostic detail,
// for server-side faults.
func failWithError(c *gin.Context, status int, message string, err error) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
