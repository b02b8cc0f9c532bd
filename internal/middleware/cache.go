package middleware

import "github.com/gin-gonic/gin"

// NoStore marks responses as uncacheable. Proxied responses carry session
// data and must never be stored by the browser or an intermediary.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
