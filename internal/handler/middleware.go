package handler

import (
	"github.com/gin-gonic/gin"
)

// HTTPObserver counts served HTTP requests
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int)
}

// CountRequests is a middleware that reports every request to o, labelled by route pattern
func CountRequests(o HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		o.ObserveHTTP(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
