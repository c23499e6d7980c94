package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peoplekit/portal/internal/domain"
)

// RequireView returns a middleware that rejects requests whose role cannot
// access the feature at all.
func RequireView(checker domain.PermissionChecker, feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.CanView(GetRole(c), feature) {
			forbidden(c)
			return
		}
		c.Next()
	}
}

// RequireViewAll returns a middleware that rejects requests whose role is
// limited to its own records in the feature.
func RequireViewAll(checker domain.PermissionChecker, feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.CanViewAll(GetRole(c), feature) {
			forbidden(c)
			return
		}
		c.Next()
	}
}

func forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"code":    http.StatusForbidden,
		"message": "forbidden",
		"data":    nil,
	})
}
