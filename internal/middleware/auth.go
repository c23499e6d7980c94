package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

const (
	// ContextUserIDKey is the gin context key holding the authenticated
	// user's id.
	ContextUserIDKey = "user_id"
	// ContextRoleKey is the gin context key holding the authenticated
	// user's role.
	ContextRoleKey = "role"
)

// Auth returns a middleware that requires a valid Bearer token on every
// request except the listed public paths. On success the user id and role
// are stored on the context for handlers and downstream middleware.
func Auth(jwtSvc jwt.Service, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(c *gin.Context) {
		if public[c.Request.URL.Path] {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c, "missing or malformed authorization header")
			return
		}

		parsed, err := jwtSvc.ValidateAndParse(token)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, parsed.UserID)
		if len(parsed.Roles) > 0 {
			c.Set(ContextRoleKey, parsed.Roles[0])
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": msg,
		"data":    nil,
	})
}

// GetUserID returns the authenticated user's numeric id from the context.
// It returns 0 when the request is unauthenticated or the id is not
// numeric.
func GetUserID(c *gin.Context) uint {
	raw, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0
	}
	s, ok := raw.(string)
	if !ok {
		return 0
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// GetRole returns the authenticated user's role from the context, or the
// empty string.
func GetRole(c *gin.Context) string {
	raw, ok := c.Get(ContextRoleKey)
	if !ok {
		return ""
	}
	role, _ := raw.(string)
	return role
}
