package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kirubha-07/elix-career-advisor/internal/auth"
	"github.com/kirubha-07/elix-career-advisor/internal/common"
)

const UsernameKey = "username"

// AuthRequired accepts "Authorization: Bearer <jwt>" and stores the token
// subject under UsernameKey.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(h, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			common.AbortFail(c, http.StatusUnauthorized, 40100, "missing bearer token")
			return
		}

		username, err := auth.ParseJWT(token, secret)
		if err != nil {
			common.AbortFail(c, http.StatusUnauthorized, 40101, "invalid token")
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
