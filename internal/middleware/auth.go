package middleware

import (
	"net/http"
	"strings"

	"employee-admin/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie the login handler stores the token in.
const SessionCookie = "empadmin_session"

// Context keys set by RequireSession.
const (
	ContextSessionID = "session_id"
	ContextUsername  = "username"
)

type AuthMiddleware struct {
	gate   *session.Gate
	tokens *session.Tokens
}

func NewAuthMiddleware(gate *session.Gate, tokens *session.Tokens) *AuthMiddleware {
	return &AuthMiddleware{gate: gate, tokens: tokens}
}

// TokenFromRequest reads the bearer header first, then the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// RequireSession admits the request only while the gate is open and the
// token belongs to the current session.
func (am *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !am.gate.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			c.Abort()
			return
		}

		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
			c.Abort()
			return
		}

		claims, err := am.tokens.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		if !am.gate.Current(claims.SessionID) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session ended"})
			c.Abort()
			return
		}

		c.Set(ContextSessionID, claims.SessionID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// Authenticated reports whether the request carries a token for the live session.
func (am *AuthMiddleware) Authenticated(c *gin.Context) bool {
	tokenString := TokenFromRequest(c)
	if tokenString == "" {
		return false
	}
	claims, err := am.tokens.Parse(tokenString)
	if err != nil {
		return false
	}
	return am.gate.Current(claims.SessionID)
}
