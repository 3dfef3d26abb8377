package handlers

import (
	"net/http"
	"time"

	"employee-admin/internal/middleware"
	"employee-admin/internal/models"
	"employee-admin/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	gate   *session.Gate
	tokens *session.Tokens
	auth   *middleware.AuthMiddleware
	log    *zap.Logger
}

func NewAuthHandler(gate *session.Gate, tokens *session.Tokens, auth *middleware.AuthMiddleware, log *zap.Logger) *AuthHandler {
	return &AuthHandler{gate: gate, tokens: tokens, auth: auth, log: log}
}

// Login checks the admin credentials, opens the gate and returns a session token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	if !h.gate.CheckCredentials(input.Username, input.Password) {
		h.log.Info("login rejected", zap.String("username", input.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Credentials"})
		return
	}

	sessionID := h.gate.Login()
	token, err := h.tokens.Issue(sessionID)
	if err != nil {
		h.gate.Logout()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ttl := h.tokens.TTL()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl).UTC(),
	})
}

// Logout closes the gate; every token issued so far stops working
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.gate.Logout()
	h.log.Info("logged out",
		zap.String("username", c.GetString(middleware.ContextUsername)),
		zap.String("session_id", c.GetString(middleware.ContextSessionID)))
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GET /auth/status
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Authenticated: h.auth.Authenticated(c)})
}
