package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"employee-admin/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireSession_SetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate, err := session.NewGate()
	require.NoError(t, err)
	tokens := session.NewTokens("test-secret", time.Hour)
	am := NewAuthMiddleware(gate, tokens)

	var gotSession, gotUser string
	r := gin.New()
	r.GET("/who", am.RequireSession(), func(c *gin.Context) {
		gotSession = c.GetString(ContextSessionID)
		gotUser = c.GetString(ContextUsername)
		c.Status(http.StatusNoContent)
	})

	sid := gate.Login()
	token, err := tokens.Issue(sid)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, sid, gotSession)
	assert.Equal(t, session.AdminUsername, gotUser)
}

func TestRequireSession_Rejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gate, err := session.NewGate()
	require.NoError(t, err)
	tokens := session.NewTokens("test-secret", time.Hour)
	am := NewAuthMiddleware(gate, tokens)

	r := gin.New()
	r.GET("/who", am.RequireSession(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Contains(t, call("").Body.String(), "Not logged in")

	stale, err := tokens.Issue(gate.Login())
	require.NoError(t, err)
	gate.Login()
	assert.Contains(t, call("").Body.String(), "Session token required")
	assert.Contains(t, call("nope").Body.String(), "Invalid token")
	w := call(stale)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session ended")
}
