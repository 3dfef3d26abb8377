// Package session holds the admin login gate. There is one fixed admin
// account and one session at a time; nothing survives a restart.
package session

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminUsername = "admin"
	adminPassword = "admin"
)

// Gate is the two-state authenticated flag. Each Login starts a new session
// id so tokens from an earlier session stop verifying after Logout.
type Gate struct {
	mu            sync.RWMutex
	authenticated bool
	sessionID     string
	passwordHash  []byte
}

func NewGate() (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{passwordHash: hash}, nil
}

// CheckCredentials reports whether username and password are the admin
// literals. Exact, case-sensitive; does not touch the session state.
func (g *Gate) CheckCredentials(username, password string) bool {
	if username != AdminUsername {
		return false
	}
	return bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil
}

// Login marks the gate authenticated and returns the new session id.
func (g *Gate) Login() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = true
	g.sessionID = uuid.New().String()
	return g.sessionID
}

func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = false
	g.sessionID = ""
}

func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authenticated
}

// Current reports whether sessionID is the live session.
func (g *Gate) Current(sessionID string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authenticated && sessionID != "" && sessionID == g.sessionID
}
