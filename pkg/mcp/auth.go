// Package mcp provides an MCP server exposing voice-call operations.
package mcp

import (
	"os"
	"sync"

	"github.com/kelmorin/bland-cli/pkg/bland"
)

// AuthState manages in-memory authentication state for the MCP server.
// This is separate from the CLI's disk-based session to support
// stateless MCP operation.
type AuthState struct {
	mu     sync.RWMutex
	token  string
	orgID  string
	apiURL string
	client *bland.Client
}

// NewAuthState creates a new authentication state manager.
func NewAuthState(apiURL string) *AuthState {
	state := &AuthState{
		apiURL: apiURL,
	}

	// Check for pre-configured credentials from environment
	state.token = os.Getenv("BLAND_API_KEY")
	state.orgID = os.Getenv("BLAND_ORG_ID")
	state.client = bland.New(apiURL,
		bland.WithToken(state.token),
		bland.WithOrgID(state.orgID),
	)

	return state
}

// IsAuthenticated returns true if there is an API key.
func (a *AuthState) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token != ""
}

// GetClient returns an API client with current authentication.
func (a *AuthState) GetClient() *bland.Client {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.client
}

// GetToken returns the current API key.
func (a *AuthState) GetToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// GetOrgID returns the configured organization ID, if any.
func (a *AuthState) GetOrgID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.orgID
}

// SetAuth updates the authentication state.
func (a *AuthState) SetAuth(token, orgID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
	a.orgID = orgID
	a.client = bland.New(a.apiURL,
		bland.WithToken(token),
		bland.WithOrgID(orgID),
	)
}

// Clear removes the authentication state.
func (a *AuthState) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = ""
	a.orgID = ""
	a.client = bland.New(a.apiURL)
}
