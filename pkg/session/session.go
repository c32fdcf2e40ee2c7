// Package session manages API credential storage.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	globalSess    *Session
	sessionPath   string
	lastConfigDir string
)

// Session holds the stored API credentials.
type Session struct {
	Token     string    `json:"token"`
	OrgID     string    `json:"org_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func getSessionDir() (string, error) {
	// Check if BLAND_CONFIG_DIR is set
	if configDir := os.Getenv("BLAND_CONFIG_DIR"); configDir != "" {
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return "", fmt.Errorf("create config directory: %w", err)
		}
		return configDir, nil
	}

	// Fall back to ~/.bland
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}

	blandDir := filepath.Join(homeDir, ".bland")
	if err := os.MkdirAll(blandDir, 0700); err != nil {
		return "", fmt.Errorf("create .bland directory: %w", err)
	}

	return blandDir, nil
}

// Load reads the session from disk. BLAND_API_KEY and BLAND_ORG_ID take
// precedence over the stored file.
func Load() (*Session, error) {
	mu.Lock()
	defer mu.Unlock()

	if token := os.Getenv("BLAND_API_KEY"); token != "" {
		return &Session{
			Token: token,
			OrgID: os.Getenv("BLAND_ORG_ID"),
		}, nil
	}

	blandDir, err := getSessionDir()
	if err != nil {
		return nil, err
	}

	// Clear cached session if config directory changed
	if lastConfigDir != "" && lastConfigDir != blandDir {
		globalSess = nil
	}
	lastConfigDir = blandDir

	if globalSess != nil {
		return globalSess, nil
	}

	sessionPath = filepath.Join(blandDir, "session.json")

	if _, err := os.Stat(sessionPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no stored credentials; run 'bland auth login' or set BLAND_API_KEY")
	}

	data, err := os.ReadFile(sessionPath)
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	if isEncrypted(data) {
		passphrase := os.Getenv("BLAND_SESSION_PASSPHRASE")
		if passphrase == "" {
			return nil, fmt.Errorf("session file is encrypted; set BLAND_SESSION_PASSPHRASE")
		}
		data, err = decrypt(data, passphrase)
		if err != nil {
			return nil, fmt.Errorf("decrypt session: %w", err)
		}
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}

	globalSess = &sess
	return globalSess, nil
}

// Save persists the session to disk. When BLAND_SESSION_PASSPHRASE is
// set the file is encrypted at rest.
func Save(sess *Session) error {
	mu.Lock()
	defer mu.Unlock()

	blandDir, err := getSessionDir()
	if err != nil {
		return err
	}

	sessionPath = filepath.Join(blandDir, "session.json")

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if passphrase := os.Getenv("BLAND_SESSION_PASSPHRASE"); passphrase != "" {
		data, err = encrypt(data, passphrase)
		if err != nil {
			return fmt.Errorf("encrypt session: %w", err)
		}
	}

	if err := os.WriteFile(sessionPath, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	globalSess = sess
	return nil
}

// Clear removes the session from disk and memory.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	blandDir, err := getSessionDir()
	if err != nil {
		return err
	}

	sessionPath = filepath.Join(blandDir, "session.json")

	if _, err := os.Stat(sessionPath); err == nil {
		if err := os.Remove(sessionPath); err != nil {
			return fmt.Errorf("remove session file: %w", err)
		}
	}

	globalSess = nil
	return nil
}

// IsAuthenticated checks if credentials are available.
func IsAuthenticated() bool {
	if os.Getenv("BLAND_API_KEY") != "" {
		return true
	}

	mu.RLock()
	defer mu.RUnlock()

	return globalSess != nil && globalSess.Token != ""
}

// GetToken returns the current API key, or empty string if not authenticated.
func GetToken() string {
	if token := os.Getenv("BLAND_API_KEY"); token != "" {
		return token
	}

	mu.RLock()
	defer mu.RUnlock()

	if globalSess == nil {
		return ""
	}

	return globalSess.Token
}

// GetOrgID returns the stored organization ID, or empty string.
func GetOrgID() string {
	if orgID := os.Getenv("BLAND_ORG_ID"); orgID != "" {
		return orgID
	}

	mu.RLock()
	defer mu.RUnlock()

	if globalSess == nil {
		return ""
	}

	return globalSess.OrgID
}
