// Package context manages the 'this' keyword resolution for CLI commands.
package context

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// ContextTTL is the time-to-live for context entries (1 hour)
	ContextTTL = time.Hour
)

var (
	mu          sync.RWMutex
	globalCtx   *Context
	contextPath string
)

// Context remembers the most recently touched resource so follow-up
// commands can say "this" instead of repeating the ID.
type Context struct {
	LastID    string    `json:"last_id"`
	LastType  string    `json:"last_type"` // "call", "batch", "pathway", etc.
	UpdatedAt time.Time `json:"updated_at"`
}

func contextDir() (string, error) {
	if dir := os.Getenv("BLAND_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".bland"), nil
}

// Load reads the context from disk.
func Load() (*Context, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalCtx != nil {
		// Check if context has expired
		if time.Since(globalCtx.UpdatedAt) > ContextTTL {
			globalCtx = nil
		} else {
			return globalCtx, nil
		}
	}

	dir, err := contextDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	contextPath = filepath.Join(dir, "context.json")

	if _, err := os.Stat(contextPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no context available")
	}

	data, err := os.ReadFile(contextPath)
	if err != nil {
		return nil, fmt.Errorf("read context file: %w", err)
	}

	var ctx Context
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("parse context: %w", err)
	}

	// Check if context has expired
	if time.Since(ctx.UpdatedAt) > ContextTTL {
		return nil, fmt.Errorf("context expired")
	}

	globalCtx = &ctx
	return globalCtx, nil
}

// Save persists the context to disk.
func Save(ctx *Context) error {
	mu.Lock()
	defer mu.Unlock()

	dir, err := contextDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	contextPath = filepath.Join(dir, "context.json")

	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}

	if err := os.WriteFile(contextPath, data, 0600); err != nil {
		return fmt.Errorf("write context file: %w", err)
	}

	globalCtx = ctx
	return nil
}

// Clear removes the context from disk and memory.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	dir, err := contextDir()
	if err != nil {
		return err
	}

	contextPath = filepath.Join(dir, "context.json")

	if _, err := os.Stat(contextPath); err == nil {
		if err := os.Remove(contextPath); err != nil {
			return fmt.Errorf("remove context file: %w", err)
		}
	}

	globalCtx = nil
	return nil
}

// Set sets the current context to an object.
func Set(id, typ string) error {
	ctx := &Context{
		LastID:    id,
		LastType:  typ,
		UpdatedAt: time.Now(),
	}
	return Save(ctx)
}

// Get returns the current context ID and type.
func Get() (string, string, error) {
	ctx, err := Load()
	if err != nil {
		return "", "", err
	}
	return ctx.LastID, ctx.LastType, nil
}

// GetID returns just the current context ID.
func GetID() (string, error) {
	id, _, err := Get()
	return id, err
}

// ResolveTarget resolves a target string that may be "this", requiring
// the remembered resource to have the given type.
func ResolveTarget(target, wantType string) (string, bool, error) {
	if target != "this" {
		return target, false, nil
	}
	id, typ, err := Get()
	if err != nil {
		return "", false, fmt.Errorf("no context available: use an explicit ID")
	}
	if wantType != "" && typ != wantType {
		return "", false, fmt.Errorf("current context is a %s, not a %s", typ, wantType)
	}
	return id, true, nil
}
