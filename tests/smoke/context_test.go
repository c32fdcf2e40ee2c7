// Package smoke provides smoke tests for CLI context resolution
package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestThisContextResolution checks that mutating commands record their
// target and that "this" resolves against the right type.
func TestThisContextResolution(t *testing.T) {
	bin := getCLIBinary(t)

	stub := newAPIStub(t, map[string]any{
		"POST /v1/calls/batch": map[string]any{
			"status": "success", "batch_id": "batch-ctx-1",
		},
		"GET /v1/calls/batch/batch-ctx-1": map[string]any{
			"status": "success", "batch_id": "batch-ctx-1", "total_calls": 2,
		},
	})

	configDir := t.TempDir()
	env := map[string]string{
		"BLAND_API_KEY": "sk-smoke",
		"BLAND_API_URL": stub.URL,
	}

	run := func(args ...string) (string, string, error) {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		cmd := exec.CommandContext(ctx, bin, args...)
		cmd.Env = append(os.Environ(), "BLAND_CONFIG_DIR="+configDir)
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err := cmd.Run()
		return stdout.String(), stderr.String(), err
	}

	// Sending a batch records it as the current context.
	if _, stderr, err := run("batch", "send", "+12025550101", "+12025550102", "--task", "announce"); err != nil {
		t.Fatalf("batch send failed: %v\nstderr: %s", err, stderr)
	}

	ctxFile := filepath.Join(configDir, "context.json")
	data, err := os.ReadFile(ctxFile)
	if err != nil {
		t.Fatalf("context file not written: %v", err)
	}
	var saved struct {
		LastID   string `json:"last_id"`
		LastType string `json:"last_type"`
	}
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("context file is not valid JSON: %v", err)
	}
	if saved.LastID != "batch-ctx-1" || saved.LastType != "batch" {
		t.Errorf("context = %+v, want batch-ctx-1/batch", saved)
	}

	// "this" resolves for the matching type.
	stdout, stderr, err := run("batch", "get", "this")
	if err != nil {
		t.Fatalf("batch get this failed: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "batch-ctx-1") {
		t.Errorf("'this' should resolve to the batch:\n%s", stdout)
	}

	// ...and refuses a mismatched type.
	_, stderr, err = run("call", "get", "this")
	if err == nil {
		t.Error("expected non-zero exit for type-mismatched 'this'")
	}
	if !strings.Contains(stderr, "batch") {
		t.Errorf("expected type mismatch message, got:\n%s", stderr)
	}
}
