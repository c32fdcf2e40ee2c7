package session

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("BLAND_CONFIG_DIR", t.TempDir())
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_SESSION_PASSPHRASE", "")

	in := &Session{Token: "sk-test", OrgID: "org-1", CreatedAt: time.Now().UTC()}
	if err := Save(in); err != nil {
		t.Fatal(err)
	}

	globalSess = nil
	out, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if out.Token != "sk-test" || out.OrgID != "org-1" {
		t.Errorf("got %+v", out)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("BLAND_CONFIG_DIR", t.TempDir())
	t.Setenv("BLAND_API_KEY", "sk-env")
	t.Setenv("BLAND_ORG_ID", "org-env")

	sess, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if sess.Token != "sk-env" || sess.OrgID != "org-env" {
		t.Errorf("got %+v", sess)
	}
	if GetToken() != "sk-env" {
		t.Errorf("GetToken() = %q", GetToken())
	}
}

func TestLoadWithoutCredentials(t *testing.T) {
	t.Setenv("BLAND_CONFIG_DIR", t.TempDir())
	t.Setenv("BLAND_API_KEY", "")

	globalSess = nil
	if _, err := Load(); err == nil {
		t.Fatal("expected error with no stored session")
	}
}

func TestEncryptedSession(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BLAND_CONFIG_DIR", dir)
	t.Setenv("BLAND_API_KEY", "")
	t.Setenv("BLAND_SESSION_PASSPHRASE", "hunter2")

	in := &Session{Token: "sk-secret", CreatedAt: time.Now().UTC()}
	if err := Save(in); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "session.json"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(raw, []byte("sk-secret")) {
		t.Fatal("token stored in plaintext")
	}
	if !isEncrypted(raw) {
		t.Fatal("file not recognized as encrypted")
	}

	t.Run("round trip", func(t *testing.T) {
		globalSess = nil
		out, err := Load()
		if err != nil {
			t.Fatal(err)
		}
		if out.Token != "sk-secret" {
			t.Errorf("Token = %q", out.Token)
		}
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		t.Setenv("BLAND_SESSION_PASSPHRASE", "letmein")
		globalSess = nil
		if _, err := Load(); err == nil {
			t.Fatal("expected error with wrong passphrase")
		}
	})

	t.Run("missing passphrase", func(t *testing.T) {
		t.Setenv("BLAND_SESSION_PASSPHRASE", "")
		globalSess = nil
		if _, err := Load(); err == nil {
			t.Fatal("expected error with missing passphrase")
		}
	})
}
