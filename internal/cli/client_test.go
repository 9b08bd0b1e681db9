package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/silebat/zenodo-go/pkg/errors"
	"github.com/silebat/zenodo-go/pkg/zenodo"
)

// isolateConfig points the session and config lookups at empty directories.
func isolateConfig(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
}

func TestNewClientRequiresToken(t *testing.T) {
	isolateConfig(t)

	c := New(io.Discard, log.InfoLevel)
	_, err := c.newClient()
	if err == nil {
		t.Fatal("expected an error without any token source")
	}
	if !errors.Is(err, errors.ErrCodeInvalidToken) {
		t.Errorf("error code = %q, want %s", errors.GetCode(err), errors.ErrCodeInvalidToken)
	}
}

func TestNewClientUsesFlagToken(t *testing.T) {
	isolateConfig(t)

	c := New(io.Discard, log.InfoLevel)
	c.token = "flag-token"

	client, err := c.newClient()
	if err != nil {
		t.Fatalf("newClient failed: %v", err)
	}
	if client.BaseURL() != zenodo.ProductionBaseURL {
		t.Errorf("base URL = %q, want production", client.BaseURL())
	}
}

func TestNewClientSandboxFlag(t *testing.T) {
	isolateConfig(t)

	c := New(io.Discard, log.InfoLevel)
	c.token = "flag-token"
	c.sandbox = true

	client, err := c.newClient()
	if err != nil {
		t.Fatalf("newClient failed: %v", err)
	}
	if client.BaseURL() != zenodo.SandboxBaseURL {
		t.Errorf("base URL = %q, want sandbox", client.BaseURL())
	}
}
