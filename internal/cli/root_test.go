package cli

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	want := []string{"login", "logout", "deposition", "files", "actions", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	for _, name := range []string{"token", "sandbox", "verbose"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command is missing persistent flag --%s", name)
		}
	}
}

func TestVerboseFlagRaisesLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	c.verbose = true
	root.SetContext(context.Background())
	if err := root.PersistentPreRunE(root, nil); err != nil {
		t.Fatalf("PersistentPreRunE failed: %v", err)
	}

	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("log level = %v, want debug", c.Logger.GetLevel())
	}
}
