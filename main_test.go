package main

import (
	"bytes"
	"strings"
	"testing"

	"sysfetch/config"
)

func TestRootCmdRejectsUnknownFlag(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--bogus"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown flag") {
		t.Fatalf("Execute error = %v; want unknown flag", err)
	}
}

func TestRootCmdRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute accepted a positional argument")
	}
}

func TestRootCmdVersion(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Fatalf("version output = %q", out.String())
	}
}

func TestDisplayConfigFlagsOverrideFile(t *testing.T) {
	cfg := config.Default()
	cfg.Display.Compact = true

	d := displayConfig(cfg, &options{noLogo: true, noNetwork: true})
	if d.Logo || d.Network || !d.Compact {
		t.Fatalf("displayConfig = %+v", d)
	}

	d = displayConfig(config.Default(), &options{compact: true})
	if !d.Logo || !d.Network || !d.Compact {
		t.Fatalf("displayConfig = %+v", d)
	}
}

func TestDisplayConfigNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if d := displayConfig(config.Default(), &options{}); d.Color {
		t.Fatal("NO_COLOR did not disable color")
	}
}
