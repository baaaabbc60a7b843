package sysinfo

import "testing"

func TestGetShell(t *testing.T) {
	tests := []struct {
		name        string
		shell       string
		cmds        map[string]string
		wantName    string
		wantVersion string
	}{
		{
			name:        "bash",
			shell:       "/usr/bin/bash",
			cmds:        map[string]string{"/usr/bin/bash --version": "GNU bash, version 5.1.16(1)-release (x86_64-pc-linux-gnu)\n"},
			wantName:    "bash",
			wantVersion: "5.1.16",
		},
		{
			name:        "zsh",
			shell:       "/bin/zsh",
			cmds:        map[string]string{"/bin/zsh --version": "zsh 5.9 (arm64-apple-darwin23.0)\n"},
			wantName:    "zsh",
			wantVersion: "5.9",
		},
		{
			name:        "fish",
			shell:       "/usr/local/bin/fish",
			cmds:        map[string]string{"/usr/local/bin/fish --version": "fish, version 3.7.0\n"},
			wantName:    "fish",
			wantVersion: "3.7.0",
		},
		{
			name:     "unrecognised output",
			shell:    "/bin/bash",
			cmds:     map[string]string{"/bin/bash --version": "something odd\n"},
			wantName: "bash",
		},
		{
			name:     "version command missing",
			shell:    "/bin/zsh",
			wantName: "zsh",
		},
		{
			name:     "shell without version prefix",
			shell:    "/bin/dash",
			wantName: "dash",
		},
		{
			name:     "unset",
			wantName: Unknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, runner := newTestSource(t, fixture{
				cmds: tc.cmds,
				env:  map[string]string{"SHELL": tc.shell},
			})
			name, version := getShell(src)
			if name != tc.wantName || version != tc.wantVersion {
				t.Fatalf("getShell() = %q, %q; want %q, %q", name, version, tc.wantName, tc.wantVersion)
			}
			if tc.name == "shell without version prefix" && len(runner.calls) != 0 {
				t.Fatalf("unexpected commands: %v", runner.calls)
			}
		})
	}
}

func TestEnvFallbacks(t *testing.T) {
	src, _ := newTestSource(t, fixture{env: map[string]string{
		"LOGNAME":  "carol",
		"TERMINAL": "kitty",
		"TERM":     "xterm",
		"LC_ALL":   "de_DE.UTF-8",
	}})
	if got := getUsername(src); got != "carol" {
		t.Errorf("getUsername = %q; want carol", got)
	}
	if got := getTerminal(src); got != "kitty" {
		t.Errorf("getTerminal = %q; want kitty", got)
	}
	if got := getLocale(src); got != "de_DE.UTF-8" {
		t.Errorf("getLocale = %q; want de_DE.UTF-8", got)
	}
}
