package sysinfo

import (
	"context"
	"errors"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeResult struct {
	out string
	err error
}

// fakeRunner answers commands by their full command line.
type fakeRunner struct {
	results map[string]fakeResult
	calls   []string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	r, ok := f.results[line]
	if !ok {
		return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return []byte(r.out), r.err
}

type fixture struct {
	files map[string]string
	cmds  map[string]string
	env   map[string]string
	uname *Uname
	now   time.Time
}

func newTestSource(t *testing.T, fx fixture) (*Source, *fakeRunner) {
	t.Helper()
	root := t.TempDir()
	for p, content := range fx.files {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	runner := &fakeRunner{results: map[string]fakeResult{}}
	for line, out := range fx.cmds {
		runner.results[line] = fakeResult{out: out}
	}

	src := &Source{
		Root:   root,
		Runner: runner,
		Getenv: func(k string) string { return fx.env[k] },
		Uname: func() (Uname, error) {
			if fx.uname == nil {
				return Uname{}, errors.New("uname failed")
			}
			return *fx.uname, nil
		},
		Dial: func(string, string) (net.Conn, error) {
			return nil, errors.New("network unreachable")
		},
		Now: func() time.Time { return fx.now },
	}
	return src, runner
}
