// Package sysinfo - Access to files, commands, environment and sockets
package sysinfo

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Runner executes an external command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec. Standard output is capped at
// maxReadBytes; standard error is discarded.
type ExecRunner struct{}

// Output runs name with args and returns what it wrote to stdout, together
// with the error from cmd.Run (an *exec.ExitError for a non-zero status).
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out := &boundedBuffer{limit: maxReadBytes}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = out
	err := cmd.Run()
	return out.Bytes(), err
}

// boundedBuffer keeps the first limit bytes written to it and silently drops
// the rest so the writing process is never blocked or broken. It must not
// implement io.ReaderFrom, or io.Copy would bypass the limit.
type boundedBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *boundedBuffer) Bytes() []byte  { return b.buf.Bytes() }
func (b *boundedBuffer) String() string { return b.buf.String() }

// Uname is the subset of uname(2) used for host identity.
type Uname struct {
	Nodename string
	Release  string
	Machine  string
}

// Source bundles everything the probes read from. Production code uses
// NewSource; tests replace individual fields.
type Source struct {
	// Root is prepended to every file path; empty means the real filesystem.
	Root string

	Runner Runner
	Getenv func(string) string
	Uname  func() (Uname, error)
	Dial   func(network, address string) (net.Conn, error)
	Now    func() time.Time
	Log    *zap.Logger
}

// NewSource returns a Source backed by the running host.
func NewSource(log *zap.Logger) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{
		Runner: ExecRunner{},
		Getenv: os.Getenv,
		Uname:  platformUname,
		Dial:   net.Dial,
		Now:    time.Now,
		Log:    log,
	}
}

func (s *Source) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// degraded records that a field fell back to its sentinel.
func (s *Source) degraded(field string, err error) {
	s.logger().Debug("field unavailable, using default",
		zap.String("field", field), zap.Error(err))
}

// readFile reads at most maxReadBytes of path.
func (s *Source) readFile(path string) (string, error) {
	f, err := os.Open(filepath.Join(s.Root, path))
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxReadBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// scanLines calls fn for every line of path. The maxReadBytes bound applies
// to each line, so long files are read to the end.
func (s *Source) scanLines(path string, fn func(line string)) error {
	f, err := os.Open(filepath.Join(s.Root, path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), maxReadBytes)
	for sc.Scan() {
		fn(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	return nil
}

// run executes a command without a deadline. A non-zero exit status is not
// an error: whatever the tool printed is returned for best-effort parsing.
func (s *Source) run(name string, args ...string) (string, error) {
	return s.runContext(context.Background(), name, args...)
}

func (s *Source) runContext(ctx context.Context, name string, args ...string) (string, error) {
	if s.Runner == nil {
		return "", errors.New("no command runner")
	}
	out, err := s.Runner.Output(ctx, name, args...)
	if ctx.Err() != nil {
		return "", fmt.Errorf("%s: %w", name, ctx.Err())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		s.logger().Debug("command exited with non-zero status",
			zap.String("command", name), zap.Int("status", exitErr.ExitCode()))
	}
	return string(out), nil
}

// env returns the first non-empty value among keys.
func (s *Source) env(keys ...string) string {
	if s.Getenv == nil {
		return ""
	}
	for _, k := range keys {
		if v := s.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func (s *Source) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Source) uname() (Uname, error) {
	if s.Uname == nil {
		return Uname{}, errors.New("uname unavailable")
	}
	return s.Uname()
}

// hostIdentity fills hostname, kernel release and architecture from uname.
func (s *Source) hostIdentity(info *SystemInfo) {
	u, err := s.uname()
	if err != nil {
		s.degraded("host identity", err)
		return
	}
	info.Hostname = orDefault(u.Nodename, Unknown)
	info.Kernel = orDefault(u.Release, Unknown)
	info.Arch = orDefault(u.Machine, Unknown)
}

// hostname returns the uname node name or the Unknown sentinel.
func (s *Source) hostname() string {
	u, err := s.uname()
	if err != nil {
		s.degraded("hostname", err)
		return Unknown
	}
	return orDefault(u.Nodename, Unknown)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
