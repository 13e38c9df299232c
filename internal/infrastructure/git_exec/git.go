package git_exec

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultTimeout = 3 * time.Second

// Git answers local repository questions by running the git binary.
// Any failure is reported as "no answer".
type Git struct {
	log     *zap.Logger
	binary  string
	dir     string
	timeout time.Duration
}

func New(log *zap.Logger, binary, dir string, timeout time.Duration) *Git {
	if log == nil {
		log = zap.NewNop()
	}
	if binary == "" {
		binary = "git"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Git{log: log, binary: binary, dir: dir, timeout: timeout}
}

func (g *Git) OriginURL(ctx context.Context) (string, bool) {
	return g.output(ctx, "config", "--get", "remote.origin.url")
}

// CurrentBranch is empty on a detached HEAD.
func (g *Git) CurrentBranch(ctx context.Context) (string, bool) {
	b, ok := g.output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if !ok || b == "HEAD" {
		return "", false
	}
	return b, true
}

func (g *Git) output(ctx context.Context, args ...string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, g.binary, args...)
	cmd.Dir = g.dir
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		g.log.Debug("git query gave no answer",
			zap.Strings("args", args),
			zap.String("dir", g.dir),
			zap.Error(err),
		)
		return "", false
	}

	out := strings.TrimSpace(stdout.String())
	return out, out != ""
}
