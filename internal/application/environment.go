package application

import (
	"context"
	"regexp"
	"strconv"

	"github.com/davarch/ci-env/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	EnvPullRequest   = "PERCY_PULL_REQUEST"
	EnvBranch        = "PERCY_BRANCH"
	EnvRepoSlug      = "PERCY_REPO_SLUG"
	EnvParallelNonce = "PERCY_PARALLEL_NONCE"
	EnvParallelTotal = "PERCY_PARALLEL_TOTAL"

	DefaultBranch = "master"
)

var repoSlugRe = regexp.MustCompile(`^.*[:/]([^/]+/[^/]+?)(?:\.git)?$`)

// Environment resolves build facts. Every call reads env again; nothing is cached
// apart from the provider chosen at construction.
type Environment struct {
	log      *zap.Logger
	env      domain.Env
	vcs      domain.VCS
	provider domain.Provider

	localBranch bool
}

type Option func(*Environment)

// WithLocalBranch enables the local repository tier of Branch.
// Without it that tier never answers.
func WithLocalBranch() Option {
	return func(e *Environment) { e.localBranch = true }
}

func NewEnvironment(env domain.Env, detect domain.DetectFunc, vcs domain.VCS, log *zap.Logger, opts ...Option) *Environment {
	if log == nil {
		log = zap.NewNop()
	}

	e := &Environment{log: log, env: env, vcs: vcs}
	if detect != nil {
		e.provider = detect(env)
	}
	for _, o := range opts {
		o(e)
	}

	if e.provider != nil {
		log.Debug("ci provider detected", zap.String("ci", string(e.provider.CurrentCI())))
	} else {
		log.Debug("no ci provider detected")
	}
	return e
}

func (e *Environment) CurrentCI() domain.CI {
	if e.provider == nil {
		return domain.None
	}
	return e.provider.CurrentCI()
}

func (e *Environment) PullRequestNumber() (string, bool) {
	if v, ok := e.override(EnvPullRequest); ok {
		return v, true
	}
	if e.provider != nil {
		if v, ok := e.provider.PullRequestNumber(); ok {
			e.answered("pull_request", "provider")
			return v, true
		}
	}
	return "", false
}

func (e *Environment) Branch(ctx context.Context) string {
	if v, ok := e.override(EnvBranch); ok {
		return v
	}
	if e.provider != nil {
		if v, ok := e.provider.Branch(); ok {
			e.answered("branch", "provider")
			return v
		}
	}
	if v, ok := e.localBranchName(ctx); ok {
		e.answered("branch", "vcs")
		return v
	}
	e.log.Debug("branch unknown, using default", zap.String("branch", DefaultBranch))
	return DefaultBranch
}

func (e *Environment) localBranchName(ctx context.Context) (string, bool) {
	if !e.localBranch || e.vcs == nil {
		return "", false
	}
	return e.vcs.CurrentBranch(ctx)
}

// Repo returns the owner/name slug or a *domain.RepoNotFoundError.
func (e *Environment) Repo(ctx context.Context) (string, error) {
	if v, ok := e.override(EnvRepoSlug); ok {
		return v, nil
	}
	if r, ok := e.provider.(domain.RepoReporter); ok {
		if v, ok := r.Repo(); ok {
			e.answered("repo", "provider")
			return v, nil
		}
	}

	var url string
	if e.vcs != nil {
		url, _ = e.vcs.OriginURL(ctx)
	}
	if url == "" {
		return "", domain.NewRepoNotFound()
	}
	slug, err := ParseRepoSlug(url)
	if err != nil {
		return "", err
	}
	e.answered("repo", "vcs")
	return slug, nil
}

func (e *Environment) ParallelNonce() (string, bool) {
	if v, ok := e.override(EnvParallelNonce); ok {
		return v, true
	}
	if r, ok := e.provider.(domain.ParallelNonceReporter); ok {
		if v, ok := r.ParallelNonce(); ok {
			e.answered("parallel_nonce", "provider")
			return v, true
		}
	}
	return "", false
}

// ParallelTotalShards fails with domain.ErrInvalidParallelTotal when the override
// is not a positive integer.
func (e *Environment) ParallelTotalShards() (int, bool, error) {
	if v, ok := e.override(EnvParallelTotal); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false, errors.Wrapf(domain.ErrInvalidParallelTotal, "got %q", v)
		}
		if n <= 0 {
			return 0, false, errors.Wrapf(domain.ErrInvalidParallelTotal, "got %d", n)
		}
		return n, true, nil
	}
	if r, ok := e.provider.(domain.ParallelTotalReporter); ok {
		if n, ok := r.ParallelTotalShards(); ok {
			e.answered("parallel_total", "provider")
			return n, true, nil
		}
	}
	return 0, false, nil
}

// Snapshot resolves every fact. On error the facts resolved so far are still returned.
func (e *Environment) Snapshot(ctx context.Context) (domain.Facts, error) {
	f := domain.Facts{
		CI:     e.CurrentCI(),
		Branch: e.Branch(ctx),
	}
	f.PullRequest, _ = e.PullRequestNumber()
	f.ParallelNonce, _ = e.ParallelNonce()

	var firstErr error
	total, _, err := e.ParallelTotalShards()
	if err != nil {
		firstErr = err
	}
	f.ParallelTotal = total

	repo, err := e.Repo(ctx)
	if err != nil && firstErr == nil {
		firstErr = err
	}
	f.Repo = repo

	return f, firstErr
}

// Save resolves every fact and hands the result to w, even when resolution failed
// part way. A write error takes precedence over a resolution error.
func (e *Environment) Save(ctx context.Context, w domain.SnapshotWriter) (domain.Facts, error) {
	f, err := e.Snapshot(ctx)
	if werr := w.Write(ctx, f); werr != nil {
		return f, errors.Wrap(werr, "write snapshot")
	}
	return f, err
}

// ParseRepoSlug extracts owner/name from the tail of a remote URL.
func ParseRepoSlug(url string) (string, error) {
	m := repoSlugRe.FindStringSubmatch(url)
	if m == nil {
		return "", domain.NewRepoNotParsed(url)
	}
	return m[1], nil
}

func (e *Environment) override(key string) (string, bool) {
	v := e.env.Getenv(key)
	if v == "" {
		return "", false
	}
	e.log.Debug("override set", zap.String("key", key))
	return v, true
}

func (e *Environment) answered(fact, tier string) {
	e.log.Debug("fact resolved", zap.String("fact", fact), zap.String("tier", tier))
}
