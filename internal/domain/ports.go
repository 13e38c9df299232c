package domain

import "context"

// Env is a read-only view of environment variables. Unset and empty are the same.
type Env interface {
	Getenv(key string) string
}

// Provider answers the questions every CI variant supports.
// The bool result is false when the provider has no value.
type Provider interface {
	CurrentCI() CI
	PullRequestNumber() (string, bool)
	Branch() (string, bool)
}

type RepoReporter interface {
	Repo() (string, bool)
}

type ParallelNonceReporter interface {
	ParallelNonce() (string, bool)
}

type ParallelTotalReporter interface {
	ParallelTotalShards() (int, bool)
}

// DetectFunc returns the active provider or nil when none is active.
type DetectFunc func(env Env) Provider

// VCS queries the local repository. Failures are reported as "no answer".
type VCS interface {
	OriginURL(ctx context.Context) (string, bool)
	CurrentBranch(ctx context.Context) (string, bool)
}

type SnapshotWriter interface {
	Write(ctx context.Context, f Facts) error
}
