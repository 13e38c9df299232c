package domain

import (
	"context"
)

type MockEnv map[string]string

func (m MockEnv) Getenv(key string) string { return m[key] }

type MockProvider struct {
	ID          CI
	PullRequest string
	BranchName  string
}

func (p *MockProvider) CurrentCI() CI { return p.ID }

func (p *MockProvider) PullRequestNumber() (string, bool) {
	return p.PullRequest, p.PullRequest != ""
}

func (p *MockProvider) Branch() (string, bool) {
	return p.BranchName, p.BranchName != ""
}

// MockFullProvider also implements every optional capability.
type MockFullProvider struct {
	MockProvider
	RepoSlug string
	Nonce    string
	Total    int
}

func (p *MockFullProvider) Repo() (string, bool) {
	return p.RepoSlug, p.RepoSlug != ""
}

func (p *MockFullProvider) ParallelNonce() (string, bool) {
	return p.Nonce, p.Nonce != ""
}

func (p *MockFullProvider) ParallelTotalShards() (int, bool) {
	return p.Total, p.Total > 0
}

func DetectMock(p Provider) DetectFunc {
	return func(Env) Provider { return p }
}

type MockVCS struct {
	URL        string
	BranchName string
	URLCalls   int
	BranchCall int
}

func (m *MockVCS) OriginURL(ctx context.Context) (string, bool) {
	m.URLCalls++
	return m.URL, m.URL != ""
}

func (m *MockVCS) CurrentBranch(ctx context.Context) (string, bool) {
	m.BranchCall++
	return m.BranchName, m.BranchName != ""
}

type MockSnapshot struct {
	Facts []Facts
	Err   error
}

func (s *MockSnapshot) Write(ctx context.Context, f Facts) error {
	if s.Err != nil {
		return s.Err
	}
	s.Facts = append(s.Facts, f)
	return nil
}
