package git_repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T, remoteURL string) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	if remoteURL != "" {
		_, err = repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{remoteURL}})
		require.NoError(t, err)
	}
	return dir, repo
}

func commit(t *testing.T, dir string, repo *git.Repository) {
	t.Helper()

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644))
	_, err = wt.Add("README")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com"},
	})
	require.NoError(t, err)
}

func TestOriginURL(t *testing.T) {
	dir, _ := initRepo(t, "https://github.com/owner/repo")

	url, ok := New(nil, dir).OriginURL(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "https://github.com/owner/repo", url)
}

func TestOriginURL_FromSubdirectory(t *testing.T) {
	dir, _ := initRepo(t, "git@github.com:owner/repo.git")
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	url, ok := New(nil, sub).OriginURL(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "git@github.com:owner/repo.git", url)
}

func TestOriginURL_NoRemote(t *testing.T) {
	dir, _ := initRepo(t, "")

	_, ok := New(nil, dir).OriginURL(context.Background())
	assert.False(t, ok)
}

func TestNotARepository(t *testing.T) {
	r := New(nil, t.TempDir())

	_, ok := r.OriginURL(context.Background())
	assert.False(t, ok)
	_, ok = r.CurrentBranch(context.Background())
	assert.False(t, ok)
}

func TestCurrentBranch(t *testing.T) {
	dir, repo := initRepo(t, "")
	r := New(nil, dir)

	_, ok := r.CurrentBranch(context.Background())
	assert.False(t, ok, "unborn HEAD has no branch")

	commit(t, dir, repo)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("feature/x"),
		Create: true,
	}))

	b, ok := r.CurrentBranch(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "feature/x", b)
}

func TestCurrentBranch_Detached(t *testing.T) {
	dir, repo := initRepo(t, "")
	commit(t, dir, repo)

	head, err := repo.Head()
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Hash: head.Hash()}))

	_, ok := New(nil, dir).CurrentBranch(context.Background())
	assert.False(t, ok)
}
