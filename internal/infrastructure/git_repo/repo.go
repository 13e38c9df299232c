// Package git_repo answers local repository questions with go-git,
// without spawning a git process.
package git_repo

import (
	"context"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

const remoteName = "origin"

type Repo struct {
	log *zap.Logger
	dir string
}

func New(log *zap.Logger, dir string) *Repo {
	if log == nil {
		log = zap.NewNop()
	}
	if dir == "" {
		dir = "."
	}
	return &Repo{log: log, dir: dir}
}

func (r *Repo) open() (*git.Repository, bool) {
	repo, err := git.PlainOpenWithOptions(r.dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: false,
	})
	if err != nil {
		r.log.Debug("open repository", zap.String("dir", r.dir), zap.Error(err))
		return nil, false
	}
	return repo, true
}

func (r *Repo) OriginURL(_ context.Context) (string, bool) {
	repo, ok := r.open()
	if !ok {
		return "", false
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		r.log.Debug("read remote", zap.String("remote", remoteName), zap.Error(err))
		return "", false
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", false
	}
	return urls[0], true
}

// CurrentBranch is empty on a detached or unborn HEAD.
func (r *Repo) CurrentBranch(_ context.Context) (string, bool) {
	repo, ok := r.open()
	if !ok {
		return "", false
	}

	head, err := repo.Head()
	if err != nil {
		r.log.Debug("read HEAD", zap.Error(err))
		return "", false
	}
	if !head.Name().IsBranch() {
		return "", false
	}
	return head.Name().Short(), true
}
