package ci_env

import "github.com/davarch/ci-env/internal/domain"

type Travis struct {
	env domain.Env
}

func (Travis) CurrentCI() domain.CI { return domain.Travis }

func (t Travis) PullRequestNumber() (string, bool) {
	return notFalse(lookup(t.env, "TRAVIS_PULL_REQUEST"))
}

func (t Travis) Branch() (string, bool) { return lookup(t.env, "TRAVIS_BRANCH") }

func (t Travis) Repo() (string, bool) { return lookup(t.env, "TRAVIS_REPO_SLUG") }
