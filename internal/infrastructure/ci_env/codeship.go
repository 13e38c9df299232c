package ci_env

import "github.com/davarch/ci-env/internal/domain"

type Codeship struct {
	env domain.Env
}

func (Codeship) CurrentCI() domain.CI { return domain.Codeship }

// PullRequestNumber: Codeship reports "false" even on pull request builds.
func (c Codeship) PullRequestNumber() (string, bool) {
	return notFalse(lookup(c.env, "CI_PULL_REQUEST"))
}

func (c Codeship) Branch() (string, bool) { return lookup(c.env, "CI_BRANCH") }
