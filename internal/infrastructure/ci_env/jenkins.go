package ci_env

import "github.com/davarch/ci-env/internal/domain"

// Jenkins reads the variables set by the GitHub Pull Request Builder plugin.
type Jenkins struct {
	env domain.Env
}

func (Jenkins) CurrentCI() domain.CI { return domain.Jenkins }

func (j Jenkins) PullRequestNumber() (string, bool) { return lookup(j.env, "ghprbPullId") }

func (j Jenkins) Branch() (string, bool) { return lookup(j.env, "ghprbTargetBranch") }
