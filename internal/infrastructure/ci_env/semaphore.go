package ci_env

import "github.com/davarch/ci-env/internal/domain"

type Semaphore struct {
	env domain.Env
}

func (Semaphore) CurrentCI() domain.CI { return domain.Semaphore }

func (s Semaphore) PullRequestNumber() (string, bool) { return lookup(s.env, "PULL_REQUEST_NUMBER") }

func (s Semaphore) Branch() (string, bool) { return lookup(s.env, "BRANCH_NAME") }

func (s Semaphore) Repo() (string, bool) { return lookup(s.env, "SEMAPHORE_REPO_SLUG") }
