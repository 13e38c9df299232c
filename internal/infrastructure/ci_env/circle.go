package ci_env

import (
	"strings"

	"github.com/davarch/ci-env/internal/domain"
)

type Circle struct {
	env domain.Env
}

func (Circle) CurrentCI() domain.CI { return domain.Circle }

// PullRequestNumber takes the last path segment of the pull request URL.
func (c Circle) PullRequestNumber() (string, bool) {
	u, ok := lookup(c.env, "CI_PULL_REQUEST")
	if !ok {
		return "", false
	}
	n := u[strings.LastIndex(u, "/")+1:]
	return n, n != ""
}

func (c Circle) Branch() (string, bool) { return lookup(c.env, "CIRCLE_BRANCH") }

func (c Circle) Repo() (string, bool) {
	user, okUser := lookup(c.env, "CIRCLE_PROJECT_USERNAME")
	name, okName := lookup(c.env, "CIRCLE_PROJECT_REPONAME")
	if !okUser || !okName {
		return "", false
	}
	return user + "/" + name, true
}
