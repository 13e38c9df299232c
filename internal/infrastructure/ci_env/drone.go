package ci_env

import "github.com/davarch/ci-env/internal/domain"

type Drone struct {
	env domain.Env
}

func (Drone) CurrentCI() domain.CI { return domain.Drone }

func (d Drone) PullRequestNumber() (string, bool) { return lookup(d.env, "CI_PULL_REQUEST") }

func (d Drone) Branch() (string, bool) { return lookup(d.env, "DRONE_BRANCH") }
