// Package ci_env reads the native environment of supported CI providers.
package ci_env

import (
	"github.com/davarch/ci-env/internal/domain"
)

type signal struct {
	id      domain.CI
	matches func(env domain.Env) bool
	build   func(env domain.Env) domain.Provider
}

// Order matters: the first matching signal wins.
var signals = []signal{
	{domain.Travis, isSet("TRAVIS_BUILD_ID"), func(e domain.Env) domain.Provider { return Travis{env: e} }},
	{domain.Jenkins, isSet("JENKINS_URL"), func(e domain.Env) domain.Provider { return Jenkins{env: e} }},
	{domain.Circle, isSet("CIRCLECI"), func(e domain.Env) domain.Provider { return Circle{env: e} }},
	{domain.Codeship, equals("CI_NAME", "codeship"), func(e domain.Env) domain.Provider { return Codeship{env: e} }},
	{domain.Drone, equals("DRONE", "true"), func(e domain.Env) domain.Provider { return Drone{env: e} }},
	{domain.Semaphore, equals("SEMAPHORE", "true"), func(e domain.Env) domain.Provider { return Semaphore{env: e} }},
}

// Detect returns the active provider, or nil when no signal matches.
func Detect(env domain.Env) domain.Provider {
	for _, s := range signals {
		if s.matches(env) {
			return s.build(env)
		}
	}
	return nil
}

// Names lists supported providers in detection order.
func Names() []domain.CI {
	out := make([]domain.CI, 0, len(signals))
	for _, s := range signals {
		out = append(out, s.id)
	}
	return out
}

func isSet(key string) func(domain.Env) bool {
	return func(env domain.Env) bool { return env.Getenv(key) != "" }
}

func equals(key, want string) func(domain.Env) bool {
	return func(env domain.Env) bool { return env.Getenv(key) == want }
}

func lookup(env domain.Env, key string) (string, bool) {
	v := env.Getenv(key)
	return v, v != ""
}

// notFalse drops the literal "false" some providers use for "not a pull request".
func notFalse(v string, ok bool) (string, bool) {
	if v == "false" {
		return "", false
	}
	return v, ok
}
