package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FromYAMLAndEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "ci-env.yaml")

	yaml := `
git:
  backend: go-git
  binary: /usr/bin/git
  timeout: 5s
  local_branch: true

log:
  level: debug
`
	if err := os.WriteFile(cfgFile, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CI_ENV_LOG_LEVEL", "info")
	t.Setenv("CI_ENV_GIT_TIMEOUT", "2s")

	c, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Log.Level != "info" {
		t.Errorf("env override failed, got %s", c.Log.Level)
	}
	if c.Git.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %s", c.Git.Timeout)
	}
	if c.Git.Backend != BackendGoGit || !c.Git.LocalBranch || c.Git.Binary != "/usr/bin/git" {
		t.Errorf("yaml values not applied: %+v", c.Git)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Default() {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"CI_ENV_GIT_BACKEND":  "svn",
		"CI_ENV_GIT_TIMEOUT":  "soon",
		"CI_ENV_LOCAL_BRANCH": "maybe",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			if _, err := Load(""); err == nil {
				t.Errorf("expected error for %s=%s", k, v)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ci-env.yaml")

	want := Default()
	want.Git.LocalBranch = true
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Errorf("lock file must stay in place for later writers: %v", err)
	}
}
