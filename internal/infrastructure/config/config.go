package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
)

type Config struct {
	Git struct {
		Backend     string        `yaml:"backend"`
		Binary      string        `yaml:"binary"`
		Dir         string        `yaml:"dir,omitempty"`
		Timeout     time.Duration `yaml:"timeout"`
		LocalBranch bool          `yaml:"local_branch"`
	} `yaml:"git"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func Default() Config {
	var c Config
	c.Git.Backend = BackendExec
	c.Git.Binary = "git"
	c.Git.Timeout = 3 * time.Second
	c.Log.Level = "warn"
	return c
}

// Load reads path on top of the defaults and then applies CI_ENV_* overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return c, errors.Wrapf(err, "parse config %s", path)
			}
		case !os.IsNotExist(err):
			return c, errors.Wrapf(err, "read config %s", path)
		}
	}

	if v := os.Getenv("CI_ENV_GIT_BACKEND"); v != "" {
		c.Git.Backend = v
	}

	if v := os.Getenv("CI_ENV_GIT_BINARY"); v != "" {
		c.Git.Binary = v
	}

	if v := os.Getenv("CI_ENV_GIT_DIR"); v != "" {
		c.Git.Dir = expandHome(v)
	}

	if v := os.Getenv("CI_ENV_GIT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, errors.Wrap(err, "CI_ENV_GIT_TIMEOUT")
		}
		c.Git.Timeout = d
	}

	if v := os.Getenv("CI_ENV_LOCAL_BRANCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.Wrap(err, "CI_ENV_LOCAL_BRANCH")
		}
		c.Git.LocalBranch = b
	}

	if v := os.Getenv("CI_ENV_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	c.Git.Dir = expandHome(c.Git.Dir)
	c.Git.Backend = strings.ToLower(strings.TrimSpace(c.Git.Backend))
	if c.Git.Binary == "" {
		c.Git.Binary = "git"
	}

	if c.Git.Backend != BackendExec && c.Git.Backend != BackendGoGit {
		return c, errors.Errorf("unknown git backend %q (want %s or %s)", c.Git.Backend, BackendExec, BackendGoGit)
	}

	if c.Git.Timeout <= 0 {
		return c, errors.New("git timeout must be positive")
	}

	return c, nil
}

func Save(path string, c Config) error {
	if path == "" {
		return errors.New("empty config path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	lockFile := path + ".lock"
	lf, err := os.OpenFile(lockFile, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = lf.Close() }()

	if runtime.GOOS != "windows" {
		if err := syscall.Flock(int(lf.Fd()), syscall.LOCK_EX); err != nil {
			return err
		}
		defer func() { _ = syscall.Flock(int(lf.Fd()), syscall.LOCK_UN) }()
	}

	b, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	if _, err := f.Write(b); err != nil {
		return err
	}

	if err := f.Sync(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if h, _ := os.UserHomeDir(); h != "" {
			return h + p[1:]
		}
	}
	return p
}
