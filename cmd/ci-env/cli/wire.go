package cli

import (
	"github.com/davarch/ci-env/internal/application"
	"github.com/davarch/ci-env/internal/domain"
	"github.com/davarch/ci-env/internal/infrastructure/ci_env"
	"github.com/davarch/ci-env/internal/infrastructure/config"
	"github.com/davarch/ci-env/internal/infrastructure/envsource"
	"github.com/davarch/ci-env/internal/infrastructure/git_exec"
	"github.com/davarch/ci-env/internal/infrastructure/git_repo"
	"github.com/davarch/ci-env/internal/infrastructure/logging"
	"go.uber.org/zap"
)

type deps struct {
	cfg config.Config
	log *zap.Logger
	vcs domain.VCS
}

func loadDeps() (deps, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return deps{}, err
	}

	log := logging.New(cfg.Log.Level)
	return deps{cfg: cfg, log: log, vcs: newVCS(cfg, log)}, nil
}

func newVCS(cfg config.Config, log *zap.Logger) domain.VCS {
	if cfg.Git.Backend == config.BackendGoGit {
		return git_repo.New(log, cfg.Git.Dir)
	}
	return git_exec.New(log, cfg.Git.Binary, cfg.Git.Dir, cfg.Git.Timeout)
}

// source returns the env the resolver reads: the env file, when given, over the process env.
// The file is read once so one resolution sees one version of it.
func source(path string) (domain.Env, error) {
	if path == "" {
		return envsource.OS{}, nil
	}
	vars, err := envsource.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return envsource.Overlay{vars, envsource.OS{}}, nil
}

func (d deps) environment(env domain.Env) *application.Environment {
	var opts []application.Option
	if d.cfg.Git.LocalBranch {
		opts = append(opts, application.WithLocalBranch())
	}
	return application.NewEnvironment(env, ci_env.Detect, d.vcs, d.log, opts...)
}
