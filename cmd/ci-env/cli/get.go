package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/davarch/ci-env/internal/application"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var factNames = []string{"ci", "branch", "pull-request", "repo", "parallel-nonce", "parallel-total"}

var getCmd = &cobra.Command{
	Use:       "get <fact>",
	Short:     "Print a single fact, or an empty line when it is absent",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: factNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}
		defer func() { _ = d.log.Sync() }()

		env, err := source(envFile)
		if err != nil {
			return err
		}

		v, err := fact(cmd.Context(), d.environment(env), args[0])
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	},
}

func fact(ctx context.Context, e *application.Environment, name string) (string, error) {
	switch name {
	case "ci":
		return string(e.CurrentCI()), nil
	case "branch":
		return e.Branch(ctx), nil
	case "pull-request":
		v, _ := e.PullRequestNumber()
		return v, nil
	case "repo":
		return e.Repo(ctx)
	case "parallel-nonce":
		v, _ := e.ParallelNonce()
		return v, nil
	case "parallel-total":
		n, ok, err := e.ParallelTotalShards()
		if err != nil || !ok {
			return "", err
		}
		return strconv.Itoa(n), nil
	}
	return "", errors.Errorf("unknown fact %q", name)
}

func init() {
	rootCmd.AddCommand(getCmd)
}
