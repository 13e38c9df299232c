package cli

import (
	"os"
	"slices"

	"github.com/davarch/ci-env/internal/domain"
	"github.com/davarch/ci-env/internal/infrastructure/snapshot_fs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showOutput string
	showSave   string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every resolved build fact",
	Args:  cobra.NoArgs,
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

		e := d.environment(env)
		var (
			facts domain.Facts
			ferr  error
		)
		if showSave != "" {
			facts, ferr = e.Save(cmd.Context(), snapshot_fs.New(showSave))
		} else {
			facts, ferr = e.Snapshot(cmd.Context())
		}
		if ferr != nil {
			d.log.Warn("resolve facts", zap.Error(ferr))
		}

		if err := render(os.Stdout, facts, showOutput); err != nil {
			return err
		}
		return ferr
	},
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "table", "output format: table, json, yaml or env")
	showCmd.Flags().StringVar(&showSave, "save", "", "also write a JSON snapshot to this path")

	showCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(outputFormats, showOutput) {
			return errors.Errorf("unknown output format %q", showOutput)
		}
		return nil
	}

	_ = showCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return outputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(showCmd)
}
