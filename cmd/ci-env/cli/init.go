package cli

import (
	"fmt"
	"os"

	"github.com/davarch/ci-env/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgPath); err == nil && !initForce {
			fmt.Printf("no change (%s already exists, use --force to overwrite)\n", cfgPath)
			return nil
		}

		if err := config.Save(cfgPath, config.Default()); err != nil {
			return err
		}
		fmt.Printf("written: %s\n", cfgPath)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
