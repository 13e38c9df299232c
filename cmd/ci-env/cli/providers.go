package cli

import (
	"fmt"

	"github.com/davarch/ci-env/internal/infrastructure/ci_env"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported CI providers in detection order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range ci_env.Names() {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
