package reconcile

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TFMV/reconcile/internal/config"
)

// configCmd writes the default configuration to a file so the matching
// vocabularies and thresholds can be tuned without rebuilding
var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Write the default configuration to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := config.SaveDefault(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Default configuration written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
