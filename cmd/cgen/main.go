package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/cgen/cmd/cgen/commands"
	"github.com/teranos/cgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cgen",
	Short: "cgen - styled C source renderer",
	Long: `cgen - render C source trees in any house style.

One tree of functions, conditionals, loops, structs and enums renders into
Allman, GNU, K&R, Horstmann, Pico or minimal brace layouts, with configurable
indentation, newlines and identifier casing.

Available commands:
  styles  - List the built-in house styles
  sample  - Render the built-in sample translation unit
  am      - Manage the house-style configuration ("I am")
  version - Show version information

Examples:
  cgen styles --preview           # Show every style side by side
  cgen sample --preset gnu        # Render the sample in GNU style
  cgen sample --watch             # Re-render whenever cgen.toml changes
  cgen am show --format yaml      # Show the resolved configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(verbosity, jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.SampleCmd)
	rootCmd.AddCommand(commands.StylesCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
