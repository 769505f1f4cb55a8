package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/casegen/cmd/casegen/commands"
)

var rootCmd = &cobra.Command{
	Use:   "casegen",
	Short: "Generate programming contest testcases from variable constraints",
	Long: `casegen - constraint based testcase generator.

Variables, their constraints and the output layout are described in a
project file (YAML, TOML or JSON). Variables may depend on each other;
casegen generates them in dependency order and renders each testcase
with the output layout.

Settings are read in order of precedence from:
1. Command line flags
2. Environment variables (CASEGEN_* prefix, also read from .env)
3. ./casegen.toml or ~/.config/casegen/casegen.toml
4. Default values

Examples:
  casegen generate pairs.yaml -n 10          # Ten testcases to stdout
  casegen generate pairs.yaml -f csv -o t.csv
  casegen validate pairs.yaml                # Report constraint problems
  casegen order pairs.yaml                   # Show the generation order`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.Setup(cmd)
	},
}

func init() {
	commands.AddPersistentFlags(rootCmd)

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.OrderCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
