package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/casegen/config"
	"github.com/katalvlaran/casegen/logger"
)

// Settings shared by every command, filled in by Setup.
var (
	cfg *config.Config
	log = zap.NewNop()
)

// AddPersistentFlags registers the flags every command accepts.
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().String("config", "", "Config file (default ./casegen.toml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().Bool("log-json", false, "Log as JSON")
}

// Setup loads the configuration and builds the logger before a command runs.
func Setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		c.Log.Level = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-json"); f != nil && f.Changed {
		c.Log.JSON, _ = cmd.Flags().GetBool("log-json")
	}

	l, err := logger.New(c.Log.Level, c.Log.JSON)
	if err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	cfg, log = c, l
	return nil
}
