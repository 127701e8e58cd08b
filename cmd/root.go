package cmd

import (
	"fmt"
	"os"

	"q3-demo-checker/core/config"
	"q3-demo-checker/core/logger"
	"q3-demo-checker/core/source"
	"q3-demo-checker/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where the .env file is looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "q3demo",
	Short: "Quake 3 demo map compatibility checker",
	Long: `q3demo reports whether a Quake 3 Arena map archive (.pk3) runs on the free
demo client, by comparing the assets the map needs against the demo, patch and
full base archives.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives readable timestamps on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding the .env file")
}

// bootstrap loads the configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// newResolver builds the archive resolver, with an object storage client when
// storage is enabled.
func newResolver(cfg *config.Config, allowLocal bool) (*source.Resolver, error) {
	var store storage.Client
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		store = client
	}
	return source.NewResolver(cfg.Fetch, store, allowLocal), nil
}
