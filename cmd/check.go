package cmd

import (
	"errors"
	"fmt"
	"os"

	"q3-demo-checker/feature/compat"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var formatFlag string

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [map-location]",
	Short: "Check whether a map runs on the demo",
	Long: `Checks one map archive against the demo, patch and full base archives and prints
a report. The location is a local path, an http(s) URL (a download page linking to the
.pk3 also works) or s3://bucket/key. Without an argument, CHECK_MAP_PATH and then
CHECK_MAP_URL are used.

The verdict does not change the exit code; only failures do.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := compat.ParseFormat(formatFlag, compat.FormatText)
		if err != nil {
			return err
		}

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var location string
		if len(args) == 1 {
			location = args[0]
		} else if location, err = cfg.Check.MapSource(); err != nil {
			return err
		}
		if location == "" {
			return errors.New("no map given: pass a location or set CHECK_MAP_PATH / CHECK_MAP_URL")
		}

		resolver, err := newResolver(cfg, true)
		if err != nil {
			return err
		}
		svc := compat.NewService(resolver, cfg.Check, cfg.Storage, logg)

		logg.Debug("Checking map", zap.String("map", location))
		report, err := svc.Check(cmd.Context(), location)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		return report.Write(os.Stdout, format)
	},
}

func init() {
	checkCmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "report format: text, json or yaml")
	RootCmd.AddCommand(checkCmd)
}
