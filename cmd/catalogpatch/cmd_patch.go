package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/catalogpatch/config"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
	"github.com/shashiranjanraj/catalogpatch/pkg/metrics"
)

const metricsJob = "catalogpatch"

// catalogpatch setup:upgrade
var setupUpgradeCmd = &cobra.Command{
	Use:   "setup:upgrade",
	Short: "Apply all pending schema and data patches",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := boot(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		a.runner.SetOutput(out)

		fmt.Fprintln(out, "Applying patches…")
		summary, applyErr := a.runner.Apply(ctx)

		if len(summary.Applied) > 0 {
			n, err := a.cache.FlushCatalog(ctx)
			if err != nil {
				logger.Warn("cache flush failed", "error", err)
			} else if n > 0 {
				fmt.Fprintf(out, "Flushed %d catalog cache keys.\n", n)
			}
		}

		if url := config.PushgatewayURL(); url != "" {
			if err := metrics.Push(ctx, url, metricsJob); err != nil {
				logger.Warn("metrics push failed", "error", err)
			}
		}

		return applyErr
	},
}

// catalogpatch patch:status
var patchStatusCmd = &cobra.Command{
	Use:   "patch:status",
	Short: "Show every registered patch and whether it was applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		statuses, err := a.runner.Status(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderStatus(statuses))
		return nil
	},
}

// catalogpatch patch:revert
var patchRevertCmd = &cobra.Command{
	Use:   "patch:revert",
	Short: "Revert the last batch of patches",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		a.runner.SetOutput(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Reverting last batch…")

		_, err = a.runner.Revert(cmd.Context())
		return err
	},
}
