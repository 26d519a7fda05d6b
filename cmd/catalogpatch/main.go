package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/catalogpatch/config"
	"github.com/shashiranjanraj/catalogpatch/pkg/logger"
	"github.com/shashiranjanraj/catalogpatch/pkg/sigctx"
)

var (
	configFile string
	envFile    string
)

func main() {
	ctx, stop := sigctx.NotifyContext()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "catalogpatch",
	Short:         "catalogpatch applies catalog schema and data patches",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadFrom(configFile, envFile); err != nil {
			return err
		}
		logger.Init(config.AppEnv(), config.LogLevel())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigFile, "JSON config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file")

	// Patches
	rootCmd.AddCommand(setupUpgradeCmd)
	rootCmd.AddCommand(patchStatusCmd)
	rootCmd.AddCommand(patchRevertCmd)

	// Fixtures
	rootCmd.AddCommand(seedCmd)
}
