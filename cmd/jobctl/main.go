// Command jobctl is the operator CLI for the job-use backend.
package main

import (
	"fmt"
	"os"

	"job-use-backend/config"
	"job-use-backend/internal/app"
	"job-use-backend/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	storageFlag  string
	logLevelFlag string

	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "jobctl",
	Short: "Operate the job-use backend store",
	Long:  "jobctl migrates the schema, seeds sample jobs, ingests candidate profile files and lists jobs and applications.",

	SilenceUsage:      true,
	PersistentPreRunE: openApp,
	PersistentPostRun: func(*cobra.Command, []string) {
		if application != nil {
			application.Close()
			application = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "Storage driver: postgres or memory (defaults to STORAGE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (defaults to LOG_LEVEL)")
}

func openApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if storageFlag != "" {
		cfg.StorageDriver = storageFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	logger.Init(cfg.LogLevel)

	if application != nil {
		application.Close()
	}
	application, err = app.New(cmd.Context(), cfg)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
