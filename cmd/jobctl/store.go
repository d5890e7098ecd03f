package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := application.Migrate(cmd.Context()); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "Schema up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample jobs when no jobs exist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ids, err := application.Services.Jobs.SeedJobs(cmd.Context())
		if err != nil {
			return err
		}
		printIDs(cmd, "Jobs present", ids)
		return nil
	},
}

var reseedCmd = &cobra.Command{
	Use:   "reseed",
	Short: "Delete every job and its applications, then insert the sample jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ids, err := application.Services.Jobs.ClearAndReseedJobs(cmd.Context())
		if err != nil {
			return err
		}
		printIDs(cmd, "Jobs reseeded", ids)
		return nil
	},
}

var clearApplicationsCmd = &cobra.Command{
	Use:   "clear-applications",
	Short: "Delete every application",
	RunE: func(cmd *cobra.Command, _ []string) error {
		n, err := application.Services.Applications.ClearAllApplications(cmd.Context())
		if err != nil {
			return err
		}
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "Deleted %d applications\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, reseedCmd, clearApplicationsCmd)
}

func printIDs(cmd *cobra.Command, title string, ids []string) {
	out := cmd.OutOrStdout()
	color.New(color.FgGreen).Fprintf(out, "%s: %d\n", title, len(ids))
	for _, id := range ids {
		fmt.Fprintln(out, "  "+id)
	}
}
