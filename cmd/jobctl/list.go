package main

import (
	"io"
	"strconv"

	"job-use-backend/internal/domain"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	jobStatusFlag string

	appCandidateFlag string
	appJobFlag       string
	appStatusFlag    string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Job commands",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobs, err := application.Services.Jobs.ListJobs(cmd.Context(), jobStatusFlag)
		if err != nil {
			return err
		}
		renderJobs(cmd.OutOrStdout(), jobs)
		return nil
	},
}

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Application commands",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	RunE: func(cmd *cobra.Command, _ []string) error {
		apps, err := application.Services.Applications.ListApplications(cmd.Context(), domain.ApplicationFilter{
			CandidateID: appCandidateFlag,
			JobID:       appJobFlag,
			Status:      appStatusFlag,
		})
		if err != nil {
			return err
		}
		renderApplications(cmd.OutOrStdout(), apps)
		return nil
	},
}

func init() {
	jobsListCmd.Flags().StringVar(&jobStatusFlag, "status", "", "Filter by status (active or closed)")
	jobsCmd.AddCommand(jobsListCmd)

	applicationsListCmd.Flags().StringVar(&appCandidateFlag, "candidate", "", "Filter by candidate id")
	applicationsListCmd.Flags().StringVar(&appJobFlag, "job", "", "Filter by job id")
	applicationsListCmd.Flags().StringVar(&appStatusFlag, "status", "", "Filter by status")
	applicationsCmd.AddCommand(applicationsListCmd)

	rootCmd.AddCommand(jobsCmd, applicationsCmd)
}

func renderJobs(w io.Writer, jobs []domain.Job) {
	color.New(color.FgYellow).Fprintf(w, "\nJobs (%d)\n", len(jobs))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Company", "Location", "Status", "Posted"})
	table.SetAutoWrapText(false)
	for _, j := range jobs {
		table.Append([]string{j.ID, j.Title, j.Company, j.Location, j.Status, j.PostedDate})
	}
	table.Render()
}

func renderApplications(w io.Writer, apps []domain.Application) {
	color.New(color.FgYellow).Fprintf(w, "\nApplications (%d)\n", len(apps))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Candidate", "Job", "Status", "Applied", "Questions", "Steps"})
	table.SetAutoWrapText(false)
	for _, a := range apps {
		table.Append([]string{
			a.ID,
			a.CandidateID,
			a.JobID,
			a.Status,
			a.AppliedDate,
			strconv.Itoa(len(a.QuestionsDetected)),
			strconv.Itoa(len(a.AgentTraces)),
		})
	}
	table.Render()
}
