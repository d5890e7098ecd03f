package main

import (
	"errors"
	"fmt"
	"os"

	"job-use-backend/pkg/apperror"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <profile.json>",
	Short: "Ingest a candidate profile file",
	Long: `Reads a profile upload file, upserts the candidate by email and replaces
the work experience and questions the file carries.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	result, err := application.Services.Profiles.IngestProfile(cmd.Context(), raw)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			for _, d := range appErr.Details {
				color.New(color.FgRed).Fprintln(out, "  "+d)
			}
		}
		if result != nil {
			color.New(color.FgYellow).Fprintf(out, "Candidate %s saved before the failure\n", result.CandidateID)
		}
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "Ingested %s (%s)\n", result.Candidate.Email, result.CandidateID)
	if result.ExperiencesSet {
		fmt.Fprintf(out, "  work experience: %d\n", result.ExperienceCount)
	}
	if result.QuestionsSet {
		fmt.Fprintf(out, "  questions: %d\n", result.QuestionCount)
	}
	return nil
}
