package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
)

var jobHealthCmd = &cobra.Command{
	Use:   "job-health",
	Short: "Score the health of a single job",
	Long:  "Scores a job from its candidate, interview and recruiter counts and how long it has been open.",
	RunE:  runJobHealth,
}

var (
	jobHealthInputFile  string
	jobHealthOutputFile string
)

func init() {
	jobHealthCmd.Flags().StringVarP(&jobHealthInputFile, "in", "i", "", "Path to job activity JSON file (required)")
	jobHealthCmd.Flags().StringVarP(&jobHealthOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(jobHealthCmd, "in")

	rootCmd.AddCommand(jobHealthCmd)
}

func runJobHealth(_ *cobra.Command, _ []string) error {
	var in health.JobInput
	if err := readInput(schemas.JobInput, jobHealthInputFile, &in); err != nil {
		return err
	}

	result := health.Job(in)
	summary(func(p *observability.Printer) { p.PrintHealth("Job Health", result) })
	return writeOutput(jobHealthOutputFile, result)
}
