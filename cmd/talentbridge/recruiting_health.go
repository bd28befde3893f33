package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
)

var recruitingHealthCmd = &cobra.Command{
	Use:   "recruiting-health",
	Short: "Score the overall recruiting health of a client",
	RunE:  runRecruitingHealth,
}

var (
	recruitingHealthInputFile  string
	recruitingHealthOutputFile string
)

func init() {
	recruitingHealthCmd.Flags().StringVarP(&recruitingHealthInputFile, "in", "i", "", "Path to recruiting activity JSON file (required)")
	recruitingHealthCmd.Flags().StringVarP(&recruitingHealthOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(recruitingHealthCmd, "in")

	rootCmd.AddCommand(recruitingHealthCmd)
}

func runRecruitingHealth(_ *cobra.Command, _ []string) error {
	var in health.RecruitingInput
	if err := readInput(schemas.RecruitingInput, recruitingHealthInputFile, &in); err != nil {
		return err
	}

	result := health.Recruiting(in)
	summary(func(p *observability.Printer) { p.PrintRecruiting(result) })
	return writeOutput(recruitingHealthOutputFile, result)
}
