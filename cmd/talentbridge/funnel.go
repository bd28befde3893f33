package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var funnelCmd = &cobra.Command{
	Use:   "funnel",
	Short: "Build the hiring funnel of a job from its stage counts",
	RunE:  runFunnel,
}

var (
	funnelInputFile  string
	funnelOutputFile string
)

func init() {
	funnelCmd.Flags().StringVarP(&funnelInputFile, "in", "i", "", "Path to submission counts JSON file (required)")
	funnelCmd.Flags().StringVarP(&funnelOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(funnelCmd, "in")

	rootCmd.AddCommand(funnelCmd)
}

type funnelOutput struct {
	Steps []health.FunnelStep `json:"steps"`
}

func runFunnel(_ *cobra.Command, _ []string) error {
	var counts types.SubmissionCounts
	if err := readInput(schemas.SubmissionCounts, funnelInputFile, &counts); err != nil {
		return err
	}

	out := funnelOutput{Steps: health.Funnel(counts)}
	summary(func(p *observability.Printer) { p.PrintFunnel(out.Steps) })
	return writeOutput(funnelOutputFile, out)
}
