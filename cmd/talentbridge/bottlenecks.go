package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var bottlenecksCmd = &cobra.Command{
	Use:   "bottlenecks",
	Short: "Detect pipeline stages where candidates are stuck",
	RunE:  runBottlenecks,
}

var (
	bottlenecksInputFile  string
	bottlenecksOutputFile string
)

func init() {
	bottlenecksCmd.Flags().StringVarP(&bottlenecksInputFile, "in", "i", "", "Path to a JSON array of stage dwells (required)")
	bottlenecksCmd.Flags().StringVarP(&bottlenecksOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(bottlenecksCmd, "in")

	rootCmd.AddCommand(bottlenecksCmd)
}

type bottlenecksOutput struct {
	Bottlenecks []health.Bottleneck `json:"bottlenecks"`
}

func runBottlenecks(_ *cobra.Command, _ []string) error {
	var dwells []types.StageDwell
	if err := readInput(schemas.StageDwells, bottlenecksInputFile, &dwells); err != nil {
		return err
	}

	out := bottlenecksOutput{Bottlenecks: health.Bottlenecks(dwells)}
	summary(func(p *observability.Printer) { p.PrintBottlenecks(out.Bottlenecks) })
	return writeOutput(bottlenecksOutputFile, out)
}
