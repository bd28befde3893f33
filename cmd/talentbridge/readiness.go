package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/readiness"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Score how ready a candidate profile is to be exposed to clients",
	RunE:  runReadiness,
}

var (
	readinessInputFile  string
	readinessOutputFile string
)

func init() {
	readinessCmd.Flags().StringVarP(&readinessInputFile, "in", "i", "", "Path to candidate JSON file (required)")
	readinessCmd.Flags().StringVarP(&readinessOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(readinessCmd, "in")

	rootCmd.AddCommand(readinessCmd)
}

func runReadiness(_ *cobra.Command, _ []string) error {
	var candidate types.Candidate
	if err := readInput(schemas.Candidate, readinessInputFile, &candidate); err != nil {
		return err
	}

	result := readiness.Expose(&candidate)
	summary(func(p *observability.Printer) { p.PrintExpose(result) })
	return writeOutput(readinessOutputFile, result)
}
