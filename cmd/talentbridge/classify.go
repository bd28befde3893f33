package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/pipeline"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify the pipeline stage and health of a job",
	RunE:  runClassify,
}

var (
	classifyInputFile  string
	classifyOutputFile string
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyInputFile, "in", "i", "", "Path to pipeline counts JSON file (required)")
	classifyCmd.Flags().StringVarP(&classifyOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(classifyCmd, "in")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	var counts types.PipelineCounts
	if err := readInput(schemas.PipelineCounts, classifyInputFile, &counts); err != nil {
		return err
	}

	status := pipeline.Status(counts)
	summary(func(p *observability.Printer) { p.PrintJobStatus(status) })
	return writeOutput(classifyOutputFile, status)
}
