package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/techstack"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize technology labels and group them for display",
	Long:  "Maps free-form technology labels to their canonical names, drops duplicates and sorts the result into display buckets (Frontend, Backend, ...).",
	RunE:  runNormalize,
}

var (
	normalizeInputFile  string
	normalizeOutputFile string
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInputFile, "in", "i", "", `Path to a {"skills": [...]} JSON file (required)`)
	normalizeCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(normalizeCmd, "in")

	rootCmd.AddCommand(normalizeCmd)
}

type normalizeInput struct {
	Skills []string `json:"skills"`
}

type normalizeOutput struct {
	Normalized []string          `json:"normalized"`
	Groups     []techstack.Group `json:"groups"`
}

func runNormalize(_ *cobra.Command, _ []string) error {
	var in normalizeInput
	if err := readInput(schemas.Skills, normalizeInputFile, &in); err != nil {
		return err
	}

	normalized := techstack.NormalizeAll(in.Skills)
	out := normalizeOutput{
		Normalized: normalized,
		Groups:     techstack.GroupLabels(normalized),
	}

	summary(func(p *observability.Printer) { p.PrintGroups(out.Groups) })
	return writeOutput(normalizeOutputFile, out)
}
