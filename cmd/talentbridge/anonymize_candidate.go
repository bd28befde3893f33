package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/anonymization"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var anonymizeCandidateCmd = &cobra.Command{
	Use:   "anonymize-candidate",
	Short: "Render the anonymized view of a candidate",
	Long: "Replaces identifying candidate data with disclosure-safe buckets (experience band, salary band, region). " +
		"The candidate name only appears with --revealed. With anonymization.display_key configured the display token is a keyed hash.",
	RunE: runAnonymizeCandidate,
}

var (
	anonymizeCandidateInputFile  string
	anonymizeCandidateOutputFile string
	anonymizeCandidateName       string
	anonymizeCandidateRevealed   bool
)

func init() {
	anonymizeCandidateCmd.Flags().StringVarP(&anonymizeCandidateInputFile, "in", "i", "", "Path to candidate JSON file (required)")
	anonymizeCandidateCmd.Flags().StringVarP(&anonymizeCandidateOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	anonymizeCandidateCmd.Flags().StringVar(&anonymizeCandidateName, "name", "", "Candidate name, shown only when revealed")
	anonymizeCandidateCmd.Flags().BoolVar(&anonymizeCandidateRevealed, "revealed", false, "The candidate agreed to reveal their identity")
	markRequired(anonymizeCandidateCmd, "in")

	rootCmd.AddCommand(anonymizeCandidateCmd)
}

func runAnonymizeCandidate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var candidate types.Candidate
	if err := readInput(schemas.Candidate, anonymizeCandidateInputFile, &candidate); err != nil {
		return err
	}

	result := anonymization.Candidate(candidate, anonymizeCandidateName, anonymizeCandidateRevealed)
	if !result.Revealed && cfg.Anonymization.DisplayKey != "" {
		result.DisplayName = anonymization.KeyedDisplayID(candidate.ID, []byte(cfg.Anonymization.DisplayKey))
	}

	summary(func(p *observability.Printer) { p.PrintDescriptor(result.DisplayName) })
	return writeOutput(anonymizeCandidateOutputFile, result)
}
