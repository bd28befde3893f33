package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/techstack"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Compare candidate skills with a job's required stack",
	RunE:  runMatch,
}

var (
	matchInputFile  string
	matchOutputFile string
)

func init() {
	matchCmd.Flags().StringVarP(&matchInputFile, "in", "i", "", `Path to a {"candidate_skills": [...], "required": [...]} JSON file (required)`)
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(matchCmd, "in")

	rootCmd.AddCommand(matchCmd)
}

type matchInput struct {
	CandidateSkills []string `json:"candidate_skills"`
	Required        []string `json:"required"`
}

func runMatch(_ *cobra.Command, _ []string) error {
	var in matchInput
	if err := readInput(schemas.SkillMatch, matchInputFile, &in); err != nil {
		return err
	}

	result := techstack.Match(in.CandidateSkills, in.Required)
	summary(func(p *observability.Printer) { p.PrintSkillMatch(result) })
	return writeOutput(matchOutputFile, result)
}
