package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/readiness"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var companyCompletenessCmd = &cobra.Command{
	Use:   "company-completeness",
	Short: "Score how complete a company profile is",
	RunE:  runCompanyCompleteness,
}

var (
	companyCompletenessInputFile  string
	companyCompletenessOutputFile string
)

func init() {
	companyCompletenessCmd.Flags().StringVarP(&companyCompletenessInputFile, "in", "i", "", "Path to company profile JSON file (required)")
	companyCompletenessCmd.Flags().StringVarP(&companyCompletenessOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(companyCompletenessCmd, "in")

	rootCmd.AddCommand(companyCompletenessCmd)
}

func runCompanyCompleteness(_ *cobra.Command, _ []string) error {
	var profile types.CompanyProfile
	if err := readInput(schemas.CompanyProfile, companyCompletenessInputFile, &profile); err != nil {
		return err
	}

	result := readiness.Company(&profile)
	summary(func(p *observability.Printer) { p.PrintCompanyCompleteness(result) })
	return writeOutput(companyCompletenessOutputFile, result)
}
