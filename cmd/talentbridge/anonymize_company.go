package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/talentbridge/internal/anonymization"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var anonymizeCompanyCmd = &cobra.Command{
	Use:   "anonymize-company",
	Short: "Render the anonymous descriptor of a company",
	Long:  "Builds the one-line descriptor shown to candidates before the client agreed to reveal its name (size, industry, tech stack, work model).",
	RunE:  runAnonymizeCompany,
}

var (
	anonymizeCompanyInputFile  string
	anonymizeCompanyOutputFile string
	anonymizeCompanyRevealed   bool
)

func init() {
	anonymizeCompanyCmd.Flags().StringVarP(&anonymizeCompanyInputFile, "in", "i", "", "Path to company attributes JSON file (required)")
	anonymizeCompanyCmd.Flags().StringVarP(&anonymizeCompanyOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	anonymizeCompanyCmd.Flags().BoolVar(&anonymizeCompanyRevealed, "revealed", false, "Use the company name instead of the anonymous descriptor")
	markRequired(anonymizeCompanyCmd, "in")

	rootCmd.AddCommand(anonymizeCompanyCmd)
}

type anonymizeCompanyOutput struct {
	Descriptor    string `json:"descriptor"`
	IndustryLabel string `json:"industry_label"`
}

func runAnonymizeCompany(_ *cobra.Command, _ []string) error {
	var attrs types.CompanyAttributes
	if err := readInput(schemas.CompanyAttributes, anonymizeCompanyInputFile, &attrs); err != nil {
		return err
	}

	out := anonymizeCompanyOutput{
		Descriptor:    anonymization.CompanyDescriptor(attrs, anonymizeCompanyRevealed),
		IndustryLabel: anonymization.CompanyIndustryLabel(attrs, anonymizeCompanyRevealed),
	}

	summary(func(p *observability.Printer) { p.PrintDescriptor(out.Descriptor) })
	return writeOutput(anonymizeCompanyOutputFile, out)
}
