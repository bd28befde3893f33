package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/db"
	"github.com/jonathan/talentbridge/internal/fetch"
	"github.com/jonathan/talentbridge/internal/observability"
	"github.com/jonathan/talentbridge/internal/readiness"
	"github.com/jonathan/talentbridge/internal/schemas"
	"github.com/jonathan/talentbridge/internal/types"
)

var enrichCompanyCmd = &cobra.Command{
	Use:   "enrich-company",
	Short: "Fill missing company profile fields from the company website",
	Long: "Fetches the company website and proposes values for an empty website, description and LinkedIn URL, " +
		"then rescores profile completeness. The profile comes from --in or, with --company-id, from the database. " +
		"--apply writes the filled fields back; fields that are already set are never overwritten.",
	RunE: runEnrichCompany,
}

var (
	enrichCompanyInputFile  string
	enrichCompanyID         string
	enrichCompanyURL        string
	enrichCompanyOutputFile string
	enrichCompanyApply      bool
	enrichCompanyBrowser    bool
)

func init() {
	enrichCompanyCmd.Flags().StringVarP(&enrichCompanyInputFile, "in", "i", "", "Path to company profile JSON file")
	enrichCompanyCmd.Flags().StringVar(&enrichCompanyID, "company-id", "", "Company UUID to load from the database")
	enrichCompanyCmd.Flags().StringVar(&enrichCompanyURL, "url", "", "Website to fetch (default: the profile's website)")
	enrichCompanyCmd.Flags().StringVarP(&enrichCompanyOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	enrichCompanyCmd.Flags().BoolVar(&enrichCompanyApply, "apply", false, "Write the filled fields to the database (requires --company-id)")
	enrichCompanyCmd.Flags().BoolVar(&enrichCompanyBrowser, "browser", false, "Render the page in headless Chrome when it has no description (overrides fetch.use_browser)")
	enrichCompanyCmd.MarkFlagsMutuallyExclusive("in", "company-id")
	enrichCompanyCmd.MarkFlagsOneRequired("in", "company-id")

	rootCmd.AddCommand(enrichCompanyCmd)
}

type enrichCompanyOutput struct {
	Suggestion   *fetch.Suggestion       `json:"suggestion"`
	Completeness readiness.CompanyResult `json:"completeness"`
	Applied      bool                    `json:"applied"`
}

func runEnrichCompany(cmd *cobra.Command, _ []string) error {
	if enrichCompanyApply && enrichCompanyID == "" {
		return fmt.Errorf("--apply requires --company-id")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	var (
		profile   types.CompanyProfile
		database  *db.DB
		companyID uuid.UUID
	)
	if enrichCompanyID != "" {
		if companyID, err = uuid.Parse(enrichCompanyID); err != nil {
			return fmt.Errorf("invalid --company-id: %w", err)
		}
		if cfg.Database.URL == "" {
			return fmt.Errorf("database.url (TALENTBRIDGE_DATABASE_URL or DATABASE_URL) is required with --company-id")
		}
		if database, err = db.Connect(ctx, cfg.Database.URL); err != nil {
			return err
		}
		defer database.Close()

		stored, err := database.GetCompanyProfile(ctx, companyID)
		if err != nil {
			return err
		}
		if stored == nil {
			return fmt.Errorf("company %s not found", companyID)
		}
		profile = *stored
	} else if err := readInput(schemas.CompanyProfile, enrichCompanyInputFile, &profile); err != nil {
		return err
	}

	useBrowser := cfg.Fetch.UseBrowser
	if cmd.Flags().Changed("browser") {
		useBrowser = enrichCompanyBrowser
	}
	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.Fetch.Timeout

	enricher := &fetch.Enricher{
		Options:    opts,
		UseBrowser: useBrowser,
		Logger:     log.Named("fetch"),
	}
	suggestion, err := enricher.Enrich(ctx, profile, enrichCompanyURL)
	if err != nil {
		return err
	}

	out := enrichCompanyOutput{
		Suggestion:   suggestion,
		Completeness: readiness.Company(&suggestion.Profile),
	}

	if enrichCompanyApply && len(suggestion.Filled) > 0 {
		if err := database.UpdateCompanyProfile(ctx, companyID, &suggestion.Profile); err != nil {
			return err
		}
		out.Applied = true
		log.Info("company profile updated",
			zap.String("company_id", companyID.String()),
			zap.Strings("filled", suggestion.Filled))
	}

	summary(func(p *observability.Printer) {
		p.PrintEnrichment(suggestion)
		p.PrintCompanyCompleteness(out.Completeness)
	})
	return writeOutput(enrichCompanyOutputFile, out)
}
