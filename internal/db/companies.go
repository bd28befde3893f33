package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talentbridge/internal/types"
)

// GetCompanyProfile retrieves the profile fields scored for completeness.
// Returns nil, nil when the company does not exist.
func (db *DB) GetCompanyProfile(ctx context.Context, companyID uuid.UUID) (*types.CompanyProfile, error) {
	var p types.CompanyProfile
	err := db.pool.QueryRow(ctx,
		`SELECT name, COALESCE(website, ''), COALESCE(description, ''), headcount, revenue,
		        founded_year, usp, COALESCE(linkedin_url, '')
		 FROM companies WHERE id = $1`,
		companyID,
	).Scan(&p.Name, &p.Website, &p.Description, &p.Headcount, &p.Revenue,
		&p.FoundedYear, &p.USP, &p.LinkedInURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}
	return &p, nil
}

// UpdateCompanyProfile fills empty profile fields with enriched values. Fields that are
// already set are never overwritten.
func (db *DB) UpdateCompanyProfile(ctx context.Context, companyID uuid.UUID, p *types.CompanyProfile) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE companies SET
		    website      = COALESCE(NULLIF(website, ''), NULLIF($2, '')),
		    description  = COALESCE(NULLIF(description, ''), NULLIF($3, '')),
		    linkedin_url = COALESCE(NULLIF(linkedin_url, ''), NULLIF($4, ''))
		 WHERE id = $1`,
		companyID, p.Website, p.Description, p.LinkedInURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update company profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company %s not found", companyID)
	}
	return nil
}

// companyAttributeColumns selects from a companies row aliased co and a jobs row aliased j.
const companyAttributeColumns = `co.name, co.industry, COALESCE(co.size_band, ''),
	COALESCE(co.funding_stage, ''), co.tech_stack, co.city, COALESCE(co.remote_type, ''),
	COALESCE(j.urgency, '')`

func companyAttributeDest(a *types.CompanyAttributes) []any {
	return []any{&a.Name, &a.Industry, &a.SizeBand, &a.FundingStage, &a.TechStack,
		&a.City, &a.RemoteType, &a.Urgency}
}
