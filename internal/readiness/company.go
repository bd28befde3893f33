package readiness

import (
	"strings"

	"github.com/jonathan/talentbridge/internal/types"
)

// CompanyResult is the completeness of a company profile. There is no tiering:
// a complete profile hides the completeness card, anything else lists the gaps.
type CompanyResult struct {
	Score         int      `json:"score"`
	MissingFields []string `json:"missing_fields"`
	Complete      bool     `json:"complete"`
}

type companyCheck struct {
	label string
	ok    func(p *types.CompanyProfile) bool
}

var companyChecklist = []companyCheck{
	{"Firmenname", func(p *types.CompanyProfile) bool { return strings.TrimSpace(p.Name) != "" }},
	{"Website", func(p *types.CompanyProfile) bool { return strings.TrimSpace(p.Website) != "" }},
	{"Beschreibung", func(p *types.CompanyProfile) bool { return strings.TrimSpace(p.Description) != "" }},
	{"Mitarbeiteranzahl", func(p *types.CompanyProfile) bool { return p.Headcount != nil && *p.Headcount > 0 }},
	{"Umsatz", func(p *types.CompanyProfile) bool { return present(p.Revenue) }},
	{"Gründungsjahr", func(p *types.CompanyProfile) bool { return p.FoundedYear != nil && *p.FoundedYear > 0 }},
	{"USP", func(p *types.CompanyProfile) bool { return present(p.USP) }},
}

// Company evaluates the company profile checklist. A nil profile misses every field.
func Company(p *types.CompanyProfile) CompanyResult {
	if p == nil {
		p = &types.CompanyProfile{}
	}

	missing := make([]string, 0, len(companyChecklist))
	for _, check := range companyChecklist {
		if !check.ok(p) {
			missing = append(missing, check.label)
		}
	}

	score := percentage(len(companyChecklist)-len(missing), len(companyChecklist))
	return CompanyResult{
		Score:         score,
		MissingFields: missing,
		Complete:      len(missing) == 0,
	}
}
