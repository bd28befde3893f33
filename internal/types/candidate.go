// Package types provides the read-model snapshots consumed by the TalentBridge rules engine.
//
// Snapshots are built per request by the data layer and are never mutated by the engine.
// Optional attributes are pointers so that "not provided" is distinguishable from zero.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Candidate is the subset of a candidate record the engine reads. Identity fields are
// deliberately absent; ID is only used to derive a display token.
type Candidate struct {
	ID               string   `json:"id,omitempty"`
	Skills           []string `json:"skills,omitempty" validate:"omitempty,dive,required"`
	ExperienceYears  *float64 `json:"experience_years,omitempty" validate:"omitempty,gte=0,lte=70"`
	ExpectedSalary   *float64 `json:"expected_salary,omitempty" validate:"omitempty,gte=0"`
	AvailabilityDate *string  `json:"availability_date,omitempty"`
	NoticePeriod     *string  `json:"notice_period,omitempty"`
	City             *string  `json:"city,omitempty"`
	CVSummary        *string  `json:"cv_summary,omitempty"`
	CVBullets        []string `json:"cv_bullets,omitempty"`
}

// Validate checks numeric ranges. The engine itself accepts unvalidated input.
func (c *Candidate) Validate() error {
	return validate.Struct(c)
}

// AnonymizedCandidate is the disclosure-safe view of a candidate.
type AnonymizedCandidate struct {
	DisplayName string   `json:"display_name"`
	Experience  string   `json:"experience"`
	SalaryRange string   `json:"salary_range"`
	Region      string   `json:"region"`
	Skills      []string `json:"skills"`
	Revealed    bool     `json:"revealed"`
}
