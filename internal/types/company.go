//nolint:revive // types is a standard Go package name pattern
package types

// SizeBand is a company headcount band.
type SizeBand string

// Known size bands.
const (
	Size1To10     SizeBand = "1-10"
	Size11To50    SizeBand = "11-50"
	Size51To200   SizeBand = "51-200"
	Size201To500  SizeBand = "201-500"
	Size501To1000 SizeBand = "501-1000"
	Size1001To5K  SizeBand = "1001-5000"
	Size5KPlus    SizeBand = "5000+"
)

// FundingStage is the financing stage of a company.
type FundingStage string

// Known funding stages.
const (
	FundingBootstrapped  FundingStage = "bootstrapped"
	FundingSeed          FundingStage = "seed"
	FundingSeriesA       FundingStage = "series_a"
	FundingSeriesB       FundingStage = "series_b"
	FundingSeriesC       FundingStage = "series_c"
	FundingPrivateEquity FundingStage = "private_equity"
	FundingPublic        FundingStage = "public"
)

// RemoteType is the work model offered for a job.
type RemoteType string

// Work models.
const (
	RemoteFull   RemoteType = "remote"
	RemoteHybrid RemoteType = "hybrid"
	RemoteOnsite RemoteType = "onsite"
)

// Urgency is the hiring urgency of a job.
type Urgency string

// Urgency levels. UrgencyStandard is never shown in descriptors.
const (
	UrgencyStandard Urgency = "standard"
	UrgencyHigh     Urgency = "high"
	UrgencyUrgent   Urgency = "urgent"
)

// CompanyAttributes is the attribute bag used to describe a company without naming it.
type CompanyAttributes struct {
	Name         string       `json:"name,omitempty"`
	Industry     *string      `json:"industry,omitempty"`
	SizeBand     SizeBand     `json:"company_size,omitempty" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1001-5000 5000+"`
	FundingStage FundingStage `json:"funding_stage,omitempty" validate:"omitempty,oneof=bootstrapped seed series_a series_b series_c private_equity public"`
	TechStack    []string     `json:"tech_stack,omitempty"`
	City         *string      `json:"city,omitempty"`
	RemoteType   RemoteType   `json:"remote_type,omitempty" validate:"omitempty,oneof=remote hybrid onsite"`
	Urgency      Urgency      `json:"urgency,omitempty" validate:"omitempty,oneof=standard high urgent"`
}

// Validate checks the categorical fields against their vocabularies.
func (a *CompanyAttributes) Validate() error {
	return validate.Struct(a)
}

// CompanyProfile is the client-maintained company profile scored for completeness.
type CompanyProfile struct {
	Name        string  `json:"name,omitempty"`
	Website     string  `json:"website,omitempty" validate:"omitempty,url"`
	Description string  `json:"description,omitempty"`
	Headcount   *int    `json:"employee_count,omitempty" validate:"omitempty,gte=0"`
	Revenue     *string `json:"revenue,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty" validate:"omitempty,gte=1600,lte=2100"`
	USP         *string `json:"usp,omitempty"`
	LinkedInURL string  `json:"linkedin_url,omitempty" validate:"omitempty,url"`
}

// Validate checks links and numeric ranges.
func (p *CompanyProfile) Validate() error {
	return validate.Struct(p)
}
