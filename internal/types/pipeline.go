//nolint:revive // types is a standard Go package name pattern
package types

// SubmissionCounts holds per-job candidate counts by pipeline stage.
type SubmissionCounts struct {
	Submitted       int `json:"submitted" validate:"gte=0"`
	Screening       int `json:"screening" validate:"gte=0"`
	Interview       int `json:"interview" validate:"gte=0"`
	SecondInterview int `json:"second_interview" validate:"gte=0"`
	Offer           int `json:"offer" validate:"gte=0"`
	Hired           int `json:"hired" validate:"gte=0"`
	Rejected        int `json:"rejected" validate:"gte=0"`
}

// Total returns the number of submissions across all stages, rejected included.
func (s SubmissionCounts) Total() int {
	return s.Submitted + s.Screening + s.Interview + s.SecondInterview + s.Offer + s.Hired + s.Rejected
}

// PipelineCounts converts the stage counts into classifier input.
func (s SubmissionCounts) PipelineCounts(paused bool) PipelineCounts {
	return PipelineCounts{
		Total:       s.Total(),
		InScreening: s.Screening,
		InInterview: s.Interview + s.SecondInterview,
		OffersOut:   s.Offer,
		Hired:       s.Hired,
		Rejected:    s.Rejected,
		Paused:      paused,
	}
}

// Validate checks that no count is negative.
func (s *SubmissionCounts) Validate() error {
	return validate.Struct(s)
}

// PipelineCounts is the aggregate input of the pipeline stage classifier.
// The counts are not guaranteed to be disjoint.
type PipelineCounts struct {
	Total       int  `json:"total" validate:"gte=0"`
	InScreening int  `json:"in_screening" validate:"gte=0"`
	InInterview int  `json:"in_interview" validate:"gte=0"`
	OffersOut   int  `json:"offers_out" validate:"gte=0"`
	Hired       int  `json:"hired" validate:"gte=0"`
	Rejected    int  `json:"rejected" validate:"gte=0"`
	Paused      bool `json:"paused"`
}

// Validate checks that no count is negative.
func (p *PipelineCounts) Validate() error {
	return validate.Struct(p)
}

// StageDwell records how long a single candidate has been in its current stage.
type StageDwell struct {
	CandidateID  string  `json:"candidate_id"`
	Stage        string  `json:"stage" validate:"required"`
	HoursInStage float64 `json:"hours_in_stage" validate:"gte=0"`
}

// Validate checks the stage name and the duration.
func (d *StageDwell) Validate() error {
	return validate.Struct(d)
}

// Candidate submission stages.
const (
	SubmissionSubmitted       = "submitted"
	SubmissionScreening       = "screening"
	SubmissionInterview       = "interview"
	SubmissionSecondInterview = "second_interview"
	SubmissionOffer           = "offer"
	SubmissionHired           = "hired"
	SubmissionRejected        = "rejected"
)

// SubmissionStages lists the stages in pipeline order. Rejected is terminal and last.
var SubmissionStages = []string{
	SubmissionSubmitted,
	SubmissionScreening,
	SubmissionInterview,
	SubmissionSecondInterview,
	SubmissionOffer,
	SubmissionHired,
	SubmissionRejected,
}

// Count returns the count for a named stage, or 0 for an unknown stage.
func (s SubmissionCounts) Count(stage string) int {
	switch stage {
	case SubmissionSubmitted:
		return s.Submitted
	case SubmissionScreening:
		return s.Screening
	case SubmissionInterview:
		return s.Interview
	case SubmissionSecondInterview:
		return s.SecondInterview
	case SubmissionOffer:
		return s.Offer
	case SubmissionHired:
		return s.Hired
	case SubmissionRejected:
		return s.Rejected
	default:
		return 0
	}
}
