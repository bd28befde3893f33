package health

import (
	"github.com/jonathan/talentbridge/internal/types"
)

// funnelStages are the forward stages; rejected candidates leave the funnel.
var funnelStages = []string{
	types.SubmissionSubmitted,
	types.SubmissionScreening,
	types.SubmissionInterview,
	types.SubmissionSecondInterview,
	types.SubmissionOffer,
	types.SubmissionHired,
}

// FunnelStep is one stage of the conversion funnel.
type FunnelStep struct {
	Stage string `json:"stage"`
	// Reached counts candidates currently in this stage or any later forward stage.
	Reached int `json:"reached"`
	// Conversion is the percentage of the previous step that reached this one,
	// nil for the first step or when the previous step is empty.
	Conversion *float64 `json:"conversion"`
}

// Funnel derives reached-stage counts and step conversions from current stage counts.
func Funnel(counts types.SubmissionCounts) []FunnelStep {
	steps := make([]FunnelStep, len(funnelStages))

	reached := 0
	for i := len(funnelStages) - 1; i >= 0; i-- {
		reached += counts.Count(funnelStages[i])
		steps[i] = FunnelStep{Stage: funnelStages[i], Reached: reached}
	}

	for i := 1; i < len(steps); i++ {
		if prev := steps[i-1].Reached; prev > 0 {
			pct := roundTenth(100 * float64(steps[i].Reached) / float64(prev))
			steps[i].Conversion = &pct
		}
	}

	return steps
}
