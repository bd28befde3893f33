package health

import "math"

// RecruitingInput is the activity snapshot of a client's whole recruiting effort.
type RecruitingInput struct {
	ActiveJobs      int `json:"active_jobs" validate:"gte=0"`
	TotalCandidates int `json:"total_candidates" validate:"gte=0"`
	Interviews      int `json:"interviews" validate:"gte=0"`
	Recruiters      int `json:"recruiters" validate:"gte=0"`
	NewCandidates7d int `json:"new_candidates_7d" validate:"gte=0"`
	DaysActive      int `json:"days_active" validate:"gte=0"`
}

// RecruitingResult adds the candidates-per-job ratio, which is nil without active jobs.
type RecruitingResult struct {
	Result
	CandidatesPerJob *float64 `json:"candidates_per_job"`
}

// RecruitingRules holds the cut points of the recruiting health score. They differ
// from JobRules on purpose and must not be unified without product sign-off.
type RecruitingRules struct {
	Candidates    []Tier
	Interviews    []Tier
	Recruiters    []Tier
	NewCandidates []Tier

	InterviewGateCandidates int
	RecruiterGateDays       int

	Cutoffs Cutoffs
}

// DefaultRecruitingRules are the cut points of the client dashboard.
var DefaultRecruitingRules = RecruitingRules{
	Candidates:              []Tier{{5, 30}, {2, 20}, {1, 10}},
	Interviews:              []Tier{{2, 25}, {1, 15}},
	Recruiters:              []Tier{{3, 25}, {1, 15}},
	NewCandidates:           []Tier{{3, 20}, {1, 10}},
	InterviewGateCandidates: 3,
	RecruiterGateDays:       7,
	Cutoffs:                 Cutoffs{Excellent: 80, Good: 50, Warning: 25},
}

// Recruiting scores a client's recruiting activity with DefaultRecruitingRules.
func Recruiting(in RecruitingInput) RecruitingResult {
	return DefaultRecruitingRules.Evaluate(in)
}

// Evaluate scores candidates, interviews, recruiters and new candidates of the last 7 days.
func (r RecruitingRules) Evaluate(in RecruitingInput) RecruitingResult {
	score := 0
	issues := make([]string, 0)

	if points, ok := award(in.TotalCandidates, r.Candidates); ok {
		score += points
	} else {
		issues = append(issues, IssueNoCandidates)
	}

	if points, ok := award(in.Interviews, r.Interviews); ok {
		score += points
	} else if in.TotalCandidates > r.InterviewGateCandidates {
		issues = append(issues, IssueNoInterviews)
	}

	if points, ok := award(in.Recruiters, r.Recruiters); ok {
		score += points
	} else if in.DaysActive > r.RecruiterGateDays {
		issues = append(issues, IssueFewRecruiters)
	}

	if points, ok := award(in.NewCandidates7d, r.NewCandidates); ok {
		score += points
	} else if in.ActiveJobs > 0 {
		issues = append(issues, IssueNoNewCandidates)
	}

	result := RecruitingResult{Result: newResult(score, r.Cutoffs, issues)}
	if in.ActiveJobs > 0 {
		ratio := math.Round(float64(in.TotalCandidates)/float64(in.ActiveJobs)*10) / 10
		result.CandidatesPerJob = &ratio
	}
	return result
}
