package health

// JobInput is the activity snapshot of a single job.
type JobInput struct {
	Candidates int `json:"candidates" validate:"gte=0"`
	Interviews int `json:"interviews" validate:"gte=0"`
	Recruiters int `json:"recruiters" validate:"gte=0"`
	DaysOpen   int `json:"days_open" validate:"gte=0"`
}

// JobRules holds the cut points of the job health score.
type JobRules struct {
	Candidates []Tier
	Interviews []Tier
	Recruiters []Tier

	// "no interviews" is only reported once a job has more candidates than this
	// and has been open longer than InterviewGateDays.
	InterviewGateCandidates int
	InterviewGateDays       int
	// "few recruiters" is only reported after this many days open.
	RecruiterGateDays int
	// "stale" is reported past StaleDays when fewer than StaleCandidates are in the pipeline.
	StaleDays       int
	StaleCandidates int

	// Recency points: open for fewer than FreshDays, else fewer than RecentDays.
	FreshDays    int
	FreshPoints  int
	RecentDays   int
	RecentPoints int

	Cutoffs Cutoffs
}

// DefaultJobRules are the cut points the dashboards are tuned against.
var DefaultJobRules = JobRules{
	Candidates:              []Tier{{5, 30}, {2, 20}, {1, 10}},
	Interviews:              []Tier{{2, 30}, {1, 20}},
	Recruiters:              []Tier{{3, 25}, {1, 15}},
	InterviewGateCandidates: 3,
	InterviewGateDays:       14,
	RecruiterGateDays:       7,
	StaleDays:               45,
	StaleCandidates:         3,
	FreshDays:               14,
	FreshPoints:             15,
	RecentDays:              30,
	RecentPoints:            10,
	Cutoffs:                 Cutoffs{Excellent: 70, Good: 45, Warning: 20},
}

// Job scores a single job with DefaultJobRules.
func Job(in JobInput) Result {
	return DefaultJobRules.Evaluate(in)
}

// Evaluate scores a job: candidates, interviews, recruiter engagement, then recency.
func (r JobRules) Evaluate(in JobInput) Result {
	score := 0
	issues := make([]string, 0)

	if points, ok := award(in.Candidates, r.Candidates); ok {
		score += points
	} else {
		issues = append(issues, IssueNoCandidates)
	}

	if points, ok := award(in.Interviews, r.Interviews); ok {
		score += points
	} else if in.Candidates > r.InterviewGateCandidates && in.DaysOpen > r.InterviewGateDays {
		issues = append(issues, IssueNoInterviews)
	}

	if points, ok := award(in.Recruiters, r.Recruiters); ok {
		score += points
	} else if in.DaysOpen > r.RecruiterGateDays {
		issues = append(issues, IssueFewRecruiters)
	}

	switch {
	case in.DaysOpen < r.FreshDays:
		score += r.FreshPoints
	case in.DaysOpen < r.RecentDays:
		score += r.RecentPoints
	case in.DaysOpen > r.StaleDays && in.Candidates < r.StaleCandidates:
		issues = append(issues, IssueStale)
	}

	return newResult(score, r.Cutoffs, issues)
}
