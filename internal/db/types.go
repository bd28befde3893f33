package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talentbridge/internal/types"
)

// Job statuses stored in jobs.status.
const (
	JobStatusActive = "active"
	JobStatusPaused = "paused"
	JobStatusClosed = "closed"
)

// NewCandidateWindow is the look-back window for "new candidates" on the client dashboard.
const NewCandidateWindow = 7 * 24 * time.Hour

// CandidateRecord is a candidate row with the identifying fields the anonymizer hides.
type CandidateRecord struct {
	Candidate types.Candidate
	FullName  string
}

// JobSnapshot is everything the job evaluators need about one job.
type JobSnapshot struct {
	ID         uuid.UUID               `json:"id"`
	ClientID   uuid.UUID               `json:"client_id"`
	CompanyID  uuid.UUID               `json:"company_id"`
	Title      string                  `json:"title"`
	Status     string                  `json:"status"`
	Company    types.CompanyAttributes `json:"company"`
	Counts     types.SubmissionCounts  `json:"counts"`
	Recruiters int                     `json:"recruiters"`
	CreatedAt  time.Time               `json:"created_at"`
}

// Paused reports whether the job's pipeline has been put on hold.
func (j *JobSnapshot) Paused() bool {
	return j.Status == JobStatusPaused
}

// DaysOpen returns whole days between job creation and now, never negative.
func (j *JobSnapshot) DaysOpen(now time.Time) int {
	return daysBetween(j.CreatedAt, now)
}

// ActiveCandidates counts submissions that have not been rejected.
func (j *JobSnapshot) ActiveCandidates() int {
	return j.Counts.Total() - j.Counts.Rejected
}

// Interviews counts submissions in either interview round.
func (j *JobSnapshot) Interviews() int {
	return j.Counts.Interview + j.Counts.SecondInterview
}

// ClientActivity aggregates a client's recruiting activity across active jobs.
type ClientActivity struct {
	ClientID        uuid.UUID  `json:"client_id"`
	ActiveJobs      int        `json:"active_jobs"`
	TotalCandidates int        `json:"total_candidates"`
	Interviews      int        `json:"interviews"`
	Recruiters      int        `json:"recruiters"`
	NewCandidates7d int        `json:"new_candidates_7d"`
	FirstJobAt      *time.Time `json:"first_job_at,omitempty"`
}

// DaysActive returns whole days since the client's first job, 0 without jobs.
func (a *ClientActivity) DaysActive(now time.Time) int {
	if a.FirstJobAt == nil {
		return 0
	}
	return daysBetween(*a.FirstJobAt, now)
}

// SubmissionView joins a submission with its candidate, company and disclosure flags.
type SubmissionView struct {
	ID                uuid.UUID
	JobID             uuid.UUID
	Stage             string
	Candidate         CandidateRecord
	Company           types.CompanyAttributes
	CandidateRevealed bool
	CompanyRevealed   bool
}

func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// countsFromStages folds per-stage row counts into SubmissionCounts. Unknown stages are
// ignored.
func countsFromStages(byStage map[string]int) types.SubmissionCounts {
	var c types.SubmissionCounts
	for stage, n := range byStage {
		switch stage {
		case types.SubmissionSubmitted:
			c.Submitted += n
		case types.SubmissionScreening:
			c.Screening += n
		case types.SubmissionInterview:
			c.Interview += n
		case types.SubmissionSecondInterview:
			c.SecondInterview += n
		case types.SubmissionOffer:
			c.Offer += n
		case types.SubmissionHired:
			c.Hired += n
		case types.SubmissionRejected:
			c.Rejected += n
		}
	}
	return c
}
