package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetSubmissionView retrieves a submission with the candidate and company it links and
// whether each side has opted in to disclosure. Returns nil, nil when not found.
func (db *DB) GetSubmissionView(ctx context.Context, submissionID uuid.UUID) (*SubmissionView, error) {
	var v SubmissionView
	c := &v.Candidate.Candidate
	dest := []any{&v.ID, &v.JobID, &v.Stage, &v.CandidateRevealed, &v.CompanyRevealed,
		&c.ID, &v.Candidate.FullName, &c.Skills, &c.ExperienceYears, &c.ExpectedSalary,
		&c.AvailabilityDate, &c.NoticePeriod, &c.City, &c.CVSummary, &c.CVBullets}
	dest = append(dest, companyAttributeDest(&v.Company)...)

	err := db.pool.QueryRow(ctx,
		`SELECT s.id, s.job_id, s.stage, s.candidate_opted_in, s.company_opted_in,
		        `+candidateColumns+`,
		        `+companyAttributeColumns+`
		 FROM submissions s
		 JOIN candidates c ON c.id = s.candidate_id
		 JOIN jobs j ON j.id = s.job_id
		 JOIN companies co ON co.id = j.company_id
		 WHERE s.id = $1`,
		submissionID,
	).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &v, nil
}
