package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `c.id::text, c.full_name, c.skills, c.experience_years::float8,
	c.expected_salary::float8, to_char(c.available_from, 'YYYY-MM-DD'), c.notice_period,
	c.city, c.cv_summary, c.cv_bullets`

func scanCandidate(row pgx.Row, rec *CandidateRecord) error {
	c := &rec.Candidate
	return row.Scan(&c.ID, &rec.FullName, &c.Skills, &c.ExperienceYears, &c.ExpectedSalary,
		&c.AvailabilityDate, &c.NoticePeriod, &c.City, &c.CVSummary, &c.CVBullets)
}

// GetCandidate retrieves a candidate by ID. Returns nil, nil when not found.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*CandidateRecord, error) {
	var rec CandidateRecord
	err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates c WHERE c.id = $1`,
		id,
	), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &rec, nil
}
