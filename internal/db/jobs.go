package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talentbridge/internal/types"
)

// GetJobSnapshot retrieves a job with its company attributes, stage counts and the
// number of distinct recruiters who submitted to it. Returns nil, nil when not found.
func (db *DB) GetJobSnapshot(ctx context.Context, jobID uuid.UUID) (*JobSnapshot, error) {
	var s JobSnapshot
	dest := []any{&s.ID, &s.ClientID, &s.CompanyID, &s.Title, &s.Status, &s.CreatedAt}
	dest = append(dest, companyAttributeDest(&s.Company)...)
	dest = append(dest, &s.Recruiters)

	err := db.pool.QueryRow(ctx,
		`SELECT j.id, j.client_id, j.company_id, j.title, j.status, j.created_at,
		        `+companyAttributeColumns+`,
		        (SELECT COUNT(DISTINCT sub.recruiter_id) FROM submissions sub WHERE sub.job_id = j.id)
		 FROM jobs j JOIN companies co ON co.id = j.company_id
		 WHERE j.id = $1`,
		jobID,
	).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	counts, err := db.stageCounts(ctx, jobID)
	if err != nil {
		return nil, err
	}
	s.Counts = counts

	return &s, nil
}

func (db *DB) stageCounts(ctx context.Context, jobID uuid.UUID) (types.SubmissionCounts, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT stage, COUNT(*) FROM submissions WHERE job_id = $1 GROUP BY stage`,
		jobID,
	)
	if err != nil {
		return types.SubmissionCounts{}, fmt.Errorf("failed to count submissions: %w", err)
	}
	defer rows.Close()

	byStage := make(map[string]int)
	for rows.Next() {
		var stage string
		var n int
		if err := rows.Scan(&stage, &n); err != nil {
			return types.SubmissionCounts{}, fmt.Errorf("failed to scan submission count: %w", err)
		}
		byStage[stage] = n
	}
	if err := rows.Err(); err != nil {
		return types.SubmissionCounts{}, fmt.Errorf("error iterating submission counts: %w", err)
	}

	return countsFromStages(byStage), nil
}

// ListClientJobIDs returns the IDs of a client's non-closed jobs, oldest first.
func (db *DB) ListClientJobIDs(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id FROM jobs WHERE client_id = $1 AND status <> $2 ORDER BY created_at, id`,
		clientID, JobStatusClosed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list client jobs: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to scan client jobs: %w", err)
	}
	return ids, nil
}

// ListStageDwell returns how long each open submission of a job has been in its stage.
// Hired and rejected submissions are terminal and excluded.
func (db *DB) ListStageDwell(ctx context.Context, jobID uuid.UUID) ([]types.StageDwell, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id::text, stage,
		        EXTRACT(EPOCH FROM (NOW() - stage_entered_at))::float8 / 3600
		 FROM submissions
		 WHERE job_id = $1 AND stage NOT IN ($2, $3)
		 ORDER BY stage_entered_at`,
		jobID, types.SubmissionHired, types.SubmissionRejected,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage dwell: %w", err)
	}
	defer rows.Close()

	var dwells []types.StageDwell
	for rows.Next() {
		var d types.StageDwell
		if err := rows.Scan(&d.CandidateID, &d.Stage, &d.HoursInStage); err != nil {
			return nil, fmt.Errorf("failed to scan stage dwell: %w", err)
		}
		dwells = append(dwells, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stage dwell: %w", err)
	}

	return dwells, nil
}

// GetClientActivity aggregates a client's active jobs and their submissions.
func (db *DB) GetClientActivity(ctx context.Context, clientID uuid.UUID) (*ClientActivity, error) {
	a := ClientActivity{ClientID: clientID}
	since := time.Now().Add(-NewCandidateWindow)

	err := db.pool.QueryRow(ctx,
		`SELECT
		    COUNT(DISTINCT j.id) FILTER (WHERE j.status = $2),
		    COUNT(s.id) FILTER (WHERE j.status = $2 AND s.stage <> $3),
		    COUNT(s.id) FILTER (WHERE j.status = $2 AND s.stage IN ($4, $5)),
		    COUNT(DISTINCT s.recruiter_id) FILTER (WHERE j.status = $2),
		    COUNT(s.id) FILTER (WHERE j.status = $2 AND s.created_at >= $6),
		    MIN(j.created_at)
		 FROM jobs j LEFT JOIN submissions s ON s.job_id = j.id
		 WHERE j.client_id = $1`,
		clientID, JobStatusActive, types.SubmissionRejected,
		types.SubmissionInterview, types.SubmissionSecondInterview, since,
	).Scan(&a.ActiveJobs, &a.TotalCandidates, &a.Interviews, &a.Recruiters,
		&a.NewCandidates7d, &a.FirstJobAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get client activity: %w", err)
	}

	return &a, nil
}
