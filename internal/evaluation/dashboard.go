package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talentbridge/internal/db"
	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/logger"
)

// JobSummary is one job row of the client dashboard.
type JobSummary struct {
	Health      *JobHealthReport    `json:"health"`
	Pipeline    *JobPipelineReport  `json:"pipeline"`
	Bottlenecks []health.Bottleneck `json:"bottlenecks"`
}

// Dashboard is the client-level recruiting overview.
type Dashboard struct {
	ClientID   uuid.UUID               `json:"client_id"`
	Recruiting health.RecruitingResult `json:"recruiting"`
	Jobs       []JobSummary            `json:"jobs"`
}

// ClientDashboard evaluates the client's recruiting health and every open job. Jobs are
// evaluated concurrently, at most Options.Concurrency at a time, and returned in the
// store's job order. Jobs deleted while the dashboard is built are skipped.
func (s *Service) ClientDashboard(ctx context.Context, clientID uuid.UUID) (*Dashboard, error) {
	log := logger.WithFields(s.logger, logger.IDFields(logger.FieldClientID, clientID.String())...)

	jobIDs, err := s.store.ListClientJobIDs(ctx, clientID)
	if err != nil {
		return nil, err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	summaries := make([]*JobSummary, len(jobIDs))
	var recruiting health.RecruitingResult

	g.Go(func() error {
		activity, err := s.store.GetClientActivity(gCtx, clientID)
		if err != nil {
			return fmt.Errorf("client activity: %w", err)
		}
		if activity == nil {
			activity = &db.ClientActivity{ClientID: clientID}
		}
		recruiting = health.Recruiting(health.RecruitingInput{
			ActiveJobs:      activity.ActiveJobs,
			TotalCandidates: activity.TotalCandidates,
			Interviews:      activity.Interviews,
			Recruiters:      activity.Recruiters,
			NewCandidates7d: activity.NewCandidates7d,
			DaysActive:      activity.DaysActive(s.now()),
		})
		return nil
	})

	for i, jobID := range jobIDs {
		g.Go(func() error {
			summary, err := s.jobSummary(gCtx, jobID)
			if err != nil {
				return fmt.Errorf("job %s: %w", jobID, err)
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("dashboard evaluation failed", zap.Error(err))
		return nil, err
	}

	jobs := make([]JobSummary, 0, len(summaries))
	for i, summary := range summaries {
		if summary == nil {
			log.Debug("job disappeared during evaluation", zap.String(logger.FieldJobID, jobIDs[i].String()))
			continue
		}
		jobs = append(jobs, *summary)
	}

	log.Debug("built client dashboard", zap.Int("jobs", len(jobs)), zap.Int("score", recruiting.Score))

	return &Dashboard{ClientID: clientID, Recruiting: recruiting, Jobs: jobs}, nil
}

// jobSummary returns nil, nil when the job no longer exists.
func (s *Service) jobSummary(ctx context.Context, jobID uuid.UUID) (*JobSummary, error) {
	snap, err := s.store.GetJobSnapshot(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}

	dwells, err := s.store.ListStageDwell(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return &JobSummary{
		Health:      s.jobHealth(snap),
		Pipeline:    jobPipeline(snap),
		Bottlenecks: health.Bottlenecks(dwells),
	}, nil
}
