package evaluation

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talentbridge/internal/db"
	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/logger"
	"github.com/jonathan/talentbridge/internal/pipeline"
	"github.com/jonathan/talentbridge/internal/types"
)

// JobHealthReport is the activity score of one job.
type JobHealthReport struct {
	JobID    uuid.UUID       `json:"job_id"`
	ClientID uuid.UUID       `json:"client_id"`
	Title    string          `json:"title"`
	Input    health.JobInput `json:"input"`
	health.Result
}

// JobPipelineReport is the stage, pipeline health and funnel of one job.
type JobPipelineReport struct {
	JobID    uuid.UUID              `json:"job_id"`
	ClientID uuid.UUID              `json:"client_id"`
	Title    string                 `json:"title"`
	Counts   types.SubmissionCounts `json:"counts"`
	pipeline.JobStatus
	Funnel []health.FunnelStep `json:"funnel"`
}

// JobHealth scores the activity of a job.
func (s *Service) JobHealth(ctx context.Context, jobID uuid.UUID) (*JobHealthReport, error) {
	snap, err := s.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.jobHealth(snap), nil
}

func (s *Service) jobHealth(snap *db.JobSnapshot) *JobHealthReport {
	in := health.JobInput{
		Candidates: snap.ActiveCandidates(),
		Interviews: snap.Interviews(),
		Recruiters: snap.Recruiters,
		DaysOpen:   snap.DaysOpen(s.now()),
	}
	result := health.Job(in)

	s.logger.Debug("scored job health",
		append(logger.IDFields(logger.FieldJobID, snap.ID.String()),
			zap.Int("score", result.Score),
			zap.String("level", string(result.Level)))...)

	return &JobHealthReport{JobID: snap.ID, ClientID: snap.ClientID, Title: snap.Title, Input: in, Result: result}
}

// JobPipeline classifies the pipeline stage of a job.
func (s *Service) JobPipeline(ctx context.Context, jobID uuid.UUID) (*JobPipelineReport, error) {
	snap, err := s.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return jobPipeline(snap), nil
}

func jobPipeline(snap *db.JobSnapshot) *JobPipelineReport {
	return &JobPipelineReport{
		JobID:     snap.ID,
		ClientID:  snap.ClientID,
		Title:     snap.Title,
		Counts:    snap.Counts,
		JobStatus: pipeline.Status(snap.Counts.PipelineCounts(snap.Paused())),
		Funnel:    health.Funnel(snap.Counts),
	}
}

// BottleneckReport lists the stages of one job where candidates are stuck.
type BottleneckReport struct {
	JobID       uuid.UUID           `json:"job_id"`
	ClientID    uuid.UUID           `json:"client_id"`
	Bottlenecks []health.Bottleneck `json:"bottlenecks"`
}

// Bottlenecks reports the stages of a job where candidates are stuck.
func (s *Service) Bottlenecks(ctx context.Context, jobID uuid.UUID) (*BottleneckReport, error) {
	snap, err := s.job(ctx, jobID)
	if err != nil {
		return nil, err
	}
	dwells, err := s.store.ListStageDwell(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &BottleneckReport{
		JobID:       snap.ID,
		ClientID:    snap.ClientID,
		Bottlenecks: health.Bottlenecks(dwells),
	}, nil
}
