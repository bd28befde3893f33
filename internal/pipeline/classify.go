// Package pipeline classifies where a job stands in its hiring pipeline.
package pipeline

import "github.com/jonathan/talentbridge/internal/types"

// Stage is the coarse pipeline position of a job.
type Stage string

// Pipeline stages, from empty to filled.
const (
	StageNew          Stage = "new"
	StageSourcing     Stage = "sourcing"
	StageScreening    Stage = "screening"
	StageInterviewing Stage = "interviewing"
	StageOffering     Stage = "offering"
	StageFilled       Stage = "filled"
)

// Health is the operational health of a job's pipeline.
type Health string

// Pipeline health values.
const (
	HealthOnTrack        Health = "on_track"
	HealthNeedsAttention Health = "needs_attention"
	HealthAtRisk         Health = "at_risk"
	HealthPaused         Health = "paused"
)

// StalledSourcingTotal is the number of candidates in sourcing, with nobody moved to
// screening yet, from which sourcing counts as stalled.
const StalledSourcingTotal = 5

// JobStatus is the classified stage and health of one job.
type JobStatus struct {
	Stage  Stage  `json:"stage"`
	Health Health `json:"health"`
	Paused bool   `json:"paused"`
}

// Classify returns the most advanced stage with a non-zero count.
// Counts are not required to be disjoint; the first match wins.
func Classify(c types.PipelineCounts) Stage {
	switch {
	case c.Hired > 0:
		return StageFilled
	case c.OffersOut > 0:
		return StageOffering
	case c.InInterview > 0:
		return StageInterviewing
	case c.InScreening > 0:
		return StageScreening
	case c.Total > 0:
		return StageSourcing
	default:
		return StageNew
	}
}

// Status classifies the stage and derives health. A paused job skips health scoring.
func Status(c types.PipelineCounts) JobStatus {
	stage := Classify(c)
	if c.Paused {
		return JobStatus{Stage: stage, Health: HealthPaused, Paused: true}
	}
	return JobStatus{Stage: stage, Health: healthOf(stage, c)}
}

func healthOf(stage Stage, c types.PipelineCounts) Health {
	switch {
	case c.Total == 0:
		return HealthNeedsAttention
	case c.Rejected*2 > c.Total:
		return HealthAtRisk
	case stage == StageSourcing && c.Total >= StalledSourcingTotal:
		return HealthNeedsAttention
	default:
		return HealthOnTrack
	}
}
