package health

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/talentbridge/internal/types"
)

// Severity ranks how long candidates have been stuck in a stage.
type Severity string

// Severities. SeverityNone is never reported as a bottleneck.
const (
	SeverityNone     Severity = "none"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Dwell thresholds in days.
const (
	CriticalDays = 7
	HighDays     = 5
	MediumDays   = 3

	hoursPerDay = 24
)

// SeverityFor classifies elapsed hours in a stage.
func SeverityFor(hoursInStage float64) Severity {
	days := hoursInStage / hoursPerDay
	switch {
	case days >= CriticalDays:
		return SeverityCritical
	case days >= HighDays:
		return SeverityHigh
	case days >= MediumDays:
		return SeverityMedium
	default:
		return SeverityNone
	}
}

// DealInput is a single deal (submission) and how long it has been in its stage.
type DealInput struct {
	Stage        string  `json:"stage" validate:"required"`
	HoursInStage float64 `json:"hours_in_stage" validate:"gte=0"`
}

// DealResult is the health of a single deal.
type DealResult struct {
	Stage       string   `json:"stage"`
	DaysInStage float64  `json:"days_in_stage"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
}

// Deal classifies a single deal by its dwell time.
func Deal(in DealInput) DealResult {
	severity := SeverityFor(in.HoursInStage)
	days := roundTenth(in.HoursInStage / hoursPerDay)

	message := "Im Zeitplan"
	if severity != SeverityNone {
		message = fmt.Sprintf("Seit %d Tagen in %s", int(math.Floor(in.HoursInStage/hoursPerDay)), in.Stage)
	}

	return DealResult{
		Stage:       in.Stage,
		DaysInStage: days,
		Severity:    severity,
		Message:     message,
	}
}

// Bottleneck is a stage whose average dwell time crossed a threshold.
type Bottleneck struct {
	Stage    string   `json:"stage"`
	Count    int      `json:"count"`
	AvgHours float64  `json:"avg_hours"`
	AvgDays  float64  `json:"avg_days"`
	Severity Severity `json:"severity"`
}

// Bottlenecks groups candidates by current stage and reports the stages whose average
// dwell is at least MediumDays, slowest first. Ties keep pipeline order.
func Bottlenecks(dwells []types.StageDwell) []Bottleneck {
	type stat struct {
		count int
		hours float64
		order int
	}

	stats := make(map[string]*stat)
	for _, d := range dwells {
		s, ok := stats[d.Stage]
		if !ok {
			s = &stat{order: stageOrder(d.Stage, len(stats))}
			stats[d.Stage] = s
		}
		s.count++
		s.hours += d.HoursInStage
	}

	bottlenecks := make([]Bottleneck, 0, len(stats))
	orders := make(map[string]int, len(stats))
	for stage, s := range stats {
		avg := s.hours / float64(s.count)
		severity := SeverityFor(avg)
		if severity == SeverityNone {
			continue
		}
		orders[stage] = s.order
		bottlenecks = append(bottlenecks, Bottleneck{
			Stage:    stage,
			Count:    s.count,
			AvgHours: roundTenth(avg),
			AvgDays:  roundTenth(avg / hoursPerDay),
			Severity: severity,
		})
	}

	sort.SliceStable(bottlenecks, func(i, j int) bool {
		if bottlenecks[i].AvgHours != bottlenecks[j].AvgHours {
			return bottlenecks[i].AvgHours > bottlenecks[j].AvgHours
		}
		return orders[bottlenecks[i].Stage] < orders[bottlenecks[j].Stage]
	})

	return bottlenecks
}

// stageOrder places known stages in pipeline order and unknown stages after them in
// first-seen order.
func stageOrder(stage string, seen int) int {
	for i, known := range types.SubmissionStages {
		if known == stage {
			return i
		}
	}
	return len(types.SubmissionStages) + seen
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
