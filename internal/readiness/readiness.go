// Package readiness scores how complete a candidate exposé or a company profile is.
//
// Both checklists have exactly seven items and the score is round(100*k/7), so only
// eight distinct scores are reachable: 0, 14, 29, 43, 57, 71, 86 and 100.
package readiness

import (
	"math"
	"strings"

	"github.com/jonathan/talentbridge/internal/types"
)

// Level is the exposé readiness tier.
type Level string

// Readiness tiers.
const (
	LevelReady      Level = "ready"
	LevelPartial    Level = "partial"
	LevelIncomplete Level = "incomplete"
)

// Tier thresholds and badges.
const (
	ReadyThreshold   = 85
	PartialThreshold = 50

	BadgeReady      = "Exposé-Ready"
	BadgePartial    = "Teilweise"
	BadgeIncomplete = "Unvollständig"

	// MissingAll is the single missing-field entry reported for a nil candidate.
	MissingAll = "Alle Daten fehlen"

	minSkills = 3
)

// ExposeResult is the readiness of a candidate exposé.
type ExposeResult struct {
	Score         int      `json:"score"`
	MissingFields []string `json:"missing_fields"`
	Level         Level    `json:"level"`
	Badge         string   `json:"badge"`
}

type candidateCheck struct {
	label string
	ok    func(c *types.Candidate) bool
}

// exposeChecklist is evaluated in order; missing fields are reported in this order.
var exposeChecklist = []candidateCheck{
	{"Mindestens 3 Skills", func(c *types.Candidate) bool { return len(nonBlank(c.Skills)) >= minSkills }},
	{"Berufserfahrung", func(c *types.Candidate) bool { return c.ExperienceYears != nil && *c.ExperienceYears > 0 }},
	{"Gehaltsvorstellung", func(c *types.Candidate) bool { return c.ExpectedSalary != nil && *c.ExpectedSalary > 0 }},
	{"Verfügbarkeit", func(c *types.Candidate) bool { return present(c.AvailabilityDate) || present(c.NoticePeriod) }},
	{"Standort", func(c *types.Candidate) bool { return present(c.City) }},
	{"CV-Zusammenfassung", func(c *types.Candidate) bool { return present(c.CVSummary) }},
	{"CV-Highlights", func(c *types.Candidate) bool { return len(nonBlank(c.CVBullets)) > 0 }},
}

// Expose evaluates the exposé checklist for a candidate.
func Expose(c *types.Candidate) ExposeResult {
	if c == nil {
		return ExposeResult{
			Score:         0,
			MissingFields: []string{MissingAll},
			Level:         LevelIncomplete,
			Badge:         BadgeIncomplete,
		}
	}

	missing := make([]string, 0, len(exposeChecklist))
	for _, check := range exposeChecklist {
		if !check.ok(c) {
			missing = append(missing, check.label)
		}
	}

	score := percentage(len(exposeChecklist)-len(missing), len(exposeChecklist))
	level, badge := tier(score)

	return ExposeResult{
		Score:         score,
		MissingFields: missing,
		Level:         level,
		Badge:         badge,
	}
}

func tier(score int) (Level, string) {
	switch {
	case score >= ReadyThreshold:
		return LevelReady, BadgeReady
	case score >= PartialThreshold:
		return LevelPartial, BadgePartial
	default:
		return LevelIncomplete, BadgeIncomplete
	}
}

func percentage(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(passed) / float64(total)))
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
