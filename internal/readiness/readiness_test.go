package readiness

import (
	"testing"

	"github.com/jonathan/talentbridge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

var reachableScores = []int{0, 14, 29, 43, 57, 71, 86, 100}

func fullCandidate() *types.Candidate {
	return &types.Candidate{
		Skills:          []string{"Go", "Kubernetes", "PostgreSQL"},
		ExperienceYears: floatPtr(6),
		ExpectedSalary:  floatPtr(85000),
		NoticePeriod:    strPtr("3 Monate"),
		City:            strPtr("Berlin"),
		CVSummary:       strPtr("Backend engineer with a focus on payments."),
		CVBullets:       []string{"Built a ledger service"},
	}
}

// candidateWithMask populates checklist item i when bit i of mask is set.
func candidateWithMask(mask int) *types.Candidate {
	full := fullCandidate()
	c := &types.Candidate{}
	if mask&(1<<0) != 0 {
		c.Skills = full.Skills
	}
	if mask&(1<<1) != 0 {
		c.ExperienceYears = full.ExperienceYears
	}
	if mask&(1<<2) != 0 {
		c.ExpectedSalary = full.ExpectedSalary
	}
	if mask&(1<<3) != 0 {
		c.NoticePeriod = full.NoticePeriod
	}
	if mask&(1<<4) != 0 {
		c.City = full.City
	}
	if mask&(1<<5) != 0 {
		c.CVSummary = full.CVSummary
	}
	if mask&(1<<6) != 0 {
		c.CVBullets = full.CVBullets
	}
	return c
}

func TestExpose_AllFieldsPresent(t *testing.T) {
	result := Expose(fullCandidate())
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, LevelReady, result.Level)
	assert.Equal(t, BadgeReady, result.Badge)
	assert.Empty(t, result.MissingFields)
}

func TestExpose_NoFieldsPresent(t *testing.T) {
	result := Expose(&types.Candidate{})
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, LevelIncomplete, result.Level)
	assert.Equal(t, []string{
		"Mindestens 3 Skills",
		"Berufserfahrung",
		"Gehaltsvorstellung",
		"Verfügbarkeit",
		"Standort",
		"CV-Zusammenfassung",
		"CV-Highlights",
	}, result.MissingFields)
}

func TestExpose_Nil(t *testing.T) {
	result := Expose(nil)
	assert.Equal(t, ExposeResult{
		Score:         0,
		MissingFields: []string{MissingAll},
		Level:         LevelIncomplete,
		Badge:         BadgeIncomplete,
	}, result)
}

func TestExpose_Tiers(t *testing.T) {
	tests := []struct {
		name  string
		mask  int
		score int
		level Level
		badge string
	}{
		{"six of seven is ready", 0b0111111, 86, LevelReady, BadgeReady},
		{"five of seven is partial", 0b0011111, 71, LevelPartial, BadgePartial},
		{"four of seven is partial", 0b0001111, 57, LevelPartial, BadgePartial},
		{"three of seven is incomplete", 0b0000111, 43, LevelIncomplete, BadgeIncomplete},
		{"one of seven", 0b1000000, 14, LevelIncomplete, BadgeIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Expose(candidateWithMask(tt.mask))
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.level, result.Level)
			assert.Equal(t, tt.badge, result.Badge)
		})
	}
}

func TestExpose_ScoreIsDiscreteAndMonotonic(t *testing.T) {
	for mask := 0; mask < 1<<7; mask++ {
		result := Expose(candidateWithMask(mask))
		assert.Contains(t, reachableScores, result.Score, "mask %07b", mask)

		for bit := 0; bit < 7; bit++ {
			if mask&(1<<bit) != 0 {
				continue
			}
			more := Expose(candidateWithMask(mask | 1<<bit))
			assert.GreaterOrEqual(t, more.Score, result.Score, "mask %07b + bit %d", mask, bit)
		}
	}
}

func TestExpose_FieldRules(t *testing.T) {
	t.Run("two skills are not enough", func(t *testing.T) {
		c := fullCandidate()
		c.Skills = []string{"Go", "Rust", " "}
		assert.Contains(t, Expose(c).MissingFields, "Mindestens 3 Skills")
	})
	t.Run("zero experience counts as missing", func(t *testing.T) {
		c := fullCandidate()
		c.ExperienceYears = floatPtr(0)
		assert.Contains(t, Expose(c).MissingFields, "Berufserfahrung")
	})
	t.Run("zero salary counts as missing", func(t *testing.T) {
		c := fullCandidate()
		c.ExpectedSalary = floatPtr(0)
		assert.Contains(t, Expose(c).MissingFields, "Gehaltsvorstellung")
	})
	t.Run("availability date satisfies availability", func(t *testing.T) {
		c := fullCandidate()
		c.NoticePeriod = nil
		c.AvailabilityDate = strPtr("2026-12-01")
		assert.NotContains(t, Expose(c).MissingFields, "Verfügbarkeit")
	})
	t.Run("blank summary counts as missing", func(t *testing.T) {
		c := fullCandidate()
		c.CVSummary = strPtr("  ")
		assert.Contains(t, Expose(c).MissingFields, "CV-Zusammenfassung")
	})
}

func TestExpose_Idempotent(t *testing.T) {
	c := candidateWithMask(0b0101010)
	require.Equal(t, Expose(c), Expose(c))
}
