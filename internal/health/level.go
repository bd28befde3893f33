// Package health scores pipeline activity with additive rule accumulation and detects
// stages where candidates dwell for too long.
package health

// Level is the discrete health classification.
type Level string

// Health levels.
const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelWarning   Level = "warning"
	LevelCritical  Level = "critical"
)

// Issue messages in accumulation order.
const (
	IssueNoCandidates    = "Keine Kandidaten"
	IssueNoInterviews    = "Keine Interviews"
	IssueFewRecruiters   = "Wenige Recruiter"
	IssueStale           = "Stelle veraltet"
	IssueNoNewCandidates = "Keine neuen Kandidaten"
)

var levelMessages = map[Level]string{
	LevelExcellent: "Pipeline läuft sehr gut",
	LevelGood:      "Pipeline läuft",
	LevelWarning:   "Pipeline braucht Aufmerksamkeit",
	LevelCritical:  "Pipeline kritisch",
}

// Cutoffs maps an accumulated score onto a level. Anything below Warning is critical.
type Cutoffs struct {
	Excellent int
	Good      int
	Warning   int
}

// Level classifies a score. Every integer maps to exactly one level.
func (c Cutoffs) Level(score int) Level {
	switch {
	case score >= c.Excellent:
		return LevelExcellent
	case score >= c.Good:
		return LevelGood
	case score >= c.Warning:
		return LevelWarning
	default:
		return LevelCritical
	}
}

// Tier awards points for the first threshold a value reaches.
type Tier struct {
	Min    int
	Points int
}

// award returns the points of the first tier whose minimum value reaches.
// Tiers must be ordered by descending Min.
func award(value int, tiers []Tier) (int, bool) {
	for _, t := range tiers {
		if value >= t.Min {
			return t.Points, true
		}
	}
	return 0, false
}

// Result is a scored health classification.
type Result struct {
	Score   int      `json:"score"`
	Level   Level    `json:"level"`
	Issues  []string `json:"issues"`
	Message string   `json:"message"`
}

func newResult(score int, cutoffs Cutoffs, issues []string) Result {
	level := cutoffs.Level(score)
	message := levelMessages[level]
	if len(issues) > 0 {
		message = issues[0]
	}
	return Result{
		Score:   score,
		Level:   level,
		Issues:  issues,
		Message: message,
	}
}
