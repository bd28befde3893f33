package techstack

import "math"

// SkillMatch is the overlap between a candidate's skills and a job's required stack.
type SkillMatch struct {
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Match compares normalized candidate skills against normalized requirements.
// Score is the rounded percentage of requirements covered; no requirements scores 0.
func Match(candidateSkills, required []string) SkillMatch {
	have := make(map[string]bool)
	for _, skill := range NormalizeAll(candidateSkills) {
		have[skill] = true
	}

	result := SkillMatch{
		Matched: make([]string, 0),
		Missing: make([]string, 0),
	}

	wanted := NormalizeAll(required)
	if len(wanted) == 0 {
		return result
	}

	for _, skill := range wanted {
		if have[skill] {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	result.Score = int(math.Round(100 * float64(len(result.Matched)) / float64(len(wanted))))
	return result
}
