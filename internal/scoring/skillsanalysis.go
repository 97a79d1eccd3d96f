package scoring

import (
	"strings"

	"github.com/hirelens/resume-scorer/internal/domain"
)

const maxMissingSoftSkills = 10

// AnalyzeHardSkills converts an ordered keyword partition into the
// hard-skill coverage report.
func (s *Scorer) AnalyzeHardSkills(match domain.KeywordMatch) domain.SkillAnalysis {
	assessment := "Low"
	switch {
	case match.Coverage >= 70:
		assessment = "High"
	case match.Coverage >= 40:
		assessment = "Medium"
	}
	return domain.SkillAnalysis{
		Found:          match.Present,
		Missing:        match.Missing,
		Coverage:       match.Coverage,
		Assessment:     assessment,
		TotalFound:     match.PresentCount,
		TotalAvailable: match.TotalCount,
	}
}

// AnalyzeSoftSkills partitions the soft-skill vocabulary by presence in
// the text. The missing list is capped to the first ten in vocabulary
// order; TotalAvailable still reflects the whole vocabulary.
func (s *Scorer) AnalyzeSoftSkills(text string) domain.SkillAnalysis {
	lowered := strings.ToLower(text)
	found := []string{}
	missing := []string{}
	for _, skill := range s.rules.softSkills {
		if strings.Contains(lowered, skill) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	total := len(s.rules.softSkills)
	coverage := 0.0
	if total > 0 {
		coverage = round1(float64(len(found)) / float64(total) * 100)
	}
	assessment := "Needs Improvement"
	switch {
	case coverage >= 60:
		assessment = "Excellent"
	case coverage >= 40:
		assessment = "Good"
	}
	if len(missing) > maxMissingSoftSkills {
		missing = missing[:maxMissingSoftSkills]
	}

	return domain.SkillAnalysis{
		Found:          found,
		Missing:        missing,
		Coverage:       coverage,
		Assessment:     assessment,
		TotalFound:     len(found),
		TotalAvailable: total,
	}
}
