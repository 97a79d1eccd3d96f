package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hirelens/resume-scorer/internal/domain"
)

// scoreSkills rates the skills section. Domain and soft-skill coverage
// deliberately scan the whole resume, not just the skills span, because
// candidates scatter competencies across sections.
func (s *Scorer) scoreSkills(skills, fullText string, hardMatch domain.KeywordMatch, softFound int) (float64, domain.Feedback) {
	fb := newFeedback()
	score := 0.0

	if utf8.RuneCountInString(strings.TrimSpace(skills)) > 10 {
		score += 2
		fb.Strengths = append(fb.Strengths, "Skills section is present")
	} else {
		fb.Errors = append(fb.Errors, "Missing or incomplete skills section")
	}

	switch n := hardMatch.PresentCount; {
	case n >= 10:
		score += 4
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Excellent domain expertise: %d relevant skills", n))
	case n >= 5:
		score += 3
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Good domain knowledge: %d relevant skills", n))
	case n >= 3:
		score += 2
		fb.Improvements = append(fb.Improvements, fmt.Sprintf("Add more domain-specific skills (found %d)", n))
	default:
		fb.Improvements = append(fb.Improvements, "Add more industry-specific technical skills")
	}

	switch {
	case softFound >= 5:
		score += 2
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Good soft skills coverage: %d skills", softFound))
	case softFound >= 3:
		score++
		fb.Improvements = append(fb.Improvements, "Add a few more soft skills")
	default:
		fb.Improvements = append(fb.Improvements, "Add relevant soft skills (leadership, communication, etc.)")
	}

	lowered := strings.ToLower(fullText)
	foundTech := []string{}
	for _, tech := range s.rules.techKeywords {
		if strings.Contains(lowered, tech) {
			foundTech = append(foundTech, tech)
		}
	}
	if len(foundTech) > 0 {
		score += 2
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Technology skills mentioned: %s", strings.Join(foundTech, ", ")))
	} else {
		fb.Improvements = append(fb.Improvements, "Add relevant software/technology skills")
	}

	return clampScore(score), fb
}
