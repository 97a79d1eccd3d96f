package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hirelens/resume-scorer/internal/domain"
)

var (
	companyNameRe = regexp.MustCompile(`(?i)\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*(?:inc|corp|llc|ltd|company|group|firm)\b`)
	jobTitleRe    = regexp.MustCompile(`(?i)\b(?:manager|senior|analyst|associate|director|specialist|lead|coordinator)\b`)
	yearRangeRe   = regexp.MustCompile(`\b(?:19|20)\d{2}\b.*?(?:19|20)\d{2}\b`)
	durationRe    = regexp.MustCompile(`(?i)\b\d+\s*(?:years?|months?)\b`)
	quantityRe    = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?%?(?:\s*(?:million|thousand|k|m))?\b`)
)

func (s *Scorer) scoreExperience(experience string) (float64, domain.Feedback) {
	fb := newFeedback()
	score := 0.0

	if utf8.RuneCountInString(strings.TrimSpace(experience)) > 20 {
		score += 2
		fb.Strengths = append(fb.Strengths, "Work experience section is present")
	} else {
		fb.Errors = append(fb.Errors, "Missing or incomplete work experience section")
	}

	if companyNameRe.MatchString(experience) {
		score++
		fb.Strengths = append(fb.Strengths, "Company names mentioned")
	}
	if jobTitleRe.MatchString(experience) {
		score++
		fb.Strengths = append(fb.Strengths, "Job titles clearly stated")
	}

	if yearRangeRe.MatchString(experience) || durationRe.MatchString(experience) {
		score++
		fb.Strengths = append(fb.Strengths, "Employment dates/duration provided")
	} else {
		fb.Improvements = append(fb.Improvements, "Add employment dates and duration")
	}

	lowered := strings.ToLower(experience)
	actionCount := 0
	for _, w := range s.rules.actionWords {
		if strings.Contains(lowered, w) {
			actionCount++
		}
	}
	switch {
	case actionCount >= 5:
		score += 2
		fb.Strengths = append(fb.Strengths, "Strong use of action words")
	case actionCount >= 3:
		score++
		fb.Strengths = append(fb.Strengths, "Good use of action words")
	default:
		fb.Improvements = append(fb.Improvements, "Add more strong action words (achieved, managed, led, etc.)")
	}

	if quantityRe.MatchString(experience) {
		score += 2
		fb.Strengths = append(fb.Strengths, "Quantifiable achievements mentioned")
	} else {
		fb.Improvements = append(fb.Improvements, "Add specific numbers and metrics to show impact")
	}

	return clampScore(score), fb
}
