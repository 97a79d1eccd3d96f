package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hirelens/resume-scorer/internal/domain"
)

var (
	// institutionNameRe is case-sensitive: it looks for capitalized
	// institution names in the original-case span.
	institutionNameRe = regexp.MustCompile(`\b[A-Z][a-z]+\s+(?:University|College|Institute)\b`)
	gradYearRe        = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	gpaRe             = regexp.MustCompile(`(?i)\b(?:gpa|grade)\s*:?\s*(\d+\.?\d*)`)
)

const (
	recentGradYear = 2020
	minNotableGPA  = 3.5
)

func (s *Scorer) scoreEducation(education string) (float64, domain.Feedback) {
	fb := newFeedback()
	score := 0.0

	lowered := strings.ToLower(education)
	charCount := utf8.RuneCountInString(strings.TrimSpace(education))

	if education != "" && charCount > 10 {
		score += 2
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Education section present (%d characters)", charCount))
	} else {
		fb.Errors = append(fb.Errors, "Missing or incomplete education section - employers expect detailed educational background")
		fb.Improvements = append(fb.Improvements,
			"Include: Degree, Institution, Graduation Year, Major/Field",
			"Format: 'Bachelor of Science in Accounting, State University, 2020'")
	}

	foundDegrees := []string{}
	if education != "" {
		for _, dp := range s.rules.degreePatterns {
			if dp.re.MatchString(education) {
				foundDegrees = append(foundDegrees, dp.level)
			}
		}
	}
	if len(foundDegrees) > 0 {
		score += 3
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("%d degree type(s): %s", len(foundDegrees), strings.Join(foundDegrees, ", ")))
		if len(foundDegrees) > 1 {
			fb.Strengths = append(fb.Strengths, "Multiple degrees demonstrate commitment to education")
		}
	} else {
		fb.Improvements = append(fb.Improvements,
			"Specify exact degree type: Bachelor's/Master's/MBA/PhD",
			"Examples: 'Bachelor of Science in Accounting' or 'Master of Business Administration'")
	}

	institutionFound := false
	for _, word := range s.rules.institutionWords {
		if strings.Contains(lowered, word) {
			institutionFound = true
			break
		}
	}
	switch {
	case institutionFound && institutionNameRe.MatchString(education):
		score += 2
		fb.Strengths = append(fb.Strengths, "Specific educational institution names provided")
	case institutionFound:
		score += 2
		fb.Strengths = append(fb.Strengths, "Educational institution type mentioned")
		fb.Improvements = append(fb.Improvements, "Include specific institution names for better credibility")
	default:
		fb.Improvements = append(fb.Improvements,
			"Include specific educational institution names",
			"Examples: 'Harvard University', 'State University', 'Community College'")
	}

	years := []string{}
	for _, m := range gradYearRe.FindAllStringSubmatch(education, -1) {
		years = append(years, m[1])
	}
	if len(years) > 0 {
		score++
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Graduation year(s) specified: %s", strings.Join(years, ", ")))
		recent := []string{}
		for _, y := range years {
			if n, err := strconv.Atoi(y); err == nil && n >= recentGradYear {
				recent = append(recent, y)
			}
		}
		if len(recent) > 0 {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Recent education (%s) shows current knowledge", strings.Join(recent, ", ")))
		}
	} else {
		fb.Improvements = append(fb.Improvements,
			"Add graduation year or expected completion date",
			"Include format: 'May 2020' or 'Expected Dec 2025'")
	}

	foundCertCategories := []string{}
	certSummaries := []string{}
	if education != "" {
		for _, cat := range s.rules.certCategories {
			found := []string{}
			for _, e := range cat.entries {
				if e.re.MatchString(education) {
					found = append(found, e.text)
				}
			}
			if len(found) > 0 {
				foundCertCategories = append(foundCertCategories, cat.name)
				certSummaries = append(certSummaries, fmt.Sprintf("%s: %s", cat.name, strings.ToUpper(strings.Join(found, ", "))))
			}
		}
	}
	if len(certSummaries) > 0 {
		score += 2
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Professional certifications: %s", strings.Join(certSummaries, "; ")))
	} else {
		fb.Improvements = append(fb.Improvements,
			"Add relevant professional certifications (CPA, CMA, CIA, CFA)",
			"Include status: 'CPA Licensed' or 'CPA Candidate - Exam in Progress'")
	}

	if education != "" {
		foundFields := []string{}
		for _, f := range s.rules.studyFields {
			if strings.Contains(lowered, f) {
				foundFields = append(foundFields, f)
			}
		}
		if len(foundFields) > 0 {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Relevant field of study: %s", strings.Join(foundFields, ", ")))
		} else {
			fb.Improvements = append(fb.Improvements, "Specify field of study: 'Major in Accounting' or 'Concentration in Finance'")
		}

		if m := gpaRe.FindStringSubmatch(education); m != nil {
			if gpa, err := strconv.ParseFloat(m[1], 64); err == nil && gpa >= minNotableGPA {
				fb.Strengths = append(fb.Strengths, fmt.Sprintf("Excellent academic performance (GPA: %s)", strconv.FormatFloat(gpa, 'g', -1, 64)))
			}
		} else {
			fb.Improvements = append(fb.Improvements, "Include GPA if 3.5+ to showcase academic excellence")
		}

		foundHonors := []string{}
		for _, h := range s.rules.honors {
			if strings.Contains(lowered, h) {
				foundHonors = append(foundHonors, h)
			}
		}
		if len(foundHonors) > 0 {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Academic honors: %s", strings.Join(foundHonors, ", ")))
		}
	}

	fb.Details = map[string]any{
		"degrees_found":            foundDegrees,
		"certification_categories": foundCertCategories,
		"graduation_years":         years,
		"section_length":           charCount,
		"institution_mentioned":    institutionFound,
	}

	return clampScore(score), fb
}
