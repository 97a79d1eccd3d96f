package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hirelens/resume-scorer/internal/domain"
)

var (
	yearsExperienceRe = regexp.MustCompile(`(?i)\b(\d+)\s*\+?\s*(?:years?|yrs?)\b`)
	firstPersonRe     = regexp.MustCompile(`\b(?:i am|i have|i do|my|me)\b`)
	metricRe          = regexp.MustCompile(`\d+[%$]?`)
	socialHandleRe    = regexp.MustCompile(`(?i)\b(?:linkedin|github|twitter)\b`)
)

// cleanAboutText strips contact artifacts that heading-based capture
// tends to swallow, then recollapses whitespace.
func cleanAboutText(about string) string {
	s := emailRe.ReplaceAllString(about, "")
	s = usPhoneRe.ReplaceAllString(s, "")
	s = socialHandleRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// scoreAbout rates the about/summary span out of 10. Contact checks run
// against the full original-case text because name detection relies on
// capitalization.
func (s *Scorer) scoreAbout(about, fullText string) (float64, domain.Feedback) {
	fb := newFeedback()
	score := 0.0

	cleaned := cleanAboutText(about)
	lowered := strings.ToLower(cleaned)
	charCount := utf8.RuneCountInString(cleaned)
	wordCount := len(strings.Fields(cleaned))

	exists := about != "" && charCount > 10
	if exists {
		score += 2
		fb.Strengths = append(fb.Strengths, "About section is present")
	} else {
		fb.Errors = append(fb.Errors, "Missing or too short About/Summary section - this is critical for first impressions")
		fb.Improvements = append(fb.Improvements, "Add a compelling 2-3 sentence summary highlighting your experience, skills, and career objectives")
	}

	switch {
	case about != "" && charCount >= s.thresholds.AboutOptimalMin && charCount <= s.thresholds.AboutOptimalMax:
		score += 2
		fb.Strengths = append(fb.Strengths, "Optimal length - concise yet informative")
	case about != "" && charCount < s.thresholds.AboutOptimalMin:
		fb.Improvements = append(fb.Improvements,
			"Summary too brief. Expand to include: years of experience, key specialization, notable achievement",
			"Example: 'Experienced CPA with 8+ years in financial auditing, specializing in SOX compliance and risk assessment. Led audit teams for Fortune 500 companies, reducing compliance issues by 40%.'")
	case about != "":
		fb.Improvements = append(fb.Improvements,
			"Summary too lengthy. Condense to focus on most impactful achievements",
			"Remove less relevant details and focus on quantifiable achievements and core competencies")
	}

	keyElements := 0
	if m := yearsExperienceRe.FindStringSubmatch(cleaned); m != nil {
		keyElements++
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Quantifies experience (%s years) - shows career progression", m[1]))
	} else {
		fb.Improvements = append(fb.Improvements,
			"Add specific years of experience (e.g., '5+ years in auditing')",
			"Quantifying experience immediately establishes credibility and seniority level")
	}

	foundExpertise := []string{}
	for _, w := range s.rules.aboutExpertise {
		if strings.Contains(lowered, w) {
			foundExpertise = append(foundExpertise, w)
		}
	}
	if len(foundExpertise) > 0 {
		keyElements++
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Establishes expertise level ('%s')", strings.Join(foundExpertise, ", ")))
	} else {
		fb.Improvements = append(fb.Improvements,
			"Include expertise indicators: 'experienced', 'certified', 'specialist', 'expert'",
			"Example: 'Certified Public Accountant' or 'Experienced financial analyst'")
	}

	foundActions := []string{}
	for _, w := range s.rules.aboutActionWords {
		if strings.Contains(lowered, w) {
			foundActions = append(foundActions, w)
		}
	}
	if len(foundActions) > 0 {
		keyElements++
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Uses impactful action words ('%s')", strings.Join(foundActions, ", ")))
	} else {
		fb.Improvements = append(fb.Improvements,
			"Include strong action verbs: achieved, led, developed, implemented, optimized",
			"Replace weak phrases like 'responsible for' with 'managed', 'led', 'achieved'")
	}
	score += float64(keyElements)

	firstPerson := firstPersonRe.FindAllString(lowered, -1)
	switch {
	case len(firstPerson) > 0:
		fb.Improvements = append(fb.Improvements,
			fmt.Sprintf("Uses first-person perspective (%d instances: %s)", len(firstPerson), strings.Join(uniqueInOrder(firstPerson), ", ")),
			"Convert to third-person for professional tone: 'I am experienced' -> 'Experienced professional'",
			"Example transformation: 'I have 5 years experience' -> 'Professional with 5 years experience'")
	case cleaned != "":
		score++
		fb.Strengths = append(fb.Strengths, "Maintains professional third-person tone throughout")
	}

	foundDomains := []string{}
	for _, group := range s.rules.aboutDomainFocus {
		for _, term := range group.Terms {
			if strings.Contains(lowered, term) {
				foundDomains = append(foundDomains, group.Name)
				break
			}
		}
	}
	if len(foundDomains) > 0 {
		score++
		fb.Strengths = append(fb.Strengths, fmt.Sprintf("Clear specialization in %s", strings.Join(foundDomains, ", ")))
	} else {
		fb.Improvements = append(fb.Improvements,
			"Specify your professional specialization (auditing, taxation, finance, accounting)",
			"Example additions: 'specializing in internal audit', 'focused on tax compliance', 'expertise in financial analysis'")
	}

	if cleaned != "" {
		if metrics := metricRe.FindAllString(cleaned, -1); len(metrics) > 0 {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Includes quantifiable metrics (%s)", strings.Join(metrics, ", ")))
		} else {
			fb.Improvements = append(fb.Improvements, "Consider adding quantifiable achievements: '25% cost reduction', '$2M budget managed', '50+ audits completed'")
		}
	}

	contact := AnalyzeContact(fullText)
	if contact.HasName {
		fb.Strengths = append(fb.Strengths, "Professional name clearly displayed")
	} else {
		fb.Improvements = append(fb.Improvements, "Ensure your full name is prominently displayed at the top")
	}
	if contact.HasEmail {
		fb.Strengths = append(fb.Strengths, "Email address provided for contact")
	} else {
		fb.Improvements = append(fb.Improvements, "Include a professional email address")
	}
	if contact.HasPhone {
		fb.Strengths = append(fb.Strengths, "Phone number available for contact")
	} else {
		fb.Improvements = append(fb.Improvements, "Add your phone number for easy contact")
	}
	if contact.HasLinkedIn {
		fb.Strengths = append(fb.Strengths, "LinkedIn profile linked for professional networking")
	} else {
		fb.Improvements = append(fb.Improvements, "Consider adding your LinkedIn profile URL to enhance professional presence")
	}

	fb.Details = map[string]any{
		"word_count":           wordCount,
		"char_count":           charCount,
		"key_elements_found":   keyElements,
		"first_person_usage":   len(firstPerson),
		"domain_focus":         foundDomains,
		"action_words_used":    foundActions,
		"expertise_indicators": foundExpertise,
		"section_exists":       exists,
		"has_name":             contact.HasName,
		"has_email":            contact.HasEmail,
		"has_phone":            contact.HasPhone,
		"has_linkedin":         contact.HasLinkedIn,
	}

	return clampScore(score), fb
}
