package scoring

import (
	"regexp"
	"strings"
)

// ContactInfo records which contact details were detected anywhere in
// the resume.
type ContactInfo struct {
	HasName     bool
	HasEmail    bool
	HasPhone    bool
	HasLinkedIn bool
}

var (
	// properNameRe relies on original casing, so callers must not
	// lowercase the text before contact analysis.
	properNameRe = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
	emailRe      = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	usPhoneRe    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)

	phoneRes = []*regexp.Regexp{
		usPhoneRe,
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}\b`),
	}

	linkedinMarkers = []string{"linkedin.com", "linkedin", "/in/", "linkedin.in"}
)

// AnalyzeContact reports which contact details appear in the text.
func AnalyzeContact(text string) ContactInfo {
	lower := strings.ToLower(text)
	info := ContactInfo{
		HasName:  properNameRe.MatchString(text),
		HasEmail: emailRe.MatchString(text),
	}
	for _, re := range phoneRes {
		if re.MatchString(text) {
			info.HasPhone = true
			break
		}
	}
	for _, marker := range linkedinMarkers {
		if strings.Contains(lower, marker) {
			info.HasLinkedIn = true
			break
		}
	}
	return info
}
