package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hirelens/resume-scorer/internal/domain"
)

const (
	maxRecommendations = 8
	maxCriticalRecs    = 2
	maxDomainRecs      = 2
	maxContentRecs     = 2
	lowSectionScore    = 7.0
)

var (
	strongVerbRe      = regexp.MustCompile(`\b(?:achieved|managed|led|developed|implemented)\b`)
	entryEvidenceRe   = regexp.MustCompile(`\b(?:project|coursework|internship|volunteer)\b`)
	entryAcademicRe   = regexp.MustCompile(`\b(?:gpa|honor|award|scholarship)\b`)
	midLeadershipRe   = regexp.MustCompile(`\b(?:led|managed|supervised|coordinated)\b`)
	midQuantifiedRe   = regexp.MustCompile(`\d+%|\$\d+|improved.*\d+|increased.*\d+`)
	seniorStrategicRe = regexp.MustCompile(`\b(?:strategy|vision|transformation|initiative|mentored)\b`)
	taxFormRe         = regexp.MustCompile(`\b(?:1040|1120|1065)\b`)
	metricOrMoneyRe   = regexp.MustCompile(`\d+%|\$\d+`)
	teamWordRe        = regexp.MustCompile(`\bteam\b|\bstaff\b`)
)

var weakImpactWords = []string{"improved", "increased", "reduced", "saved"}

// buildRecommendations synthesizes the prioritized advice list: critical
// gaps, level-specific advice, domain-specific advice, content fixes,
// low-section follow-ups and a language note, deduplicated in first-seen
// order and capped at eight entries.
func (s *Scorer) buildRecommendations(lowered, domainKey string, aboutScore, experienceScore float64, issues []domain.GrammarIssue) []string {
	recs := []string{}

	critical := s.missingCriticalElements(lowered, domainKey)
	if len(critical) > maxCriticalRecs {
		critical = critical[:maxCriticalRecs]
	}
	for _, el := range critical {
		recs = append(recs, "CRITICAL: "+el)
	}

	level := DetectLevel(lowered)
	switch level {
	case LevelEntry:
		if !entryEvidenceRe.MatchString(lowered) {
			recs = append(recs, "Add academic projects, internships, or relevant coursework to strengthen entry-level profile")
		}
		if !entryAcademicRe.MatchString(lowered) {
			recs = append(recs, "Include academic achievements (GPA 3.5+, honors, awards) to demonstrate excellence")
		}
	case LevelMid:
		if !midLeadershipRe.MatchString(lowered) {
			recs = append(recs, "Highlight leadership experience - show how you've guided teams or projects")
		}
		if !midQuantifiedRe.MatchString(lowered) {
			recs = append(recs, "Quantify your impact with specific percentages and dollar amounts")
		}
	case LevelSenior:
		if !seniorStrategicRe.MatchString(lowered) {
			recs = append(recs, "Emphasize strategic leadership and mentoring - show your senior-level contributions")
		}
	}

	domainRecs := s.domainRecommendations(lowered, domainKey)
	if len(domainRecs) > maxDomainRecs {
		domainRecs = domainRecs[:maxDomainRecs]
	}
	recs = append(recs, domainRecs...)

	content := contentImprovements(lowered)
	if len(content) > maxContentRecs {
		content = content[:maxContentRecs]
	}
	recs = append(recs, content...)

	if aboutScore < lowSectionScore {
		recs = append(recs, aboutImprovement(level))
	}
	if experienceScore < lowSectionScore {
		recs = append(recs, experienceImprovement(lowered, level))
	}

	recs = append(recs, languageImprovement(issues))

	final := uniqueInOrder(recs)
	if len(final) > maxRecommendations {
		final = final[:maxRecommendations]
	}
	return final
}

func (s *Scorer) missingCriticalElements(lowered, domainKey string) []string {
	missing := []string{}
	if !digitRe.MatchString(lowered) {
		missing = append(missing, "Add quantifiable achievements (percentages, dollar amounts, numbers)")
	}
	if !strongVerbRe.MatchString(lowered) {
		missing = append(missing, "Use strong action verbs to start experience bullet points")
	}
	if required, ok := s.rules.requiredTerms[domainKey]; ok {
		absent := []string{}
		for _, term := range required {
			if !strings.Contains(lowered, term) {
				absent = append(absent, term)
			}
		}
		if len(absent) > 0 {
			missing = append(missing, fmt.Sprintf("Include %s keywords: %s", domainKey, strings.Join(absent, ", ")))
		}
	}
	return missing
}

func (s *Scorer) domainRecommendations(lowered, domainKey string) []string {
	recs := []string{}
	switch domainKey {
	case "auditing":
		if !strings.Contains(lowered, "sox") {
			recs = append(recs, "Add SOX compliance experience - critical for auditing roles")
		}
		if !strings.Contains(lowered, "gaap") && !strings.Contains(lowered, "ifrs") {
			recs = append(recs, "Include GAAP/IFRS knowledge - fundamental for auditing")
		}
	case "taxation":
		if !strings.Contains(lowered, "tax preparation") {
			recs = append(recs, "Specify tax preparation experience (individual, corporate, partnership)")
		}
		if !taxFormRe.MatchString(lowered) {
			recs = append(recs, "Add specific tax form experience (1040, 1120, 1065)")
		}
	case "finance":
		if !strings.Contains(lowered, "financial modeling") {
			recs = append(recs, "Include financial modeling experience - highly valued in finance")
		}
		if !strings.Contains(lowered, "excel") {
			recs = append(recs, "Emphasize Excel proficiency - essential for finance roles")
		}
	}
	return recs
}

func contentImprovements(lowered string) []string {
	improvements := []string{}
	if strings.Contains(lowered, "responsible for") {
		improvements = append(improvements, "Replace 'responsible for' with strong action verbs like 'managed', 'led', 'executed'")
	}
	if strings.Contains(lowered, "helped") || strings.Contains(lowered, "assisted") {
		improvements = append(improvements, "Replace 'helped/assisted' with specific contributions you made")
	}

	sentences := strings.Split(lowered, ".")
	if len(sentences) > maxImprovedSentences {
		sentences = sentences[:maxImprovedSentences]
	}
	for _, sentence := range sentences {
		hasImpact := false
		for _, w := range weakImpactWords {
			if strings.Contains(sentence, w) {
				hasImpact = true
				break
			}
		}
		if hasImpact && !digitRe.MatchString(sentence) {
			improvements = append(improvements, fmt.Sprintf("Quantify achievements like: '%s...'", truncateRunes(strings.TrimSpace(sentence), 50)))
			break
		}
	}
	return improvements
}

func aboutImprovement(level string) string {
	switch level {
	case LevelEntry:
		return "Strengthen summary with academic achievements, relevant coursework, and career objectives"
	case LevelSenior:
		return "Enhance summary to emphasize strategic leadership and business impact"
	default:
		return "Improve summary with quantified achievements and specific expertise areas"
	}
}

func experienceImprovement(lowered, level string) string {
	switch {
	case !metricOrMoneyRe.MatchString(lowered):
		return "Add specific metrics to quantify your impact (percentages, dollar amounts, timeframes)"
	case level == LevelSenior && !teamWordRe.MatchString(lowered):
		return "Highlight team leadership and staff development responsibilities"
	default:
		return "Strengthen experience descriptions with more specific achievements and outcomes"
	}
}

// languageImprovement summarizes issue kinds when findings exist and
// falls back to a generic tense-consistency reminder otherwise.
func languageImprovement(issues []domain.GrammarIssue) string {
	if len(issues) == 0 {
		return "Review for consistency in tense usage and professional language throughout"
	}
	types := []string{}
	for i, issue := range issues {
		if i == 3 {
			break
		}
		types = append(types, issue.Type)
	}
	return fmt.Sprintf("Address %d language issues: focus on %s", len(issues), strings.Join(uniqueInOrder(types), ", "))
}
