package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hirelens/resume-scorer/internal/domain"
)

const (
	maxGrammarIssues        = 15
	maxSentenceImprovements = 10
	maxImprovedSentences    = 10
	grammarContextRunes     = 20
	minSentenceRunes        = 10
)

var (
	multiSpaceRe       = regexp.MustCompile(`\s{3,}`)
	missingSpaceRe     = regexp.MustCompile(`[a-z]\.[A-Z]`)
	sentenceSplitRe    = regexp.MustCompile(`[.!?]+`)
	weakVerbRe         = regexp.MustCompile(`(?i)\b(?:was|were|is|are)\s+responsible\s+for\b`)
	vagueQuantifierRe  = regexp.MustCompile(`(?i)\b(?:many|various|several|some)\b`)
	impactVerbRe       = regexp.MustCompile(`(?i)\b(?:improved|increased|reduced|saved|managed)\b`)
	digitRe            = regexp.MustCompile(`\d+`)
	digitOrPercentRe   = regexp.MustCompile(`\d+|%`)
	professionalVerbRe = regexp.MustCompile(`(?i)\b(?:achieved|managed|led|developed|implemented|improved)\b`)
	fillerWordRe       = regexp.MustCompile(`(?i)\b(?:um|uh|like|you know)\b`)
	quantifiedRe       = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s*(?:million|thousand|projects|clients|team)`)
)

// CheckGrammar runs the rule-based grammar, formatting and spelling
// checks plus sentence-level improvement suggestions. Each grammar rule
// and spelling pair reports its first match only; the issue list keeps
// the first 15 findings but the overall score counts all of them.
func (s *Scorer) CheckGrammar(text string) domain.GrammarReport {
	issues := []domain.GrammarIssue{}

	grammarErrors := 0
	for _, rule := range s.rules.grammarRules {
		loc := rule.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		issues = append(issues, domain.GrammarIssue{
			Type:        "grammar",
			Text:        text[loc[0]:loc[1]],
			Description: rule.description,
			Position:    loc[0],
			Context:     contextWindow(text, loc[0], loc[1]),
		})
		grammarErrors++
	}

	formattingIssues := 0
	if loc := multiSpaceRe.FindStringIndex(text); loc != nil {
		issues = append(issues, domain.GrammarIssue{
			Type:        "formatting",
			Text:        "Multiple spaces",
			Description: "Remove extra spaces between words",
			Position:    loc[0],
			Context:     contextWindow(text, loc[0], loc[1]),
		})
		formattingIssues++
	}
	if loc := missingSpaceRe.FindStringIndex(text); loc != nil {
		issues = append(issues, domain.GrammarIssue{
			Type:        "formatting",
			Text:        "Missing space after period",
			Description: "Add space after periods",
			Position:    loc[0],
			Context:     contextWindow(text, loc[0], loc[1]),
		})
		formattingIssues++
	}

	spellingIssues := 0
	for i, re := range s.rules.spellingRes {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		correction := s.rules.spellingRules[i].Correction
		issues = append(issues, domain.GrammarIssue{
			Type:        "spelling",
			Text:        text[loc[0]:loc[1]],
			Description: fmt.Sprintf("Correct spelling: %s", correction),
			Position:    loc[0],
			Context:     fmt.Sprintf("Change to: %s", correction),
		})
		spellingIssues++
	}

	correct := []string{}
	if grammarErrors == 0 {
		correct = append(correct, "No common grammar errors detected")
	}
	if formattingIssues == 0 {
		correct = append(correct, "Good formatting and spacing")
	}
	if spellingIssues == 0 {
		correct = append(correct, "No obvious spelling mistakes found")
	}

	improvements := []domain.SentenceImprovement{}
	sentences := sentenceSplitRe.Split(text, -1)
	if len(sentences) > maxImprovedSentences {
		sentences = sentences[:maxImprovedSentences]
	}
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if utf8.RuneCountInString(sentence) < minSentenceRunes {
			continue
		}
		if weakVerbRe.MatchString(sentence) {
			improvements = append(improvements, domain.SentenceImprovement{
				Type:       "sentence_improvement",
				Sentence:   sentence,
				Suggestion: `Replace "was responsible for" with strong action verbs like "managed", "led", "developed"`,
				Example:    `Instead of "Was responsible for audits" -> "Conducted comprehensive audits"`,
			})
		}
		if vagueQuantifierRe.MatchString(sentence) && !digitRe.MatchString(sentence) {
			improvements = append(improvements, domain.SentenceImprovement{
				Type:       "sentence_improvement",
				Sentence:   sentence,
				Suggestion: "Add specific numbers or quantify achievements",
				Example:    `Instead of "managed various projects" -> "managed 15+ concurrent projects"`,
			})
		}
		if impactVerbRe.MatchString(sentence) && !digitOrPercentRe.MatchString(sentence) {
			improvements = append(improvements, domain.SentenceImprovement{
				Type:       "sentence_improvement",
				Sentence:   sentence,
				Suggestion: "Quantify your achievements with specific numbers or percentages",
				Example:    `Instead of "improved efficiency" -> "improved efficiency by 25%"`,
			})
		}
	}

	if professionalVerbRe.MatchString(text) {
		correct = append(correct, "Uses professional action words")
	}
	if !fillerWordRe.MatchString(text) {
		correct = append(correct, "Professional tone maintained")
	}
	if quantifiedRe.MatchString(text) {
		correct = append(correct, "Includes quantified achievements")
	}

	totalIssues := len(issues)
	totalImprovements := len(improvements)
	if len(issues) > maxGrammarIssues {
		issues = issues[:maxGrammarIssues]
	}
	if len(improvements) > maxSentenceImprovements {
		improvements = improvements[:maxSentenceImprovements]
	}

	overall := 10 - totalIssues
	if overall < 0 {
		overall = 0
	}

	return domain.GrammarReport{
		Issues:            issues,
		Improvements:      improvements,
		CorrectElements:   correct,
		TotalIssues:       totalIssues,
		TotalImprovements: totalImprovements,
		GrammarErrors:     grammarErrors,
		FormattingIssues:  formattingIssues,
		SpellingIssues:    spellingIssues,
		OverallScore:      float64(overall),
	}
}

// contextWindow returns the text around a match, extended twenty runes
// on each side and clamped to rune boundaries.
func contextWindow(text string, start, end int) string {
	lo := start
	for i := 0; i < grammarContextRunes && lo > 0; i++ {
		lo--
		for lo > 0 && !utf8.RuneStart(text[lo]) {
			lo--
		}
	}
	hi := end
	for i := 0; i < grammarContextRunes && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return text[lo:hi]
}
