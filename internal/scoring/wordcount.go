package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hirelens/resume-scorer/internal/domain"
	"github.com/hirelens/resume-scorer/pkg/textx"
)

// maxPlausibleYears rejects spurious "years" matches (dates, figures)
// when estimating claimed experience.
const maxPlausibleYears = 50

var yearsTokenRe = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)

// AnalyzeWordCount checks resume length against the target band for the
// detected experience level. A candidate claiming under two years of
// experience counts as a fresher.
func (s *Scorer) AnalyzeWordCount(text string) domain.WordCountAnalysis {
	wordCount := textx.CountWords(text)
	lowered := strings.ToLower(text)

	maxYears := 0
	for _, m := range yearsTokenRe.FindAllStringSubmatch(lowered, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxPlausibleYears {
			continue
		}
		if n > maxYears {
			maxYears = n
		}
	}
	isFresher := maxYears < 2

	minWords, maxWords := s.thresholds.ExperiencedWordMin, s.thresholds.ExperiencedWordMax
	audience := "experienced professionals"
	optimalMsg := "Your resume length is optimal for an experienced professional."
	if isFresher {
		minWords, maxWords = s.thresholds.FresherWordMin, s.thresholds.FresherWordMax
		audience = "freshers"
		optimalMsg = "Your resume length is optimal for a fresher profile."
	}

	a := domain.WordCountAnalysis{
		WordCount:   wordCount,
		IsFresher:   isFresher,
		IsOptimal:   wordCount >= minWords && wordCount <= maxWords,
		TargetRange: fmt.Sprintf("%d-%d words", minWords, maxWords),
	}
	switch {
	case wordCount < minWords:
		a.Status = "too_short"
		a.Recommendation = fmt.Sprintf("Consider expanding your resume. Add %d more words to reach the optimal range for %s (%d-%d words).",
			minWords-wordCount, audience, minWords, maxWords)
	case wordCount > maxWords:
		a.Status = "too_long"
		a.Recommendation = fmt.Sprintf("Consider condensing your resume. Remove %d words to stay within the optimal range for %s (%d-%d words).",
			wordCount-maxWords, audience, minWords, maxWords)
	default:
		a.Status = "optimal"
		a.Recommendation = optimalMsg
	}
	return a
}
