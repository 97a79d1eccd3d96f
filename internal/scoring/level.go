package scoring

import (
	"regexp"
	"strconv"
)

// Experience levels used by the recommendation engine.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

var (
	seniorTitleRe = regexp.MustCompile(`\b(?:senior|director|manager|lead|vp|vice president|head of)\b`)
	midTitleRe    = regexp.MustCompile(`\b(?:analyst|associate|specialist|coordinator)\b`)
	entryTitleRe  = regexp.MustCompile(`\b(?:intern|trainee|entry|graduate|junior|assistant)\b`)
	yearsClaimRe  = regexp.MustCompile(`\b(\d+)\+?\s*years?\b`)
)

// DetectLevel classifies the candidate as entry, mid or senior from
// job-title words, falling back to the first claimed years figure.
// Callers pass lowercased text; title checks win over years.
func DetectLevel(lowered string) string {
	switch {
	case seniorTitleRe.MatchString(lowered):
		return LevelSenior
	case midTitleRe.MatchString(lowered):
		return LevelMid
	case entryTitleRe.MatchString(lowered):
		return LevelEntry
	}
	if m := yearsClaimRe.FindStringSubmatch(lowered); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			switch {
			case years >= 8:
				return LevelSenior
			case years >= 3:
				return LevelMid
			}
			return LevelEntry
		}
	}
	return LevelMid
}
