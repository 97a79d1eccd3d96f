package scoring

import (
	"fmt"
	"strings"

	"github.com/hirelens/resume-scorer/internal/domain"
)

// Thresholds are the tunable limits of the scoring engine.
type Thresholds struct {
	AboutOptimalMin    int
	AboutOptimalMax    int
	FresherWordMin     int
	FresherWordMax     int
	ExperiencedWordMin int
	ExperiencedWordMax int
}

// DefaultThresholds returns the standard limits: about summaries of
// 50-300 characters, 450-600 words for freshers, 600-800 words for
// experienced profiles.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AboutOptimalMin:    50,
		AboutOptimalMax:    300,
		FresherWordMin:     450,
		FresherWordMax:     600,
		ExperiencedWordMin: 600,
		ExperiencedWordMax: 800,
	}
}

// Validate rejects non-positive or inverted ranges.
func (t Thresholds) Validate() error {
	if t.AboutOptimalMin <= 0 || t.AboutOptimalMax <= t.AboutOptimalMin {
		return fmt.Errorf("%w: about length range %d-%d", domain.ErrInvalidArgument, t.AboutOptimalMin, t.AboutOptimalMax)
	}
	if t.FresherWordMin <= 0 || t.FresherWordMax <= t.FresherWordMin {
		return fmt.Errorf("%w: fresher word range %d-%d", domain.ErrInvalidArgument, t.FresherWordMin, t.FresherWordMax)
	}
	if t.ExperiencedWordMin <= 0 || t.ExperiencedWordMax <= t.ExperiencedWordMin {
		return fmt.Errorf("%w: experienced word range %d-%d", domain.ErrInvalidArgument, t.ExperiencedWordMin, t.ExperiencedWordMax)
	}
	return nil
}

// sectionWeight converts the four 0-10 section scores into a 0-100
// total.
const sectionWeight = 2.5

// Scorer drives the analysis pipeline. It holds only immutable rule
// tables and a keyword source, so one instance is safe for concurrent
// use.
type Scorer struct {
	keywords   domain.KeywordSource
	rules      *ruleSet
	thresholds Thresholds
}

// New constructs a Scorer over the given keyword source. Rule tables
// are parsed and compiled once here.
func New(keywords domain.KeywordSource, thresholds Thresholds) (*Scorer, error) {
	if keywords == nil {
		return nil, fmt.Errorf("op=scoring.New: %w: nil keyword source", domain.ErrInvalidArgument)
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("op=scoring.New: %w", err)
	}
	rules, err := loadRules()
	if err != nil {
		return nil, err
	}
	return &Scorer{keywords: keywords, rules: rules, thresholds: thresholds}, nil
}

// Score runs the full pipeline over raw resume text. It never fails:
// missing or malformed content degrades scores and surfaces as feedback,
// not as errors. Unknown domain keys silently fall back to the default
// domain.
func (s *Scorer) Score(rawText, domainKey string) domain.AnalysisResult {
	cleaned := Clean(rawText)
	lowered := strings.ToLower(cleaned)

	dom := s.keywords.Lookup(domainKey)
	sections := ExtractSections(cleaned)

	hardMatch := s.keywords.PartitionByPresence(cleaned, domainKey)
	softSkills := s.AnalyzeSoftSkills(cleaned)

	aboutScore, aboutFb := s.scoreAbout(sections.About, cleaned)
	eduScore, eduFb := s.scoreEducation(sections.Education)
	expScore, expFb := s.scoreExperience(sections.Experience)
	skillsScore, skillsFb := s.scoreSkills(sections.Skills, cleaned, hardMatch, softSkills.TotalFound)

	total := round1((aboutScore + eduScore + expScore + skillsScore) * sectionWeight)

	grammar := s.CheckGrammar(cleaned)
	wordCount := s.AnalyzeWordCount(cleaned)
	hardSkills := s.AnalyzeHardSkills(hardMatch)
	certs := s.AnalyzeCertifications(cleaned, domainKey)
	recommendations := s.buildRecommendations(lowered, domainKey, aboutScore, expScore, grammar.Issues)

	scores := domain.SectionScores{
		About:      aboutScore,
		Education:  eduScore,
		Experience: expScore,
		Skills:     skillsScore,
	}

	return domain.AnalysisResult{
		DomainKey:     dom.Key,
		DomainName:    dom.Name,
		TotalScore:    total,
		ScoreBand:     domain.BandForScore(total / 10),
		SectionScores: scores,
		SectionFeedback: domain.SectionFeedback{
			About:      aboutFb,
			Education:  eduFb,
			Experience: expFb,
			Skills:     skillsFb,
		},
		Grammar:         grammar,
		WordCount:       wordCount,
		HardSkills:      hardSkills,
		SoftSkills:      softSkills,
		Certifications:  certs,
		Recommendations: recommendations,
		Heatmap:         buildHeatmap(scores, hardSkills, softSkills),
	}
}
