package domain

import (
	"context"
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnknownDomain       = errors.New("unknown domain")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrExtractionFailure   = errors.New("extraction failure")
	ErrEmptyDocument       = errors.New("empty document")
	ErrInternal            = errors.New("internal error")
)

// Section names used across extraction, scoring and feedback.
const (
	SectionAbout      = "about"
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionSkills     = "skills"
)

// Domain is a professional specialization with an ordered keyword vocabulary.
// Keyword order is significant: found/missing lists are reported in it.
type Domain struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// KeywordMatch is the ordered present/missing partition of a domain's
// keyword list against a text. Present and Missing together cover the
// full list with no overlap.
type KeywordMatch struct {
	Present      []string `json:"present_keywords"`
	Missing      []string `json:"missing_keywords"`
	PresentCount int      `json:"present_count"`
	MissingCount int      `json:"missing_count"`
	TotalCount   int      `json:"total_keywords"`
	Coverage     float64  `json:"coverage_percentage"`
}

// Feedback carries per-section review output. Details holds analyzer
// extras (counts, detected terms, contact flags) that are reported but
// not scored.
type Feedback struct {
	Strengths    []string       `json:"strengths"`
	Improvements []string       `json:"improvements"`
	Errors       []string       `json:"errors"`
	Details      map[string]any `json:"details,omitempty"`
}

// SectionScores holds the four per-section scores, each in [0,10].
type SectionScores struct {
	About      float64 `json:"about_me"`
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
	Skills     float64 `json:"skills"`
}

// SectionFeedback pairs each section with its Feedback record.
type SectionFeedback struct {
	About      Feedback `json:"about_me"`
	Education  Feedback `json:"education"`
	Experience Feedback `json:"experience"`
	Skills     Feedback `json:"skills"`
}

// GrammarIssue is a single detected problem with its location and a
// small surrounding context window.
type GrammarIssue struct {
	Type        string `json:"type"` // grammar | formatting | spelling
	Text        string `json:"text"`
	Description string `json:"description"`
	Position    int    `json:"position"`
	Context     string `json:"context"`
}

// SentenceImprovement suggests a rewrite for one offending sentence.
type SentenceImprovement struct {
	Type       string `json:"type"`
	Sentence   string `json:"sentence"`
	Suggestion string `json:"suggestion"`
	Example    string `json:"example,omitempty"`
}

// GrammarReport aggregates grammar, formatting and spelling findings.
// OverallScore = max(0, 10 - TotalIssues).
type GrammarReport struct {
	Issues            []GrammarIssue        `json:"issues"`
	Improvements      []SentenceImprovement `json:"improvements"`
	CorrectElements   []string              `json:"correct_elements"`
	TotalIssues       int                   `json:"total_issues"`
	TotalImprovements int                   `json:"total_improvements"`
	GrammarErrors     int                   `json:"grammar_errors"`
	FormattingIssues  int                   `json:"formatting_issues"`
	SpellingIssues    int                   `json:"spelling_issues"`
	OverallScore      float64               `json:"overall_score"`
}

// SkillAnalysis is the ordered coverage report for one vocabulary
// (domain keywords or soft skills). Assessment buckets differ per use:
// High/Medium/Low for hard skills, Excellent/Good/Needs Improvement
// for soft skills.
type SkillAnalysis struct {
	Found          []string `json:"found_skills"`
	Missing        []string `json:"missing_skills"`
	Coverage       float64  `json:"coverage_percentage"`
	Assessment     string   `json:"assessment"`
	TotalFound     int      `json:"total_found"`
	TotalAvailable int      `json:"total_available"`
}

// CertificationAnalysis reports domain-relevant certification acronyms.
// Only the canonical domains (auditing, taxation, finance) carry a
// relevant list; all other keys yield empty slices and "Consider Adding".
type CertificationAnalysis struct {
	Found             []string `json:"found_certifications"`
	RelevantForDomain []string `json:"relevant_for_domain"`
	MissingKeyCerts   []string `json:"missing_key_certs"`
	ValueAssessment   string   `json:"value_assessment"`
}

// WordCountAnalysis reports résumé length against the target band for
// the detected experience level.
type WordCountAnalysis struct {
	WordCount      int    `json:"word_count"`
	IsFresher      bool   `json:"is_fresher"`
	IsOptimal      bool   `json:"is_optimal"`
	Status         string `json:"status"` // too_short | optimal | too_long
	Recommendation string `json:"recommendation"`
	TargetRange    string `json:"target_range"`
}

// Heatmap is the derived summary view for visualization. All values are
// percentages in [0,100].
type Heatmap struct {
	SectionScores map[string]float64 `json:"section_scores"`
	SkillsDensity map[string]float64 `json:"skills_density"`
	OverallHealth map[string]float64 `json:"overall_health"`
}

// AnalysisResult is the full output of one scoring invocation. It is
// constructed fresh per invocation and never mutated after return.
type AnalysisResult struct {
	ReportID        string                `json:"report_id"`
	DomainKey       string                `json:"domain_key"`
	DomainName      string                `json:"domain_name"`
	TotalScore      float64               `json:"total_score"`
	ScoreBand       string                `json:"score_band"`
	SectionScores   SectionScores         `json:"section_scores"`
	SectionFeedback SectionFeedback       `json:"section_feedback"`
	Grammar         GrammarReport         `json:"grammar_issues"`
	WordCount       WordCountAnalysis     `json:"word_count_analysis"`
	HardSkills      SkillAnalysis         `json:"hard_skills_analysis"`
	SoftSkills      SkillAnalysis         `json:"soft_skills_analysis"`
	Certifications  CertificationAnalysis `json:"certification_analysis"`
	Recommendations []string              `json:"recommendations"`
	Heatmap         Heatmap               `json:"heatmap_data"`
}

// FileInfo echoes upload metadata back to the caller.
type FileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MIME     string `json:"mime"`
}

// Score bands for a 0-10 score, mirrored by API clients for display.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
)

// BandForScore buckets a 0-10 score: >=8 excellent, >=6 good, >=4 fair,
// else poor.
func BandForScore(score float64) string {
	switch {
	case score >= 8:
		return BandExcellent
	case score >= 6:
		return BandGood
	case score >= 4:
		return BandFair
	default:
		return BandPoor
	}
}

// KeywordSource (port)
// Read-side catalog contract the scoring engine depends on. Lookup
// falls back to the default domain on unknown keys, so neither method
// can fail.
type KeywordSource interface {
	Lookup(domainKey string) Domain
	PartitionByPresence(text, domainKey string) KeywordMatch
}

// TextExtractor (port)
// Extract converts raw file bytes into plain text. Implementations
// reject unsupported declared types with ErrUnsupportedFileType and
// unreadable documents with ErrExtractionFailure.
type TextExtractor interface {
	Extract(ctx Context, fileName string, data []byte, declaredType string) (string, error)
}

// Context is an alias to allow decoupling from std context in domain
// Adapters and usecases should pass context.Context through
type Context = context.Context
