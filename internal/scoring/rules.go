// Package scoring implements the resume analysis engine: section
// extraction, per-section scoring, grammar and keyword analysis, and
// recommendation synthesis. All rule vocabularies live in rules.yaml
// and are compiled once at construction.
package scoring

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/hirelens/resume-scorer/internal/domain"
)

//go:embed rules.yaml
var rulesYAML []byte

type namedTerms struct {
	Name  string   `yaml:"name"`
	Terms []string `yaml:"terms"`
}

type degreePattern struct {
	Level   string `yaml:"level"`
	Pattern string `yaml:"pattern"`
}

type grammarRule struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
}

type spellingPair struct {
	Wrong      string `yaml:"wrong"`
	Correction string `yaml:"correction"`
}

type domainAcronyms struct {
	Domain   string   `yaml:"domain"`
	Acronyms []string `yaml:"acronyms"`
}

type namedAcronyms struct {
	Name     string   `yaml:"name"`
	Acronyms []string `yaml:"acronyms"`
}

type domainTerms struct {
	Domain string   `yaml:"domain"`
	Terms  []string `yaml:"terms"`
}

type rulesFile struct {
	SoftSkills  []string `yaml:"soft_skills"`
	ActionWords []string `yaml:"action_words"`
	About       struct {
		ExpertiseWords []string     `yaml:"expertise_words"`
		ActionWords    []string     `yaml:"action_words"`
		DomainFocus    []namedTerms `yaml:"domain_focus"`
	} `yaml:"about"`
	Education struct {
		DegreePatterns          []degreePattern `yaml:"degree_patterns"`
		InstitutionWords        []string        `yaml:"institution_words"`
		StudyFields             []string        `yaml:"study_fields"`
		Honors                  []string        `yaml:"honors"`
		CertificationCategories []namedAcronyms `yaml:"certification_categories"`
	} `yaml:"education"`
	Skills struct {
		TechKeywords []string `yaml:"tech_keywords"`
	} `yaml:"skills"`
	Grammar struct {
		Rules    []grammarRule  `yaml:"rules"`
		Spelling []spellingPair `yaml:"spelling"`
	} `yaml:"grammar"`
	Certifications  []domainAcronyms `yaml:"certifications"`
	Recommendations struct {
		RequiredTerms []domainTerms `yaml:"required_terms"`
	} `yaml:"recommendations"`
}

type compiledDegree struct {
	level string
	re    *regexp.Regexp
}

type compiledGrammarRule struct {
	re          *regexp.Regexp
	description string
}

type certAcronym struct {
	text string
	re   *regexp.Regexp
}

type certCategory struct {
	name    string
	entries []certAcronym
}

// ruleSet holds every vocabulary and compiled pattern the analyzers
// consume. It is immutable after loadRules returns.
type ruleSet struct {
	softSkills  []string
	actionWords []string

	aboutExpertise   []string
	aboutActionWords []string
	aboutDomainFocus []namedTerms

	degreePatterns   []compiledDegree
	institutionWords []string
	studyFields      []string
	honors           []string
	certCategories   []certCategory

	techKeywords []string

	grammarRules  []compiledGrammarRule
	spellingRules []spellingPair
	spellingRes   []*regexp.Regexp

	domainCerts   map[string][]string
	requiredTerms map[string][]string
}

func loadRules() (*ruleSet, error) {
	var f rulesFile
	if err := yaml.Unmarshal(rulesYAML, &f); err != nil {
		return nil, fmt.Errorf("op=scoring.loadRules: %w: parse rules: %v", domain.ErrInvalidArgument, err)
	}
	if len(f.SoftSkills) == 0 || len(f.ActionWords) == 0 {
		return nil, fmt.Errorf("op=scoring.loadRules: %w: empty vocabulary tables", domain.ErrInvalidArgument)
	}

	rs := &ruleSet{
		softSkills:       f.SoftSkills,
		actionWords:      f.ActionWords,
		aboutExpertise:   f.About.ExpertiseWords,
		aboutActionWords: f.About.ActionWords,
		aboutDomainFocus: f.About.DomainFocus,
		institutionWords: f.Education.InstitutionWords,
		studyFields:      f.Education.StudyFields,
		honors:           f.Education.Honors,
		techKeywords:     f.Skills.TechKeywords,
		spellingRules:    f.Grammar.Spelling,
		domainCerts:      make(map[string][]string, len(f.Certifications)),
		requiredTerms:    make(map[string][]string, len(f.Recommendations.RequiredTerms)),
	}

	for _, dp := range f.Education.DegreePatterns {
		re, err := regexp.Compile("(?i)" + dp.Pattern)
		if err != nil {
			return nil, fmt.Errorf("op=scoring.loadRules: %w: degree pattern %q: %v", domain.ErrInvalidArgument, dp.Level, err)
		}
		rs.degreePatterns = append(rs.degreePatterns, compiledDegree{level: dp.Level, re: re})
	}
	for _, cat := range f.Education.CertificationCategories {
		cc := certCategory{name: cat.Name, entries: make([]certAcronym, 0, len(cat.Acronyms))}
		for _, acr := range cat.Acronyms {
			re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(acr) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("op=scoring.loadRules: %w: certification acronym %q: %v", domain.ErrInvalidArgument, acr, err)
			}
			cc.entries = append(cc.entries, certAcronym{text: acr, re: re})
		}
		rs.certCategories = append(rs.certCategories, cc)
	}
	for _, gr := range f.Grammar.Rules {
		re, err := regexp.Compile("(?i)" + gr.Pattern)
		if err != nil {
			return nil, fmt.Errorf("op=scoring.loadRules: %w: grammar rule %q: %v", domain.ErrInvalidArgument, gr.Description, err)
		}
		rs.grammarRules = append(rs.grammarRules, compiledGrammarRule{re: re, description: gr.Description})
	}
	for _, sp := range f.Grammar.Spelling {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(sp.Wrong) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("op=scoring.loadRules: %w: spelling rule %q: %v", domain.ErrInvalidArgument, sp.Wrong, err)
		}
		rs.spellingRes = append(rs.spellingRes, re)
	}
	for _, dc := range f.Certifications {
		rs.domainCerts[dc.Domain] = dc.Acronyms
	}
	for _, dt := range f.Recommendations.RequiredTerms {
		rs.requiredTerms[dt.Domain] = dt.Terms
	}
	return rs, nil
}
