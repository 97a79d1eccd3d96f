package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sections holds the four text spans carved out of a resume. A missing
// section is the empty string; scoring proceeds either way.
type Sections struct {
	About      string
	Education  string
	Experience string
	Skills     string
}

// Heading alternations list multi-word phrases first so they win at
// their leftmost position.
var (
	aboutHeadingRe      = regexp.MustCompile(`(?i)\b(?:professional\s+summary|career\s+objective|personal\s+statement|summary|about|profile|objective)s?\b`)
	educationHeadingRe  = regexp.MustCompile(`(?i)\b(?:education|academic|qualification)s?\b`)
	experienceHeadingRe = regexp.MustCompile(`(?i)\b(?:experience|employment|work|career|professional)s?\b`)
	skillsHeadingRe     = regexp.MustCompile(`(?i)\b(?:skills|competencies|expertise|technical)\b`)

	selfDescriptorRe = regexp.MustCompile(`(?i)\byears?\s+(?:of\s+)?experience\b|\b(?:professional|specialist|expert|certified|skilled)\b`)
)

// minAboutRunes discards heading-only about spans; shorter captures are
// treated as absent and the fallback heuristic runs instead.
const minAboutRunes = 20

type headingPos struct {
	start        int // index of the heading itself
	contentStart int // index just past the heading, colons and spaces
}

// ExtractSections splits cleaned resume text into the four scored
// sections. A section spans from just after its heading to the start of
// the next recognized heading, or to the end of text. The about section
// falls back to the opening sentences when they read like a
// professional summary and no usable heading was found.
func ExtractSections(text string) Sections {
	headings := map[string]*regexp.Regexp{
		"about":      aboutHeadingRe,
		"education":  educationHeadingRe,
		"experience": experienceHeadingRe,
		"skills":     skillsHeadingRe,
	}

	chosen := make(map[string]headingPos, len(headings))
	for name, re := range headings {
		if pos, ok := chooseHeading(text, re); ok {
			chosen[name] = pos
		}
	}

	spans := make(map[string]string, len(chosen))
	for name, pos := range chosen {
		end := len(text)
		for other, op := range chosen {
			if other == name {
				continue
			}
			if op.start >= pos.contentStart && op.start < end {
				end = op.start
			}
		}
		spans[name] = strings.TrimSpace(text[pos.contentStart:end])
	}

	s := Sections{
		About:      spans["about"],
		Education:  spans["education"],
		Experience: spans["experience"],
		Skills:     spans["skills"],
	}
	if utf8.RuneCountInString(s.About) <= minAboutRunes {
		s.About = fallbackAbout(text, chosen)
	}
	return s
}

// chooseHeading picks the occurrence a reader would take for the
// section title: the first match directly followed by a colon, or
// failing that the first match at all.
func chooseHeading(text string, re *regexp.Regexp) (headingPos, bool) {
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return headingPos{}, false
	}
	pick := matches[0]
	for _, m := range matches {
		if colonFollows(text, m[1]) {
			pick = m
			break
		}
	}
	return headingPos{start: pick[0], contentStart: contentStart(text, pick[1])}, true
}

func colonFollows(text string, i int) bool {
	for i < len(text) && text[i] == ' ' {
		i++
	}
	return i < len(text) && text[i] == ':'
}

// contentStart skips the separator run after a heading: spaces, any
// colons, then spaces again.
func contentStart(text string, i int) int {
	for i < len(text) && text[i] == ' ' {
		i++
	}
	for i < len(text) && text[i] == ':' {
		i++
	}
	for i < len(text) && text[i] == ' ' {
		i++
	}
	return i
}

// fallbackAbout returns the opening sentences when they read like a
// professional summary. It is used only when no heading-based about
// span of usable length exists.
func fallbackAbout(text string, chosen map[string]headingPos) string {
	end := nthSentenceEnd(text, 3)
	for name, pos := range chosen {
		if name == "about" {
			continue
		}
		if pos.start < end {
			end = pos.start
		}
	}
	lead := strings.TrimSpace(text[:end])
	if utf8.RuneCountInString(lead) <= minAboutRunes || !selfDescriptorRe.MatchString(lead) {
		return ""
	}
	return lead
}

// nthSentenceEnd returns the index just past the n-th period, or
// len(text) when fewer sentences exist.
func nthSentenceEnd(text string, n int) int {
	seen := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			seen++
			if seen == n {
				return i + 1
			}
		}
	}
	return len(text)
}
