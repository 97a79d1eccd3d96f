package scoring

import (
	"strings"

	"github.com/hirelens/resume-scorer/internal/domain"
)

// AnalyzeCertifications reports domain-relevant certification acronyms.
// Only the canonical domains (auditing, taxation, finance) carry a
// relevant list. Matching is an uppercase substring scan, so short
// acronyms also match inside longer words.
func (s *Scorer) AnalyzeCertifications(text, domainKey string) domain.CertificationAnalysis {
	relevant := s.rules.domainCerts[domainKey]
	upper := strings.ToUpper(text)

	found := []string{}
	missing := []string{}
	for _, cert := range relevant {
		uc := strings.ToUpper(cert)
		if strings.Contains(upper, uc) {
			found = append(found, uc)
		} else {
			missing = append(missing, uc)
		}
	}

	assessment := "Consider Adding"
	if len(found) > 0 {
		assessment = "High Value"
	}

	relevantCopy := make([]string, len(relevant))
	copy(relevantCopy, relevant)
	return domain.CertificationAnalysis{
		Found:             found,
		RelevantForDomain: relevantCopy,
		MissingKeyCerts:   missing,
		ValueAssessment:   assessment,
	}
}
