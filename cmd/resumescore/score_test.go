package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelens/resume-scorer/internal/domain"
)

func TestRenderReport(t *testing.T) {
	res := domain.AnalysisResult{
		ReportID:   "r-1",
		DomainKey:  "gst",
		DomainName: "Indirect Tax (GST)",
		TotalScore: 72.5,
		ScoreBand:  domain.BandGood,
		SectionScores: domain.SectionScores{
			About: 7, Education: 8, Experience: 6.5, Skills: 7.5,
		},
		HardSkills: domain.SkillAnalysis{TotalFound: 6, TotalAvailable: 10, Coverage: 60},
		WordCount:  domain.WordCountAnalysis{WordCount: 520, Status: "optimal", TargetRange: "450-600 words"},
		Grammar:    domain.GrammarReport{OverallScore: 9, TotalIssues: 1},
		Certifications: domain.CertificationAnalysis{
			Found: []string{"CA", "CPA"},
		},
		Recommendations: []string{
			"Add more GST compliance keywords.",
			"Quantify achievements in experience section.",
		},
	}

	var buf bytes.Buffer
	renderReport(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "Indirect Tax (GST)")
	assert.Contains(t, out, "72.5/100 (good)")
	assert.Contains(t, out, "6/10 found (60.0%)")
	assert.Contains(t, out, "520 (optimal, target 450-600 words)")
	assert.Contains(t, out, "CA, CPA")
	assert.Contains(t, out, "Add more GST compliance keywords.")
	assert.Equal(t, 2, strings.Count(out, "  - "))
}

func TestRenderReport_NoCertsNoRecommendations(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, domain.AnalysisResult{DomainKey: "general", DomainName: "General"})
	out := buf.String()
	assert.NotContains(t, out, "Certs found")
	assert.NotContains(t, out, "Recommendations")
}
