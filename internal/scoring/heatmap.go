package scoring

import "github.com/hirelens/resume-scorer/internal/domain"

// buildHeatmap assembles the visualization summary. Every value is a
// percentage in [0,100]: section scores scaled x10, skill coverage
// percentages as-is, and three composite health metrics.
func buildHeatmap(scores domain.SectionScores, hard, soft domain.SkillAnalysis) domain.Heatmap {
	return domain.Heatmap{
		SectionScores: map[string]float64{
			"About Me":   scores.About * 10,
			"Education":  scores.Education * 10,
			"Experience": scores.Experience * 10,
			"Skills":     scores.Skills * 10,
		},
		SkillsDensity: map[string]float64{
			"Hard Skills": hard.Coverage,
			"Soft Skills": soft.Coverage,
		},
		OverallHealth: map[string]float64{
			"Content Quality":     (scores.About + scores.Experience) / 2 * 10,
			"Qualifications":      (scores.Education + scores.Skills) / 2 * 10,
			"Professional Impact": scores.Experience * 10,
		},
	}
}
