package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirelens/resume-scorer/internal/adapter/textextractor/local"
	"github.com/hirelens/resume-scorer/internal/catalog"
	"github.com/hirelens/resume-scorer/internal/domain"
	"github.com/hirelens/resume-scorer/internal/scoring"
	"github.com/hirelens/resume-scorer/internal/usecase"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume file against a domain keyword catalog",
	Long:  "Extracts text from a PDF or DOCX resume and runs the full scoring pipeline: section detection, keyword coverage, grammar review, word count analysis and certifications.",
	RunE:  runScore,
}

var (
	scoreFile   string
	scoreDomain string
	scoreAsJSON bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "Path to the resume (.pdf or .docx)")
	scoreCmd.Flags().StringVarP(&scoreDomain, "domain", "d", "", "Domain label or key (defaults to the general catalog)")
	scoreCmd.Flags().BoolVar(&scoreAsJSON, "json", false, "Emit the full analysis report as JSON")
	_ = scoreCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(scoreFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load domain catalog: %w", err)
	}
	scorer, err := scoring.New(cat, scoring.DefaultThresholds())
	if err != nil {
		return err
	}
	svc := usecase.NewAnalyzeService(local.New(), scorer)

	key := cat.ResolveKey(scoreDomain)
	res, _, err := svc.AnalyzeFile(context.Background(), filepath.Base(scoreFile), data, "", key)
	if err != nil {
		return err
	}

	if scoreAsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	renderReport(os.Stdout, res)
	return nil
}

func renderReport(w io.Writer, res domain.AnalysisResult) {
	fmt.Fprintf(w, "Domain:      %s (%s)\n", res.DomainName, res.DomainKey)
	fmt.Fprintf(w, "Total score: %.1f/100 (%s)\n", res.TotalScore, res.ScoreBand)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sections:")
	fmt.Fprintf(w, "  About       %4.1f/10\n", res.SectionScores.About)
	fmt.Fprintf(w, "  Education   %4.1f/10\n", res.SectionScores.Education)
	fmt.Fprintf(w, "  Experience  %4.1f/10\n", res.SectionScores.Experience)
	fmt.Fprintf(w, "  Skills      %4.1f/10\n", res.SectionScores.Skills)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Keywords:    %d/%d found (%.1f%%)\n", res.HardSkills.TotalFound, res.HardSkills.TotalAvailable, res.HardSkills.Coverage)
	fmt.Fprintf(w, "Word count:  %d (%s, target %s)\n", res.WordCount.WordCount, res.WordCount.Status, res.WordCount.TargetRange)
	fmt.Fprintf(w, "Grammar:     %.1f/10 (%d issues)\n", res.Grammar.OverallScore, res.Grammar.TotalIssues)
	if len(res.Certifications.Found) > 0 {
		fmt.Fprintf(w, "Certs found: %s\n", strings.Join(res.Certifications.Found, ", "))
	}
	if len(res.Recommendations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Recommendations:")
		for _, rec := range res.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}
}
