// Package usecase contains application business logic services.
package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hirelens/resume-scorer/internal/domain"
	"github.com/hirelens/resume-scorer/internal/observability"
)

// ResumeScorer is the scoring engine contract the analyze service drives.
// Score never fails; unknown domain keys fall back to the default domain.
type ResumeScorer interface {
	Score(rawText, domainKey string) domain.AnalysisResult
}

// AnalyzeService turns uploaded documents or raw text into analysis reports.
type AnalyzeService struct {
	Extractor domain.TextExtractor
	Scorer    ResumeScorer
}

// NewAnalyzeService constructs an AnalyzeService with its dependencies.
func NewAnalyzeService(x domain.TextExtractor, sc ResumeScorer) AnalyzeService {
	return AnalyzeService{Extractor: x, Scorer: sc}
}

// AnalyzeFile extracts text from an uploaded document, scores it against the
// given domain key, and echoes the upload metadata back to the caller.
// Callers resolve display labels to registered keys before calling.
func (s AnalyzeService) AnalyzeFile(ctx domain.Context, fileName string, data []byte, declaredType, domainKey string) (domain.AnalysisResult, domain.FileInfo, error) {
	if len(data) == 0 {
		return domain.AnalysisResult{}, domain.FileInfo{}, fmt.Errorf("%w: empty upload", domain.ErrInvalidArgument)
	}
	text, err := s.Extractor.Extract(ctx, fileName, data, declaredType)
	if err != nil {
		return domain.AnalysisResult{}, domain.FileInfo{}, err
	}
	res, err := s.score(ctx, text, domainKey)
	if err != nil {
		return domain.AnalysisResult{}, domain.FileInfo{}, err
	}
	info := domain.FileInfo{Filename: fileName, Size: int64(len(data)), MIME: mimeForUpload(declaredType, fileName)}
	return res, info, nil
}

// AnalyzeText scores raw resume text directly, bypassing extraction.
func (s AnalyzeService) AnalyzeText(ctx domain.Context, text, domainKey string) (domain.AnalysisResult, error) {
	return s.score(ctx, text, domainKey)
}

func (s AnalyzeService) score(ctx domain.Context, text, domainKey string) (domain.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return domain.AnalysisResult{}, fmt.Errorf("%w: no text to score", domain.ErrEmptyDocument)
	}
	res := s.Scorer.Score(text, domainKey)
	res.ReportID = uuid.New().String()
	observability.LoggerFromContext(ctx).Info("analysis completed",
		slog.String("report_id", res.ReportID),
		slog.String("domain", res.DomainKey),
		slog.Float64("total_score", res.TotalScore))
	return res, nil
}

func mimeForUpload(declared, name string) string {
	if declared != "" {
		return declared
	}
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(n, ".docx"):
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case strings.HasSuffix(n, ".doc"):
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
