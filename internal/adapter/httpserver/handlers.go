package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hirelens/resume-scorer/internal/adapter/observability"
	"github.com/hirelens/resume-scorer/internal/catalog"
	"github.com/hirelens/resume-scorer/internal/config"
	"github.com/hirelens/resume-scorer/internal/domain"
	"github.com/hirelens/resume-scorer/internal/usecase"
)

// Server aggregates handlers dependencies.
type Server struct {
	Cfg          config.Config
	Analyze      usecase.AnalyzeService
	Catalog      *catalog.Catalog
	Drift        *observability.ScoreDriftMonitor
	CatalogCheck func(ctx context.Context) error
	ScorerCheck  func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, analyze usecase.AnalyzeService, cat *catalog.Catalog, drift *observability.ScoreDriftMonitor, catalogCheck, scorerCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Analyze: analyze, Catalog: cat, Drift: drift, CatalogCheck: catalogCheck, ScorerCheck: scorerCheck}
}

// allowedExt enforces an allowlist for uploads: .pdf, .docx
func allowedExt(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, ".pdf") || strings.HasSuffix(n, ".docx")
}

func allowedMIMEFor(m string, filename string) bool {
	m = strings.ToLower(m)
	// Some producers emit DOCX as a bare zip container; accept it once the
	// extension already passed the allowlist.
	if strings.HasSuffix(strings.ToLower(filename), ".docx") && m == "application/zip" {
		return true
	}
	return m == "application/pdf" || m == "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

type analyzeResponse struct {
	Report   domain.AnalysisResult `json:"report"`
	File     *domain.FileInfo      `json:"file,omitempty"`
	Category string                `json:"category,omitempty"`
}

// recordAnalysis feeds the Prometheus collectors and drift monitor after a
// successful scoring pass.
func (s *Server) recordAnalysis(res domain.AnalysisResult, source string, dur time.Duration) {
	observability.ObserveAnalysis(res.DomainKey, source, res.TotalScore, dur)
	observability.ObserveSectionScore(domain.SectionAbout, res.SectionScores.About)
	observability.ObserveSectionScore(domain.SectionEducation, res.SectionScores.Education)
	observability.ObserveSectionScore(domain.SectionExperience, res.SectionScores.Experience)
	observability.ObserveSectionScore(domain.SectionSkills, res.SectionScores.Skills)
	if s.Drift != nil {
		s.Drift.Record(res.DomainKey, res.TotalScore)
	}
}

// AnalyzeHandler handles multipart upload of a resume document and scores it.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Accept negotiation: only JSON responses supported
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusNotAcceptable)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": "INVALID_ARGUMENT", "message": "not acceptable", "details": map[string]any{"accept": a}}})
			return
		}
		if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeError(w, r, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument), nil)
			return
		}
		start := time.Now()
		// Limit total multipart size
		maxBytes := s.Cfg.MaxUploadMB * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			// Map body too large to 413
			if strings.Contains(strings.ToLower(err.Error()), "too large") {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": "PAYLOAD_TOO_LARGE", "message": "payload too large", "details": map[string]any{"max_mb": s.Cfg.MaxUploadMB}}})
				return
			}
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err), nil)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: file required", domain.ErrInvalidArgument), map[string]string{"field": "file"})
			return
		}
		defer func() { _ = file.Close() }()

		// Read into memory (body already capped by MaxBytesReader)
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: file read: %v", domain.ErrInvalidArgument, err), nil)
			return
		}

		// Extension allowlist first
		if !allowedExt(header.Filename) {
			writeError(w, r, fmt.Errorf("%w: extension not allowed", domain.ErrUnsupportedFileType), map[string]any{"filename": header.Filename})
			return
		}

		// Content sniffing with mimetype; enforce allowlist
		mime := mimetype.Detect(data)
		if !allowedMIMEFor(mime.String(), header.Filename) {
			writeError(w, r, fmt.Errorf("%w: content does not match an allowed type", domain.ErrUnsupportedFileType), map[string]any{"mime": mime.String(), "filename": header.Filename})
			return
		}

		key := s.Catalog.ResolveKey(r.FormValue("domain"))
		res, info, err := s.Analyze.AnalyzeFile(r.Context(), header.Filename, data, mime.String(), key)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		s.recordAnalysis(res, "file", time.Since(start))
		writeJSON(w, http.StatusOK, analyzeResponse{Report: res, File: &info, Category: r.FormValue("category")})
	}
}

// AnalyzeTextHandler scores raw resume text submitted as JSON.
func (s *Server) AnalyzeTextHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Accept negotiation: only JSON responses supported
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusNotAcceptable)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": "INVALID_ARGUMENT", "message": "not acceptable", "details": map[string]any{"accept": a}}})
			return
		}
		start := time.Now()
		// Cap body size to prevent abuse
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		var req struct {
			Text   string `json:"text" validate:"required,max=200000"`
			Domain string `json:"domain"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			verrs := map[string]string{}
			if ve, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range ve {
					verrs[strings.ToLower(fe.Field())] = fe.Tag()
				}
			}
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), verrs)
			return
		}
		key := s.Catalog.ResolveKey(req.Domain)
		res, err := s.Analyze.AnalyzeText(r.Context(), req.Text, key)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		s.recordAnalysis(res, "text", time.Since(start))
		writeJSON(w, http.StatusOK, analyzeResponse{Report: res})
	}
}

// DomainsHandler lists modern domains, the label mapping table and the
// wizard categories.
func (s *Server) DomainsHandler() http.HandlerFunc {
	type domainEntry struct {
		Key          string `json:"key"`
		Name         string `json:"name"`
		KeywordCount int    `json:"keyword_count"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		keys := s.Catalog.Keys()
		domains := make([]domainEntry, 0, len(keys))
		for _, k := range keys {
			d := s.Catalog.Lookup(k)
			domains = append(domains, domainEntry{Key: d.Key, Name: d.Name, KeywordCount: s.Catalog.KeywordCount(k)})
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"default":    s.Catalog.DefaultKey(),
			"domains":    domains,
			"labels":     s.Catalog.LabelMappings(),
			"categories": s.Catalog.Categories(),
		})
	}
}

// DomainKeywordsHandler lists or searches one domain's keywords. Unknown
// keys fall back to the default domain, like Lookup.
func (s *Server) DomainKeywordsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := s.Catalog.ResolveKey(chi.URLParam(r, "key"))
		kws := s.Catalog.Search(r.URL.Query().Get("query"), key)
		writeJSON(w, http.StatusOK, map[string]any{"domain_key": key, "keywords": kws, "count": len(kws)})
	}
}

// AddKeywordsHandler extends one domain's keyword table at runtime.
// Unlike the read side there is no fallback: unknown keys are a 404.
func (s *Server) AddKeywordsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		var req struct {
			Keywords []string `json:"keywords" validate:"required,min=1"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			verrs := map[string]string{}
			if ve, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range ve {
					verrs[strings.ToLower(fe.Field())] = fe.Tag()
				}
			}
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), verrs)
			return
		}
		key := chi.URLParam(r, "key")
		total, err := s.Catalog.AddKeywords(key, req.Keywords)
		if err != nil {
			writeError(w, r, err, map[string]string{"key": key})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"domain_key": key, "total_keywords": total})
	}
}

// ReadyzHandler returns a readiness handler that probes the domain catalog
// and the scoring engine.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 2)
		if s.CatalogCheck != nil {
			if err := s.CatalogCheck(ctx); err != nil {
				checks = append(checks, check{Name: "catalog", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "catalog", OK: true})
			}
		}
		if s.ScorerCheck != nil {
			if err := s.ScorerCheck(ctx); err != nil {
				checks = append(checks, check{Name: "scorer", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "scorer", OK: true})
			}
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}
