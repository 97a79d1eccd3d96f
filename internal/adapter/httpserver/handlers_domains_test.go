package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	httpserver "github.com/hirelens/resume-scorer/internal/adapter/httpserver"
)

func TestDomainsHandler_ListsCatalog(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	r := httptest.NewRequest(http.MethodGet, "/v1/domains", nil)
	w := httptest.NewRecorder()
	srv.DomainsHandler()(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	obj := decodeBody(t, resp)

	require.Equal(t, "general", obj["default"])
	domains, ok := obj["domains"].([]any)
	require.True(t, ok)
	require.Len(t, domains, len(srv.Catalog.Keys()))
	for _, d := range domains {
		entry := d.(map[string]any)
		require.NotEmpty(t, entry["key"])
		require.NotEmpty(t, entry["name"])
		require.Greater(t, entry["keyword_count"].(float64), 0.0)
	}
	labels, ok := obj["labels"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, labels)
	categories, ok := obj["categories"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, categories)
}

func keywordsRouter(srv *httpserver.Server) http.Handler {
	router := chi.NewRouter()
	router.Get("/v1/domains/{key}/keywords", srv.DomainKeywordsHandler())
	router.Post("/v1/domains/{key}/keywords", srv.AddKeywordsHandler())
	return router
}

func TestDomainKeywordsHandler_ListsAll(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	router := keywordsRouter(srv)
	r := httptest.NewRequest(http.MethodGet, "/v1/domains/gst/keywords", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	obj := decodeBody(t, resp)
	require.Equal(t, "gst", obj["domain_key"])
	kws, ok := obj["keywords"].([]any)
	require.True(t, ok)
	require.Len(t, kws, srv.Catalog.KeywordCount("gst"))
	require.Equal(t, float64(len(kws)), obj["count"])
}

func TestDomainKeywordsHandler_SearchFilters(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	router := keywordsRouter(srv)
	r := httptest.NewRequest(http.MethodGet, "/v1/domains/direct_tax/keywords?query=tax", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	obj := decodeBody(t, resp)
	kws, ok := obj["keywords"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, kws)
	for _, kw := range kws {
		require.Contains(t, strings.ToLower(kw.(string)), "tax")
	}
}

func TestDomainKeywordsHandler_UnknownKeyFallsBack(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	router := keywordsRouter(srv)
	r := httptest.NewRequest(http.MethodGet, "/v1/domains/no_such_domain/keywords", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	obj := decodeBody(t, resp)
	require.Equal(t, "general", obj["domain_key"])
}

func TestAddKeywordsHandler_AppendsAndReportsTotal(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	router := keywordsRouter(srv)
	before := srv.Catalog.KeywordCount("gst")

	payload := `{"keywords": ["customs valuation", "anti dumping duty"]}`
	r := httptest.NewRequest(http.MethodPost, "/v1/domains/gst/keywords", bytes.NewReader([]byte(payload)))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	obj := decodeBody(t, resp)
	require.Equal(t, "gst", obj["domain_key"])
	require.Equal(t, float64(before+2), obj["total_keywords"])
	require.Equal(t, before+2, srv.Catalog.KeywordCount("gst"))
}

func TestAddKeywordsHandler_UnknownDomain404(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	router := keywordsRouter(srv)
	r := httptest.NewRequest(http.MethodPost, "/v1/domains/no_such_domain/keywords", bytes.NewReader([]byte(`{"keywords":["x"]}`)))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	obj := decodeBody(t, resp)
	require.Equal(t, "UNKNOWN_DOMAIN", errorPart(t, obj)["code"])
}

func TestAddKeywordsHandler_EmptyListRejected(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	router := keywordsRouter(srv)
	r := httptest.NewRequest(http.MethodPost, "/v1/domains/gst/keywords", bytes.NewReader([]byte(`{"keywords":[]}`)))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	obj := decodeBody(t, resp)
	errObj := errorPart(t, obj)
	require.Equal(t, "INVALID_ARGUMENT", errObj["code"])
	details, ok := errObj["details"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "min", details["keywords"])
}

func TestReadyzHandler_AllOK(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	srv.CatalogCheck = func(context.Context) error { return nil }
	srv.ScorerCheck = func(context.Context) error { return nil }
	r := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	srv.ReadyzHandler()(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	obj := decodeBody(t, resp)
	checks, ok := obj["checks"].([]any)
	require.True(t, ok)
	require.Len(t, checks, 2)
	for _, c := range checks {
		require.True(t, c.(map[string]any)["ok"].(bool))
	}
}

func TestReadyzHandler_FailingCheck(t *testing.T) {
	srv := newAnalyzeServer(t, &stubExtractor{}, 5)
	srv.CatalogCheck = func(context.Context) error { return errors.New("catalog empty") }
	r := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	srv.ReadyzHandler()(w, r)
	resp := w.Result()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	obj := decodeBody(t, resp)
	checks := obj["checks"].([]any)
	first := checks[0].(map[string]any)
	require.Equal(t, "catalog", first["name"])
	require.False(t, first["ok"].(bool))
	require.Contains(t, first["details"], "catalog empty")
}
