//go:build e2e
// +build e2e

package e2e_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpserver "github.com/hirelens/resume-scorer/internal/adapter/httpserver"
	"github.com/hirelens/resume-scorer/internal/adapter/textextractor/local"
	"github.com/hirelens/resume-scorer/internal/app"
	"github.com/hirelens/resume-scorer/internal/catalog"
	"github.com/hirelens/resume-scorer/internal/config"
	"github.com/hirelens/resume-scorer/internal/scoring"
	"github.com/hirelens/resume-scorer/internal/usecase"
)

func e2eConfig() config.Config {
	return config.Config{
		Port:            8080,
		AppEnv:          "test",
		MaxUploadMB:     5,
		RateLimitPerMin: 100,
		RequestTimeout:  15 * time.Second,
	}
}

// startServer boots the full HTTP stack in-process: embedded catalog,
// scoring engine and the local document extractor, behind the production
// router. Each call returns a fresh server so tests cannot observe each
// other's keyword additions.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)
	scorer, err := scoring.New(cat, scoring.DefaultThresholds())
	require.NoError(t, err)

	svc := usecase.NewAnalyzeService(local.New(), scorer)
	catalogCheck, scorerCheck := app.BuildReadinessChecks(cat, scorer)
	srv := httpserver.NewServer(e2eConfig(), svc, cat, nil, catalogCheck, scorerCheck)

	ts := httptest.NewServer(app.BuildRouter(e2eConfig(), srv))
	t.Cleanup(ts.Close)
	return ts
}

// buildDocx packs paragraphs into a minimal but well-formed DOCX archive.
func buildDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	files := []struct{ name, body string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`},
		{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`},
		{"word/document.xml", documentXML},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`},
		{"word/header1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:hdr>`},
		{"word/footer1.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:ftr>`},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF assembles a one-page PDF with a correct xref table. The text
// must not contain unescaped parentheses.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)
	return buf.Bytes()
}

// postResume uploads data as a multipart resume file along with extra
// form fields and returns the raw response.
func postResume(t *testing.T, client *http.Client, url, filename string, data []byte, fields map[string]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, url+"/v1/analyze", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

// postJSON sends body to path and returns the raw response.
func postJSON(t *testing.T, client *http.Client, url, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, url+path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeMap drains and closes the response body, decoding it as a JSON
// object.
func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), "body: %s", string(b))
	return m
}
