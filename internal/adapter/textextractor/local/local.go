// Package local extracts text from uploaded documents without any
// external service.
//
// It reads PDF and DOCX content in process and returns clean plain
// text for further processing. Legacy application/msword uploads are
// routed to the DOCX reader.
package local

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/hirelens/resume-scorer/internal/adapter/observability"
	"github.com/hirelens/resume-scorer/internal/domain"
	"github.com/hirelens/resume-scorer/pkg/textx"
)

const (
	formatPDF  = "pdf"
	formatDOCX = "docx"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// Extractor converts PDF and DOCX bytes into plain text, implementing
// domain.TextExtractor.
type Extractor struct{}

// New constructs a local extractor.
func New() *Extractor { return &Extractor{} }

// Extract converts document bytes into whitespace-normalized plain text.
// The declared content type decides the reader; the file extension is the
// fallback when the type is missing or generic. Empty output is not an
// error here, callers decide how to treat blank documents.
func (e *Extractor) Extract(ctx context.Context, fileName string, data []byte, declaredType string) (string, error) {
	format := resolveFormat(fileName, declaredType)
	if format == "" {
		return "", fmt.Errorf("op=local.Extract: %w: %q", domain.ErrUnsupportedFileType, declaredType)
	}

	var raw string
	var err error
	switch format {
	case formatPDF:
		raw, err = extractPDF(data)
	case formatDOCX:
		raw, err = extractDOCX(data)
	}
	observability.ObserveExtraction(format, err)
	if err != nil {
		return "", fmt.Errorf("op=local.Extract: %w: %v", domain.ErrExtractionFailure, err)
	}
	return textx.CollapseWhitespace(textx.SanitizeText(raw)), nil
}

func resolveFormat(fileName, declaredType string) string {
	switch strings.ToLower(strings.TrimSpace(declaredType)) {
	case "application/pdf":
		return formatPDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/msword":
		return formatDOCX
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return formatPDF
	case ".docx", ".doc":
		return formatDOCX
	}
	return ""
}

func extractPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, perr := page.GetPlainText(nil)
		if perr != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRe.ReplaceAllString(content, " ")
	return html.UnescapeString(content), nil
}
