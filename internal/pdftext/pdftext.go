// Package pdftext extracts plain text from uploaded résumé files. PDF text
// comes from the pdf reader's content streams; DOCX text is recovered from
// the document XML by stripping tags, which loses styling but keeps the
// line structure the extractor heuristics depend on.
package pdftext

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for any extension other than .pdf/.docx.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")

// FromFile extracts text from résumé file data, dispatching on the filename
// extension.
func FromFile(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FromPDF(data)
	case ".docx":
		return FromDOCX(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

// FromPDF extracts the plain text of every page in the document.
func FromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	stream, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return Normalize(buf.String()), nil
}

// FromDOCX extracts text from word/document.xml inside the docx archive.
// Paragraph ends become newlines before tags are stripped, so section
// headers stay on their own lines.
func FromDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var document []byte
	for _, f := range archive.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open docx document: %w", err)
		}
		document, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read docx document: %w", err)
		}
		break
	}
	if len(document) == 0 {
		return "", errors.New("docx archive has no word/document.xml")
	}
	text := string(document)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTag.ReplaceAllString(text, " ")
	return Normalize(text), nil
}

var (
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
	blankRun     = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRun   = regexp.MustCompile(`\n[ \t]*\n+`)
	lineLeading  = regexp.MustCompile(`(?m)^[ \t]+`)
	lineTrailing = regexp.MustCompile(`(?m)[ \t]+$`)
)

// Normalize collapses whitespace runs while preserving line boundaries.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\u00A0", " ")
	text = blankRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n")
	text = lineLeading.ReplaceAllString(text, "")
	text = lineTrailing.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
