package ingest

import (
	"bytes"
	"context"
	"io"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// TextLayer extracts the embedded text layer of a PDF. Returns "" (no error)
// for PDFs that carry no extractable text, so the caller can decide whether
// to fall back to OCR.
func (e *Extractor) TextLayer(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return e.pdftotext(ctx, path)
	}
	defer f.Close()

	b, err := r.GetPlainText()
	if err != nil {
		return e.pdftotext(ctx, path)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, b); err != nil {
		return "", err
	}
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return e.pdftotext(ctx, path)
	}
	return text, nil
}

// pdftotext shells out to poppler as a second opinion; some PDFs defeat the
// pure-Go reader but extract fine with -layout.
func (e *Extractor) pdftotext(ctx context.Context, path string) (string, error) {
	out, _, err := e.Runner.Run(ctx, e.Cfg.PdftotextBin, "-layout", path, "-")
	if err != nil {
		return "", nil // no text layer; OCR may still succeed
	}
	return strings.TrimSpace(string(out)), nil
}
