package ingest

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chemfetch/sds-parser/internal/common"
)

// Extractor turns a source document into plain text: text layer first, OCR
// fallback when the layer is missing or suspiciously short. The extraction
// engine downstream is agnostic to which path produced the text.
type Extractor struct {
	Logger *slog.Logger
	Cfg    common.OCRConfig
	Runner Runner
}

func NewExtractor(logger *slog.Logger, cfg common.OCRConfig) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PdftotextBin == "" {
		cfg.PdftotextBin = "pdftotext"
	}
	if cfg.PdftoppmBin == "" {
		cfg.PdftoppmBin = "pdftoppm"
	}
	if cfg.MinTextLen <= 0 {
		cfg.MinTextLen = 30
	}
	return &Extractor{Logger: logger, Cfg: cfg, Runner: execRunner{}}
}

// ExtractText detects file type and returns text via direct extraction or OCR.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case ".pdf":
		text, err := e.TextLayer(ctx, path)
		if err == nil && len(strings.TrimSpace(text)) >= e.Cfg.MinTextLen {
			e.Logger.Info("ingest.text_layer.ok",
				"path", path, "bytes", len(text),
				"request_id", common.RequestIDFromContext(ctx))
			return text, nil
		}
		e.Logger.Info("ingest.ocr.fallback",
			"path", path, "layer_bytes", len(text),
			"request_id", common.RequestIDFromContext(ctx))
		return e.OCR(ctx, path)
	case ".png", ".jpg", ".jpeg", ".tiff":
		return e.OCR(ctx, path)
	default:
		return "", errors.New("unsupported file type: " + ext)
	}
}
