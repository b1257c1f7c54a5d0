package ingest

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// OCR rasterizes PDF pages with pdftoppm and runs tesseract over each page.
// Image files go straight to tesseract.
func (e *Extractor) OCR(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" {
		return e.ocrImage(path)
	}

	tmpDir, err := os.MkdirTemp("", "sds_ocr")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	if _, _, err := e.Runner.Run(ctx, e.Cfg.PdftoppmBin, "-png", "-r", "300", path, prefix); err != nil {
		return "", fmt.Errorf("pdftoppm convert failed: %w", err)
	}
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return "", err
	}

	var combined strings.Builder
	for _, page := range pages {
		t, err := e.ocrImage(page)
		if err != nil {
			e.Logger.Warn("ingest.ocr.page_failed", "page", page, "err", err)
			continue
		}
		combined.WriteString(t)
		combined.WriteString("\n")
	}
	return strings.TrimSpace(combined.String()), nil
}

func (e *Extractor) ocrImage(imgPath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if e.Cfg.TessdataDir != "" {
		if err := client.SetTessdataPrefix(e.Cfg.TessdataDir); err != nil {
			return "", err
		}
	}
	if err := client.SetImage(imgPath); err != nil {
		return "", err
	}
	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// OCRStatus describes the OCR toolchain for health reporting.
type OCRStatus struct {
	TesseractInPath bool   `json:"tesseract_in_path"`
	PdftoppmInPath  bool   `json:"pdftoppm_in_path"`
	Version         string `json:"version,omitempty"`
}

// lookPath is swapped out in tests alongside Runner.
var lookPath = exec.LookPath

// Status probes the external OCR binaries.
func (e *Extractor) Status(ctx context.Context) OCRStatus {
	st := OCRStatus{}
	if _, err := lookPath("tesseract"); err == nil {
		st.TesseractInPath = true
		if out, _, err := e.Runner.Run(ctx, "tesseract", "--version"); err == nil {
			if lines := strings.SplitN(string(out), "\n", 2); len(lines) > 0 {
				st.Version = strings.TrimSpace(lines[0])
			}
		}
	}
	if _, err := lookPath(e.Cfg.PdftoppmBin); err == nil {
		st.PdftoppmInPath = true
	}
	return st
}
