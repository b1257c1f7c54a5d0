package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chemfetch/sds-parser/constants"
)

// Service turns the CSV register into an XLSX workbook for distribution.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// RegisterXLSX reads the register at csvPath and returns workbook bytes. The
// header row is rewritten from the canonical schema so a hand-edited register
// still exports with consistent columns.
func (s *Service) RegisterXLSX(csvPath string) ([]byte, error) {
	start := time.Now()

	in, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open register: %w", err)
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	if _, err := r.Read(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read register header: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Chemical Register"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range constants.RegisterHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	rows := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read register row: %w", err)
		}
		for i, v := range rec {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
		rows++
	}

	// Widen the columns people actually read
	_ = f.SetColWidth(sheet, "A", "B", 28) // product, vendor
	_ = f.SetColWidth(sheet, "E", "E", 14) // CAS
	_ = f.SetColWidth(sheet, "G", "G", 18) // issue date
	_ = f.SetColWidth(sheet, "K", "K", 60) // description
	_ = f.SetColWidth(sheet, "S", "S", 16) // barcode

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
