package register

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/chemfetch/sds-parser/constants"
	"github.com/chemfetch/sds-parser/internal/common"
)

// Outcome reports what an append did.
type Outcome string

const (
	OutcomeAppended  Outcome = "APPENDED"
	OutcomeDuplicate Outcome = "DUPLICATE_SKIPPED"
)

// Store appends records to a CSV register with lazy header creation and
// barcode-based duplicate suppression. The duplicate scan and the append are
// not atomic, so all appenders go through one Store instance and its mutex;
// cross-process writers need their own serialization in front of the file.
type Store struct {
	Path   string
	Logger *slog.Logger

	mu sync.Mutex
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{Path: path, Logger: logger}
}

// Append writes the record as one row, creating the file with its header row
// first if it does not exist yet. A record whose barcode already appears in
// the register is silently skipped; a record without a barcode is never
// treated as a duplicate. Storage failures leave the in-memory record intact
// for the caller to retry or redirect.
func (s *Store) Append(rec *ParsedRecord) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists := true
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		exists = false
	}

	if exists && rec.Barcode != "" {
		dup, err := s.scanForBarcode(rec.Barcode)
		if err != nil {
			return "", common.StorageError("scan register for duplicates", err)
		}
		if dup {
			s.Logger.Info("register.duplicate", "barcode", rec.Barcode, "path", s.Path)
			return OutcomeDuplicate, nil
		}
	}

	if !exists {
		if dir := filepath.Dir(s.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", common.StorageError("create register directory", err)
			}
		}
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", common.StorageError("open register for append", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(constants.RegisterHeaders); err != nil {
			return "", common.StorageError("write register header", err)
		}
	}
	if err := w.Write(rec.Row()); err != nil {
		return "", common.StorageError("write register row", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", common.StorageError("flush register row", err)
	}

	s.Logger.Info("register.appended", "barcode", rec.Barcode, "product", rec.ProductName, "path", s.Path)
	return OutcomeAppended, nil
}

// scanForBarcode reads existing rows looking for an exact, case-sensitive
// match in the barcode column.
func (s *Store) scanForBarcode(barcode string) (bool, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	col := -1
	for i, h := range header {
		if h == constants.BarcodeHeader {
			col = i
			break
		}
	}
	if col == -1 {
		return false, nil
	}
	for {
		row, err := r.Read()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if col < len(row) && row[col] == barcode {
			return true, nil
		}
	}
}
