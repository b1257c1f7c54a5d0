package register

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chemfetch/sds-parser/constants"
	"github.com/chemfetch/sds-parser/internal/common"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open register: %v", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read register: %v", err)
	}
	return rows
}

func sampleRecord(barcode string) *ParsedRecord {
	rec := NewRecord()
	rec.ProductName = "Fancy Stuff"
	rec.Vendor = "ExampleCorp"
	rec.CASNumber = "64-17-5"
	rec.Barcode = barcode
	return rec
}

func TestAppendCreatesHeaderAndRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.csv")
	store := NewStore(path, nil)

	outcome, err := store.Append(sampleRecord("9300601234567"))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if outcome != OutcomeAppended {
		t.Fatalf("outcome = %q, want %q", outcome, OutcomeAppended)
	}

	rows := readAll(t, path)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 data row", len(rows))
	}
	if len(rows[0]) != len(constants.RegisterHeaders) {
		t.Errorf("header has %d columns, want %d", len(rows[0]), len(constants.RegisterHeaders))
	}
	for i, h := range constants.RegisterHeaders {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}
	if rows[1][0] != "Fancy Stuff" || rows[1][len(rows[1])-1] != "9300601234567" {
		t.Errorf("data row mismatch: %v", rows[1])
	}
}

func TestAppendSkipsDuplicateBarcode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.csv")
	store := NewStore(path, nil)

	if _, err := store.Append(sampleRecord("111")); err != nil {
		t.Fatal(err)
	}
	before := len(readAll(t, path))

	outcome, err := store.Append(sampleRecord("111"))
	if err != nil {
		t.Fatalf("duplicate append should not error: %v", err)
	}
	if outcome != OutcomeDuplicate {
		t.Errorf("outcome = %q, want %q", outcome, OutcomeDuplicate)
	}
	if after := len(readAll(t, path)); after != before {
		t.Errorf("row count changed on duplicate: %d -> %d", before, after)
	}
}

func TestAppendNewBarcodeAddsExactlyOneRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.csv")
	store := NewStore(path, nil)

	if _, err := store.Append(sampleRecord("111")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Append(sampleRecord("222")); err != nil {
		t.Fatal(err)
	}

	rows := readAll(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(rows))
	}
	for i, h := range constants.RegisterHeaders {
		if rows[0][i] != h {
			t.Fatalf("header corrupted after second append: %v", rows[0])
		}
	}
}

func TestAppendWithoutBarcodeNeverDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.csv")
	store := NewStore(path, nil)

	if _, err := store.Append(sampleRecord("")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Append(sampleRecord("")); err != nil {
		t.Fatal(err)
	}
	if rows := readAll(t, path); len(rows) != 3 {
		t.Errorf("got %d rows, want identical barcode-less records kept", len(rows))
	}
}

func TestBarcodeMatchIsCaseSensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.csv")
	store := NewStore(path, nil)

	if _, err := store.Append(sampleRecord("abc123")); err != nil {
		t.Fatal(err)
	}
	outcome, err := store.Append(sampleRecord("ABC123"))
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeAppended {
		t.Errorf("differing case should not deduplicate, got %q", outcome)
	}
}

func TestAppendUnwritableDestination(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not bind for root")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	store := NewStore(filepath.Join(dir, "register.csv"), nil)
	_, err := store.Append(sampleRecord("111"))
	if err == nil {
		t.Fatal("expected storage error")
	}
	if !errors.Is(err, common.ErrStorage) {
		t.Errorf("want storage error, got %v", err)
	}
}

func TestRowMapKeysEveryHeader(t *testing.T) {
	m := sampleRecord("9000").RowMap()
	if len(m) != len(constants.RegisterHeaders) {
		t.Fatalf("got %d keys, want %d", len(m), len(constants.RegisterHeaders))
	}
	if m[constants.BarcodeHeader] != "9000" {
		t.Errorf("barcode column = %q, want 9000", m[constants.BarcodeHeader])
	}
	if m["SDS Available"] != "Yes" {
		t.Errorf("SDS Available should default to Yes, got %q", m["SDS Available"])
	}
}
