package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/chemfetch/sds-parser/constants"
	"github.com/chemfetch/sds-parser/internal/register"
)

func writeRegister(t *testing.T, recs ...*register.ParsedRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "register.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(constants.RegisterHeaders); err != nil {
		t.Fatal(err)
	}
	for _, rec := range recs {
		if err := w.Write(rec.Row()); err != nil {
			t.Fatal(err)
		}
	}
	w.Flush()
	return path
}

func TestRegisterXLSX(t *testing.T) {
	rec := register.NewRecord()
	rec.ProductName = "Fancy Stuff"
	rec.Vendor = "ExampleCorp"
	rec.Barcode = "9300601234567"
	path := writeRegister(t, rec)

	data, err := NewService(nil).RegisterXLSX(path)
	if err != nil {
		t.Fatalf("RegisterXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	const sheet = "Chemical Register"
	a1, err := wb.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if a1 != "Product Name" {
		t.Errorf("A1 = %q, want header row", a1)
	}
	a2, _ := wb.GetCellValue(sheet, "A2")
	if a2 != "Fancy Stuff" {
		t.Errorf("A2 = %q, want first data row", a2)
	}
}

func TestRegisterXLSXMissingFile(t *testing.T) {
	_, err := NewService(nil).RegisterXLSX(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing register")
	}
}
