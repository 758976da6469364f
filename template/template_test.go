package template_test

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	gofpdf "github.com/jung-kurt/gofpdf"

	"classmark/template"
)

// createTestPDF generates a simple test PDF file with the given number of pages.
func createTestPDF(t *testing.T, filename string, numPages int) {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 14)
	for i := 1; i <= numPages; i++ {
		doc.AddPage()
		doc.Text(20, 30, fmt.Sprintf("Page %d of %d", i, numPages))
	}
	if err := doc.OutputFileAndClose(filename); err != nil {
		t.Fatalf("creating test PDF: %v", err)
	}
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.pdf")
	createTestPDF(t, path, 5)

	info, err := template.Inspect(path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	if info.PageCount != 5 {
		t.Errorf("page count = %d, want 5", info.PageCount)
	}
	if info.Encrypted {
		t.Error("template should not be reported as encrypted")
	}
	if len(info.PageSizes) != 5 {
		t.Fatalf("got %d page sizes, want 5", len(info.PageSizes))
	}
	// A4 in points is 595.28 x 841.89.
	for i, s := range info.PageSizes {
		if math.Abs(s.Width-595.28) > 1 || math.Abs(s.Height-841.89) > 1 {
			t.Errorf("page %d size = %.2f x %.2f, want ~A4", i+1, s.Width, s.Height)
		}
	}
}

func TestInspectMissingFile(t *testing.T) {
	if _, err := template.Inspect(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.pdf")
	createTestPDF(t, path, 2)

	if err := template.Validate(path); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := template.Validate(path); err == nil {
		t.Error("expected validation error for non-PDF input")
	}
}
