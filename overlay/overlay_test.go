package overlay_test

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"

	gofpdf "github.com/jung-kurt/gofpdf"
	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap/zaptest"

	"classmark"
	"classmark/layout"
	"classmark/mask"
	"classmark/overlay"
	"classmark/template"
)

// testClass returns students deliberately out of name order.
func testClass() classmark.Class {
	return classmark.Class{
		School:  "Testschule Bern",
		Teacher: classmark.Teacher{FirstName: "Urs", LastName: "Moser"},
		Students: []classmark.Student{
			{FirstName: "Vanessa", LastName: "Tay", ID: 98635},
			{FirstName: "Jonathan", LastName: "Stoppani", ID: 123455},
			{FirstName: "Jakub", LastName: "Janoszek", ID: 19757},
		},
	}
}

// createTemplate generates a template PDF with the given number of pages.
func createTemplate(t *testing.T, filename string, numPages int) {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 14)
	for i := 1; i <= numPages; i++ {
		doc.AddPage()
		doc.Text(20, 120, fmt.Sprintf("Exam page %d of %d", i, numPages))
	}
	if err := doc.OutputFileAndClose(filename); err != nil {
		t.Fatalf("creating template: %v", err)
	}
}

// pageCount returns the number of pages of a PDF file.
func pageCount(t *testing.T, path string) int {
	t.Helper()
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return ctx.PageCount
}

// pageText extracts the plain text of one page (1-based) of a PDF file.
func pageText(t *testing.T, path string, pageNum int) string {
	t.Helper()
	f, r, err := ledongthuc.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	text, err := r.Page(pageNum).GetPlainText(nil)
	if err != nil {
		t.Fatalf("extracting page %d text: %v", pageNum, err)
	}
	return text
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "template.pdf")
	outPath := filepath.Join(dir, "combined.pdf")
	createTemplate(t, tplPath, 5)

	gen, err := overlay.New(tplPath, testClass(), layout.Default())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.GenerateFile(outPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// 3 students x 5 pages, student-major.
	if got := pageCount(t, outPath); got != 15 {
		t.Fatalf("page count = %d, want 15", got)
	}

	// Students are sorted by last name, so the copies appear in the
	// order Janoszek, Stoppani, Tay. Page 2 of each copy carries the
	// info box with the student's name.
	for i, want := range []string{"Janoszek", "Stoppani", "Tay"} {
		page := i*5 + 2
		text := pageText(t, outPath, page)
		if !strings.Contains(text, want) {
			t.Errorf("page %d should mention %s, got: %q", page, want, text)
		}
	}

	// Header pages carry the student ID and the 0-based page label.
	text := pageText(t, outPath, 3) // first student, third template page
	if !strings.Contains(text, "19757") {
		t.Errorf("page 3 should mention the student ID, got: %q", text)
	}
	if !strings.Contains(text, "Seite 2") {
		t.Errorf("page 3 should carry the page label, got: %q", text)
	}

	// The untouched first page of each copy keeps the template text only.
	first := pageText(t, outPath, 1)
	if !strings.Contains(first, "Exam page 1") {
		t.Errorf("page 1 should keep the template content, got: %q", first)
	}
	if strings.Contains(first, "Janoszek") {
		t.Errorf("page 1 must not be personalized, got: %q", first)
	}
}

func TestGenerateLayoutShorterThanTemplate(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "template.pdf")
	outPath := filepath.Join(dir, "combined.pdf")
	createTemplate(t, tplPath, 4)

	// One-page layout over a four-page template: the remaining pages
	// get the fallback mask and stay untouched.
	masks := []mask.Mask{
		mask.Header{TopMargin: 15, RightMargin: 11, Width: 42, Height: 10},
	}

	gen, err := overlay.New(tplPath, testClass(), masks)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.GenerateFile(outPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got := pageCount(t, outPath); got != 12 {
		t.Errorf("page count = %d, want 12", got)
	}
	if text := pageText(t, outPath, 2); strings.Contains(text, "19757") {
		t.Errorf("page 2 beyond the layout must stay untouched, got: %q", text)
	}
}

func TestGenerateWithFallback(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "template.pdf")
	outPath := filepath.Join(dir, "combined.pdf")
	createTemplate(t, tplPath, 3)

	hdr := mask.Header{TopMargin: 15, RightMargin: 11, Width: 42, Height: 10}
	gen, err := overlay.New(tplPath, testClass(), nil, overlay.WithFallback(hdr))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.GenerateFile(outPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// With a header fallback every page carries the student ID.
	if text := pageText(t, outPath, 3); !strings.Contains(text, "19757") {
		t.Errorf("fallback header missing on page 3, got: %q", text)
	}
}

func TestGenerateWithoutSorting(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "template.pdf")
	outPath := filepath.Join(dir, "combined.pdf")
	createTemplate(t, tplPath, 2)

	masks := []mask.Mask{
		mask.InfoBox{TopMargin: 28, LeftMargin: 20.5, RightMargin: 14.5, Height: 25},
	}

	gen, err := overlay.New(tplPath, testClass(), masks, overlay.WithoutSorting())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.GenerateFile(outPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Roster order starts with Tay.
	if text := pageText(t, outPath, 1); !strings.Contains(text, "Tay") {
		t.Errorf("page 1 should mention Tay in roster order, got: %q", text)
	}
}

func TestGenerateWithLoggerAndPageSize(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "template.pdf")
	outPath := filepath.Join(dir, "combined.pdf")
	createTemplate(t, tplPath, 2)

	gen, err := overlay.New(tplPath, testClass(), nil,
		overlay.WithLogger(zaptest.NewLogger(t)),
		overlay.WithPageSize(200, 200),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.GenerateFile(outPath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if got := pageCount(t, outPath); got != 6 {
		t.Errorf("page count = %d, want 6", got)
	}

	// The configured page size is only a default for pages without a
	// usable media box; imported sizes win, so the output stays A4.
	info, err := template.Inspect(outPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if s := info.PageSizes[0]; math.Abs(s.Width-595.28) > 1 || math.Abs(s.Height-841.89) > 1 {
		t.Errorf("page 1 size = %.2f x %.2f, want ~A4", s.Width, s.Height)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := overlay.New("", testClass(), nil); !errors.Is(err, classmark.ErrNoTemplate) {
		t.Errorf("err = %v, want ErrNoTemplate", err)
	}

	empty := classmark.Class{School: "X"}
	if _, err := overlay.New("t.pdf", empty, nil); !errors.Is(err, classmark.ErrNoStudents) {
		t.Errorf("err = %v, want ErrNoStudents", err)
	}
}

func TestGenerateMissingTemplate(t *testing.T) {
	gen, err := overlay.New(filepath.Join(t.TempDir(), "nope.pdf"), testClass(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := gen.GenerateFile(filepath.Join(t.TempDir(), "out.pdf")); err == nil {
		t.Error("expected error for missing template")
	}
}
