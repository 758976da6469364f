// Package overlay assembles the personalized output document. For every
// student in the class and every page of the template it draws the
// imported template page and applies the page's mask on top, producing
// one combined document in student-major, page-minor order.
//
// It uses the gofpdi contrib package to import template pages into the
// output document; each template page is imported once and reused across
// all student copies.
package overlay

import (
	"fmt"
	"io"
	"os"

	gofpdf "github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"classmark"
	"classmark/mask"
	"classmark/roster"
	"classmark/template"
)

// A4 fallback dimensions in mm for pages without a usable media box.
const (
	a4WidthMm  = 210.0
	a4HeightMm = 297.0
)

// Generator produces one personalized copy of the template per student.
type Generator struct {
	templatePath string
	class        classmark.Class
	layout       []mask.Mask

	fallback     mask.Mask
	collation    language.Tag
	sorted       bool
	pageW, pageH float64 // mm, for pages without a usable media box
	logger       *zap.Logger
}

// New creates a Generator for the given template, class, and per-page
// layout. The layout may be shorter than the template; pages beyond its
// end receive the fallback mask.
func New(templatePath string, class classmark.Class, layout []mask.Mask, opts ...Option) (*Generator, error) {
	if templatePath == "" {
		return nil, classmark.ErrNoTemplate
	}
	if len(class.Students) == 0 {
		return nil, classmark.ErrNoStudents
	}

	g := &Generator{
		templatePath: templatePath,
		class:        class,
		layout:       layout,
		fallback:     mask.Empty{},
		collation:    language.German,
		sorted:       true,
		pageW:        a4WidthMm,
		pageH:        a4HeightMm,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// tplPage is an imported template page ready for reuse.
type tplPage struct {
	id   int
	w, h float64 // mm
}

// Generate writes the combined document to w.
func (g *Generator) Generate(w io.Writer) error {
	info, err := template.Inspect(g.templatePath)
	if err != nil {
		return err
	}
	if info.Encrypted {
		return classmark.ErrEncrypted
	}
	if info.PageCount == 0 {
		return &classmark.OpError{Op: "Generate", Err: fmt.Errorf("template %s has no pages", g.templatePath)}
	}

	students := append([]classmark.Student(nil), g.class.Students...)
	if g.sorted {
		roster.SortStudents(students, g.collation)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	pages := make([]tplPage, info.PageCount)
	for i := 1; i <= info.PageCount; i++ {
		pages[i-1] = g.importPage(doc, i)
	}
	g.logger.Debug("template imported",
		zap.String("template", g.templatePath),
		zap.Int("pages", info.PageCount),
	)

	for _, s := range students {
		for i, tpl := range pages {
			doc.AddPageFormat("P", gofpdf.SizeType{Wd: tpl.w, Ht: tpl.h})
			gofpdi.UseImportedTemplate(doc, tpl.id, 0, 0, tpl.w, tpl.h)

			m := g.fallback
			if i < len(g.layout) && g.layout[i] != nil {
				m = g.layout[i]
			}
			if err := m.Apply(doc, g.class.Context(s, i), tpl.w, tpl.h); err != nil {
				return &classmark.OpError{
					Op:  "Generate",
					Err: fmt.Errorf("student %d, page %d: %w", s.ID, i+1, err),
				}
			}
		}
		g.logger.Debug("copy rendered", zap.Int("student_id", s.ID))
	}

	if doc.Err() {
		return &classmark.OpError{Op: "Generate", Err: doc.Error()}
	}
	return doc.Output(w)
}

// GenerateFile writes the combined document to a file.
func (g *Generator) GenerateFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &classmark.OpError{Op: "Generate", Err: fmt.Errorf("creating %s: %w", path, err)}
	}
	defer f.Close()
	return g.Generate(f)
}

// importPage imports a single template page and returns its dimensions
// in mm, falling back to the configured page size when the media box is
// unusable.
func (g *Generator) importPage(doc *gofpdf.Fpdf, pageNum int) tplPage {
	p := tplPage{id: gofpdi.ImportPage(doc, g.templatePath, pageNum, "/MediaBox")}
	if dims, ok := gofpdi.GetPageSizes()[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			p.w = mask.PtToMm(mb["w"])
			p.h = mask.PtToMm(mb["h"])
		}
	}
	if p.w == 0 || p.h == 0 {
		p.w, p.h = g.pageW, g.pageH
	}
	return p
}
