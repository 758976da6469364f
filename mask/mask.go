// Package mask implements the opaque rectangular overlays stamped onto
// template pages. A mask covers part of the shared template with a white
// box and draws the current student's identification into it.
//
// Masks work in millimeters with the origin in the top left corner,
// matching gofpdf's coordinate system. The page dimensions passed to
// Apply are those of the imported template page, already converted from
// PDF points.
package mask

import (
	gofpdf "github.com/jung-kurt/gofpdf"

	"classmark"
)

// strokeWidth is the outline width of mask boxes in mm.
const strokeWidth = 0.2

// defaultFontSize is the point size used for box text when unset.
const defaultFontSize = 8

// Mask renders personalization content onto the current page of doc.
type Mask interface {
	Apply(doc *gofpdf.Fpdf, ctx *classmark.Context, pageW, pageH float64) error
}

// Empty leaves the page untouched.
type Empty struct{}

func (Empty) Apply(*gofpdf.Fpdf, *classmark.Context, float64, float64) error {
	return nil
}

// Stack applies masks in order. Later masks draw on top of earlier ones.
type Stack []Mask

func (s Stack) Apply(doc *gofpdf.Fpdf, ctx *classmark.Context, pageW, pageH float64) error {
	for _, m := range s {
		if err := m.Apply(doc, ctx, pageW, pageH); err != nil {
			return err
		}
	}
	return nil
}

// PtToMm converts PDF points to millimeters.
func PtToMm(pt float64) float64 {
	return pt * 25.4 / 72
}

// MmToPt converts millimeters to PDF points.
func MmToPt(mm float64) float64 {
	return mm * 72 / 25.4
}
