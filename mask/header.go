package mask

import (
	"fmt"

	gofpdf "github.com/jung-kurt/gofpdf"

	"classmark"
)

// DefaultPageLabel is the format applied to the template page number on
// header boxes. It receives the 0-based page index.
const DefaultPageLabel = "(Seite %d)"

// Header draws the compact identification box in the top right corner of
// answer sheet pages: the student ID on the left and the page label on
// the right, on a white background without an outline.
type Header struct {
	TopMargin   float64 // mm from the top edge of the page
	RightMargin float64 // mm from the right edge
	Width       float64 // box width in mm
	Height      float64 // box height in mm

	FontSize  float64 // point size, defaults to 8
	Stroke    bool    // draw a black outline around the box
	PageLabel string  // fmt format for the page number, defaults to DefaultPageLabel
}

func (h Header) Apply(doc *gofpdf.Fpdf, ctx *classmark.Context, pageW, pageH float64) error {
	x := pageW - h.RightMargin - h.Width
	if x < 0 || h.Width <= 0 || h.Height <= 0 || h.TopMargin+h.Height > pageH {
		return classmark.ErrInvalidBox
	}

	fontSize := h.FontSize
	if fontSize == 0 {
		fontSize = defaultFontSize
	}
	labelFormat := h.PageLabel
	if labelFormat == "" {
		labelFormat = DefaultPageLabel
	}

	doc.SetDrawColor(0, 0, 0)
	doc.SetFillColor(255, 255, 255)
	doc.SetLineWidth(strokeWidth)
	boxStyle := "F"
	if h.Stroke {
		boxStyle = "FD"
	}
	doc.Rect(x, h.TopMargin, h.Width, h.Height, boxStyle)

	doc.SetFont("Helvetica", "", fontSize)
	doc.SetTextColor(0, 0, 0)

	// Baselines sit 2 mm above the bottom edge of the box.
	baseline := h.TopMargin + h.Height - 2

	doc.Text(x+2, baseline, fmt.Sprintf("ID: %d", ctx.Student.ID))

	label := fmt.Sprintf(labelFormat, ctx.PageNum)
	labelW := doc.GetStringWidth(label)
	doc.Text(x+h.Width-2-labelW, baseline, label)

	if doc.Err() {
		return doc.Error()
	}
	return nil
}
