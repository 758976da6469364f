package mask

import (
	"fmt"
	"strconv"

	"github.com/boombuler/barcode/code128"
	gofpdf "github.com/jung-kurt/gofpdf"
	contrib "github.com/jung-kurt/gofpdf/contrib/barcode"

	"classmark"
)

// Barcode symbologies.
const (
	Code128 = "code128" // student ID only
	PDF417  = "pdf417"  // "last;first;id" payload
)

// Barcode stamps the student's identification as a machine-readable
// symbol in a white box anchored to the top right corner, for answer
// sheets that are scanned after the exam.
type Barcode struct {
	TopMargin   float64 // mm from the top edge of the page
	RightMargin float64 // mm from the right edge
	Width       float64 // box width in mm
	Height      float64 // box height in mm

	Format string // Code128 (default) or PDF417
}

func (b Barcode) Apply(doc *gofpdf.Fpdf, ctx *classmark.Context, pageW, pageH float64) error {
	x := pageW - b.RightMargin - b.Width
	if x < 0 || b.Width <= 0 || b.Height <= 0 || b.TopMargin+b.Height > pageH {
		return classmark.ErrInvalidBox
	}

	doc.SetFillColor(255, 255, 255)
	doc.Rect(x, b.TopMargin, b.Width, b.Height, "F")

	var key string
	switch b.Format {
	case "", Code128:
		code, err := code128.Encode(strconv.Itoa(ctx.Student.ID))
		if err != nil {
			return fmt.Errorf("mask: encoding ID %d as Code 128: %w", ctx.Student.ID, err)
		}
		key = contrib.Register(code)
	case PDF417:
		payload := fmt.Sprintf("%s;%s;%d", ctx.Student.LastName, ctx.Student.FirstName, ctx.Student.ID)
		key = contrib.RegisterPdf417(doc, payload, 4, 2)
	default:
		return fmt.Errorf("mask: unknown barcode format %q", b.Format)
	}

	// 1 mm quiet zone inside the box.
	contrib.Barcode(doc, key, x+1, b.TopMargin+1, b.Width-2, b.Height-2, false)

	if doc.Err() {
		return doc.Error()
	}
	return nil
}
