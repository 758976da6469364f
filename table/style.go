// Package table renders small fixed-layout tables onto a PDF page.
//
// It is built for the identification boxes stamped onto template pages:
// tables drawn at an absolute position with fixed column widths and a
// uniform row height. There is no pagination; a box must never flow onto
// another page.
package table

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// FontSpec defines font properties for text rendering.
type FontSpec struct {
	Family string
	Style  string  // "", "B", "I", "BI"
	Size   float64 // in points
}

// Padding defines spacing inside a cell.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderStyle defines the appearance of cell borders.
type BorderStyle struct {
	Width float64
	Color RGBColor
}

// CellStyle defines the visual appearance of a cell.
type CellStyle struct {
	FillColor *RGBColor
	TextColor *RGBColor
	Font      *FontSpec
	Align     string // "L", "C", "R"
	Padding   *Padding
}

// TableStyle defines the overall appearance of a table.
type TableStyle struct {
	Border      *BorderStyle // cell borders; nil means no grid
	CellPadding Padding
	CellFont    *FontSpec
}

// mergeStyle copies non-empty fields from src to dst.
func mergeStyle(dst, src *CellStyle) {
	if src.FillColor != nil {
		dst.FillColor = src.FillColor
	}
	if src.TextColor != nil {
		dst.TextColor = src.TextColor
	}
	if src.Font != nil {
		dst.Font = src.Font
	}
	if src.Align != "" {
		dst.Align = src.Align
	}
	if src.Padding != nil {
		dst.Padding = src.Padding
	}
}
