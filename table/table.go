package table

import (
	"fmt"

	gofpdf "github.com/jung-kurt/gofpdf"
)

// ColumnDef defines the properties of a table column.
type ColumnDef struct {
	Width float64 // fixed width in document units
	Align string  // default alignment for this column ("L", "C", "R")
}

// Table is a fixed-layout table drawn at an absolute page position.
type Table struct {
	doc       *gofpdf.Fpdf
	columns   []ColumnDef
	rows      []*Row
	style     TableStyle
	x, y      float64 // starting position (0,0 means current cursor)
	rowHeight float64 // uniform row height (0 means derived from font size)
}

// New creates a new Table associated with the given PDF document.
func New(doc *gofpdf.Fpdf) *Table {
	return &Table{
		doc: doc,
		style: TableStyle{
			CellPadding: UniformPadding(1),
		},
	}
}

// SetColumns sets column definitions for the table.
func (t *Table) SetColumns(cols ...ColumnDef) *Table {
	t.columns = cols
	return t
}

// SetColumnWidths is a convenience method to set column widths directly.
func (t *Table) SetColumnWidths(widths ...float64) *Table {
	t.columns = make([]ColumnDef, len(widths))
	for i, w := range widths {
		t.columns[i] = ColumnDef{Width: w}
	}
	return t
}

// SetPosition sets the top-left position of the table.
// If not called, the table starts at the current PDF cursor position.
func (t *Table) SetPosition(x, y float64) *Table {
	t.x = x
	t.y = y
	return t
}

// SetRowHeight sets a uniform height for all rows. If not called, the row
// height is derived from the current font size.
func (t *Table) SetRowHeight(h float64) *Table {
	t.rowHeight = h
	return t
}

// SetStyle sets the table-wide style.
func (t *Table) SetStyle(s TableStyle) *Table {
	t.style = s
	return t
}

// AddRow adds a new row to the table and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// Render draws the table to the PDF document.
func (t *Table) Render() error {
	if t.doc.Err() {
		return t.doc.Error()
	}

	for i, col := range t.columns {
		if col.Width <= 0 {
			return fmt.Errorf("table: column %d has no width", i)
		}
	}

	startX := t.x
	if startX == 0 {
		startX = t.doc.GetX()
	}
	y := t.y
	if y == 0 {
		y = t.doc.GetY()
	}

	rowH := t.rowHeight
	if rowH == 0 {
		_, unitSize := t.doc.GetFontSize()
		rowH = unitSize * 1.5
	}

	for _, r := range t.rows {
		t.renderRow(r, startX, y, rowH)
		y += rowH
	}
	t.doc.SetXY(startX, y)

	return t.doc.Error()
}

// renderRow draws a single row at the given position.
func (t *Table) renderRow(r *Row, startX, y, rowH float64) {
	x := startX

	for i, cell := range r.cells {
		if i >= len(t.columns) {
			break
		}
		cellW := t.columns[i].Width
		style := t.resolveCellStyle(cell, r)

		if style.FillColor != nil {
			fc := style.FillColor
			t.doc.SetFillColor(fc.R, fc.G, fc.B)
			t.doc.Rect(x, y, cellW, rowH, "F")
		}
		if t.style.Border != nil {
			bc := t.style.Border.Color
			t.doc.SetDrawColor(bc.R, bc.G, bc.B)
			if t.style.Border.Width > 0 {
				t.doc.SetLineWidth(t.style.Border.Width)
			}
			t.doc.Rect(x, y, cellW, rowH, "D")
		}

		if style.TextColor != nil {
			tc := style.TextColor
			t.doc.SetTextColor(tc.R, tc.G, tc.B)
		}
		if style.Font != nil {
			t.doc.SetFont(style.Font.Family, style.Font.Style, style.Font.Size)
		}

		align := "L"
		if style.Align != "" {
			align = style.Align
		} else if t.columns[i].Align != "" {
			align = t.columns[i].Align
		}

		padding := t.style.CellPadding
		if style.Padding != nil {
			padding = *style.Padding
		}

		t.doc.SetXY(x+padding.Left, y+padding.Top)
		t.doc.CellFormat(cellW-padding.Left-padding.Right, rowH-padding.Top-padding.Bottom,
			cell.text, "", 0, align, false, 0, "")

		x += cellW
	}

	// Restore colors to defaults.
	t.doc.SetDrawColor(0, 0, 0)
	t.doc.SetFillColor(0, 0, 0)
	t.doc.SetTextColor(0, 0, 0)
}

// resolveCellStyle determines the effective style for a cell by merging
// table, row, and cell-level styles.
func (t *Table) resolveCellStyle(cell *Cell, row *Row) CellStyle {
	var result CellStyle

	if t.style.CellFont != nil {
		result.Font = t.style.CellFont
	}
	if row.style != nil {
		mergeStyle(&result, row.style)
	}
	if cell.style != nil {
		mergeStyle(&result, cell.style)
	}

	return result
}
