package mask

import (
	"strconv"

	gofpdf "github.com/jung-kurt/gofpdf"

	"classmark"
	"classmark/table"
)

// InfoBox draws a white, black-stroked box across the page width holding a
// label/value table with the student's full identification. It is meant
// for the task sheet page where the template reserves room for the
// student's details.
//
// The box spans from LeftMargin to pageW-RightMargin; rows share the box
// height equally, with a small headroom below the top edge.
type InfoBox struct {
	TopMargin   float64 // mm from the top edge of the page
	LeftMargin  float64 // mm from the left edge
	RightMargin float64 // mm from the right edge
	Height      float64 // box height in mm

	FontSize   float64 // point size, defaults to 8
	LabelWidth float64 // label column width in mm, defaults to 30
}

func (b InfoBox) Apply(doc *gofpdf.Fpdf, ctx *classmark.Context, pageW, pageH float64) error {
	boxW := pageW - b.LeftMargin - b.RightMargin
	if boxW <= 0 || b.Height <= 0 || b.TopMargin+b.Height > pageH {
		return classmark.ErrInvalidBox
	}

	fontSize := b.FontSize
	if fontSize == 0 {
		fontSize = defaultFontSize
	}
	labelW := b.LabelWidth
	if labelW == 0 {
		labelW = 30
	}

	doc.SetDrawColor(0, 0, 0)
	doc.SetFillColor(255, 255, 255)
	doc.SetLineWidth(strokeWidth)
	doc.Rect(b.LeftMargin, b.TopMargin, boxW, b.Height, "FD")

	rows := [][2]string{
		{"Last name:", ctx.Student.LastName},
		{"Name:", ctx.Student.FirstName},
		{"Teacher:", ctx.Teacher.DisplayName()},
		{"ID:", strconv.Itoa(ctx.Student.ID)},
		{"School:", ctx.School},
	}

	// Rows share the box height equally, leaving 3 mm headroom so the
	// last baseline stays clear of the bottom stroke.
	rowH := (b.Height - 3) / float64(len(rows))

	tbl := table.New(doc).
		SetColumns(
			table.ColumnDef{Width: labelW},
			table.ColumnDef{Width: boxW - labelW - 2},
		).
		SetPosition(b.LeftMargin+1, b.TopMargin+2.5).
		SetRowHeight(rowH).
		SetStyle(table.TableStyle{
			CellFont:    &table.FontSpec{Family: "Helvetica", Size: fontSize},
			CellPadding: table.Padding{Left: 1, Right: 1},
		})

	labelPad := table.Padding{Left: 4.6}
	for _, r := range rows {
		row := tbl.AddRow()
		row.AddCell(r[0]).SetStyle(table.CellStyle{Padding: &labelPad})
		row.AddCell(r[1])
	}

	return tbl.Render()
}
