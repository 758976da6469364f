// Package template inspects and validates the shared template PDF before
// generation. It answers the two questions the overlay loop needs: how
// many pages the template has, and how large each page is.
package template

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"classmark"
)

// PageSize is the media box size of one page, in PDF points.
type PageSize struct {
	Width  float64
	Height float64
}

// Info summarizes a template document.
type Info struct {
	PageCount int
	PageSizes []PageSize // one entry per page, in points
	Encrypted bool
}

// Inspect reads the template and returns its page geometry.
func Inspect(path string) (*Info, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, &classmark.OpError{Op: "Inspect", Err: fmt.Errorf("reading %s: %w", path, err)}
	}

	info := &Info{
		PageCount: ctx.PageCount,
		Encrypted: ctx.Encrypt != nil,
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, &classmark.OpError{Op: "Inspect", Err: fmt.Errorf("page dimensions of %s: %w", path, err)}
	}
	info.PageSizes = make([]PageSize, len(dims))
	for i, d := range dims {
		info.PageSizes[i] = PageSize{Width: d.Width, Height: d.Height}
	}

	return info, nil
}

// Validate runs pdfcpu's validation over the template. A template that
// fails validation would likely also fail page import during generation.
func Validate(path string) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return &classmark.OpError{Op: "Validate", Err: fmt.Errorf("%s: %w", path, err)}
	}
	return nil
}
