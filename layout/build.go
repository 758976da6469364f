package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"classmark/mask"
)

// Parse reads a YAML layout document and builds the per-page mask list.
func Parse(data []byte) ([]mask.Mask, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: parsing: %w", err)
	}
	return Build(&l)
}

// Load reads and parses a layout file.
func Load(path string) ([]mask.Mask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Build turns a Layout document into one mask per template page.
func Build(l *Layout) ([]mask.Mask, error) {
	masks := make([]mask.Mask, len(l.Pages))
	for i, page := range l.Pages {
		m, err := buildPage(page)
		if err != nil {
			return nil, fmt.Errorf("layout: page %d: %w", i+1, err)
		}
		masks[i] = m
	}
	return masks, nil
}

// buildPage resolves the masks of one page entry. Zero masks yield the
// empty mask; a single mask is used directly; several are stacked.
func buildPage(page PageSpec) (mask.Mask, error) {
	switch len(page.Masks) {
	case 0:
		return mask.Empty{}, nil
	case 1:
		return buildMask(page.Masks[0])
	}

	stack := make(mask.Stack, len(page.Masks))
	for i, spec := range page.Masks {
		m, err := buildMask(spec)
		if err != nil {
			return nil, err
		}
		stack[i] = m
	}
	return stack, nil
}

func buildMask(spec MaskSpec) (mask.Mask, error) {
	switch spec.Type {
	case "", "empty":
		return mask.Empty{}, nil

	case "infobox":
		if spec.Height <= 0 {
			return nil, fmt.Errorf("infobox mask needs a positive height")
		}
		return mask.InfoBox{
			TopMargin:   spec.Top,
			LeftMargin:  spec.Left,
			RightMargin: spec.Right,
			Height:      spec.Height,
			FontSize:    spec.FontSize,
			LabelWidth:  spec.LabelWidth,
		}, nil

	case "header":
		if spec.Width <= 0 || spec.Height <= 0 {
			return nil, fmt.Errorf("header mask needs positive width and height")
		}
		return mask.Header{
			TopMargin:   spec.Top,
			RightMargin: spec.Right,
			Width:       spec.Width,
			Height:      spec.Height,
			FontSize:    spec.FontSize,
			Stroke:      spec.Stroke,
			PageLabel:   spec.PageLabel,
		}, nil

	case "barcode":
		if spec.Width <= 0 || spec.Height <= 0 {
			return nil, fmt.Errorf("barcode mask needs positive width and height")
		}
		if f := spec.Format; f != "" && f != mask.Code128 && f != mask.PDF417 {
			return nil, fmt.Errorf("unknown barcode format %q", f)
		}
		return mask.Barcode{
			TopMargin:   spec.Top,
			RightMargin: spec.Right,
			Width:       spec.Width,
			Height:      spec.Height,
			Format:      spec.Format,
		}, nil
	}

	return nil, fmt.Errorf("unknown mask type %q", spec.Type)
}

// DefaultSpec returns the built-in five-page layout: an untouched title
// page, a task sheet with the student info box plus the corner header,
// and three answer sheet pages carrying the corner header only.
func DefaultSpec() *Layout {
	header := MaskSpec{Type: "header", Top: 15, Right: 11, Width: 42, Height: 10}
	return &Layout{
		Pages: []PageSpec{
			{},
			{Masks: []MaskSpec{
				{Type: "infobox", Top: 28, Left: 20.5, Right: 14.5, Height: 25},
				header,
			}},
			{Masks: []MaskSpec{header}},
			{Masks: []MaskSpec{header}},
			{Masks: []MaskSpec{header}},
		},
	}
}

// Default returns the built-in layout as ready-to-apply masks.
func Default() []mask.Mask {
	masks, err := Build(DefaultSpec())
	if err != nil {
		// The built-in spec is static; it cannot fail to build.
		panic(err)
	}
	return masks
}
