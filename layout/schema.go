// Package layout maps template pages to the masks stamped onto them.
//
// A layout is declared as YAML that is easy to keep next to the template
// it belongs to. Each entry corresponds to one template page, in order,
// and lists the masks applied to that page:
//
//	pages:
//	  - masks: []                # first page stays untouched
//	  - masks:
//	      - type: infobox
//	        top: 28
//	        left: 20.5
//	        right: 14.5
//	        height: 25
//	      - type: header
//	        top: 15
//	        right: 11
//	        width: 42
//	        height: 10
//
// All geometry values are millimeters measured from the page edges.
// Pages beyond the end of the layout receive no masks.
package layout

// Layout is the top-level document of a layout file.
type Layout struct {
	Pages []PageSpec `yaml:"pages"`
}

// PageSpec lists the masks applied to one template page.
type PageSpec struct {
	Masks []MaskSpec `yaml:"masks"`
}

// MaskSpec describes a single mask. Type selects the mask kind; the
// remaining fields apply depending on the type.
type MaskSpec struct {
	Type string `yaml:"type"` // empty, infobox, header, barcode

	// Geometry, in mm from the respective page edge.
	Top    float64 `yaml:"top,omitempty"`
	Left   float64 `yaml:"left,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// Text options.
	FontSize   float64 `yaml:"fontSize,omitempty"`
	LabelWidth float64 `yaml:"labelWidth,omitempty"` // infobox label column
	PageLabel  string  `yaml:"pageLabel,omitempty"`  // header page number format
	Stroke     bool    `yaml:"stroke,omitempty"`     // header box outline

	// Barcode options.
	Format string `yaml:"format,omitempty"` // code128 (default) or pdf417
}
