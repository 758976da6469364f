package overlay

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"classmark/mask"
)

// Option is a functional option for configuring a Generator.
type Option func(*Generator)

// WithFallback sets the mask applied to pages beyond the end of the
// layout. The default leaves those pages untouched.
func WithFallback(m mask.Mask) Option {
	return func(g *Generator) {
		if m != nil {
			g.fallback = m
		}
	}
}

// WithCollation sets the language whose collation rules order the
// students in the output. The default is German.
func WithCollation(tag language.Tag) Option {
	return func(g *Generator) {
		g.collation = tag
	}
}

// WithoutSorting keeps the students in roster order instead of sorting
// them by name.
func WithoutSorting() Option {
	return func(g *Generator) {
		g.sorted = false
	}
}

// WithPageSize sets the page size in mm assumed for template pages whose
// media box is unusable. The default is A4.
func WithPageSize(w, h float64) Option {
	return func(g *Generator) {
		if w > 0 && h > 0 {
			g.pageW, g.pageH = w, h
		}
	}
}

// WithLogger sets the logger used for progress reporting. The default
// discards all output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}
