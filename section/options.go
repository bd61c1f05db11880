package section

import "github.com/draftworks/draft/document"

// Option configures a Compute call.
type Option func(*options)

type options struct {
	dimensions bool
	numbers    *document.NumberFormat
}

func defaultOptions() options {
	return options{}
}

// WithDimensions enables gridline dimension generation: one linear
// dimension per adjacent pair of section gridlines plus a total
// dimension spanning first to last.
func WithDimensions(enabled bool) Option {
	return func(o *options) {
		o.dimensions = enabled
	}
}

// WithNumberFormat overrides the document's numeric-formatting
// settings for dimension value text.
func WithNumberFormat(f document.NumberFormat) Option {
	return func(o *options) {
		o.numbers = &f
	}
}
