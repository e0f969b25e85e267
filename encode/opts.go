package encode

import "github.com/json-toolkit/go-jsontk/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}
func EncodeJSON() EncodeOption {
	return EncodeFormat(format.JSONFormat)
}
func EncodeYAML() EncodeOption {
	return EncodeFormat(format.YAMLFormat)
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the indentation width for indented JSON output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire selects the compact one-line JSON form without a trailing
// newline.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
