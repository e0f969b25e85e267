// Package encode encodes IR nodes to JSON or YAML text.
//
// # Usage
//
//	// Encode as indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode compactly, for wire use
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// Encode as YAML
//	err := encode.Encode(node, w, encode.EncodeYAML())
//
//	// Render to a string
//	s := encode.MustString(node)
//
// Object entry order is preserved in both formats.
//
// # Related Packages
//
//   - github.com/json-toolkit/go-jsontk/ir - IR representation
//   - github.com/json-toolkit/go-jsontk/parse - Parse text to IR
package encode
