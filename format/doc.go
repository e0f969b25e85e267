// Package format names the document encodings the module reads and writes.
//
// # Usage
//
//	// Parse a format name
//	f, err := format.ParseFormat("yaml")
//
//	// Guess a format from a file name
//	f := format.FromPath("deploy/config.yml")
//
// # Related Packages
//
//   - github.com/json-toolkit/go-jsontk/parse - Parse text to IR
//   - github.com/json-toolkit/go-jsontk/encode - Encode IR to text
package format
