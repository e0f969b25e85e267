// Package parse parses JSON and YAML text into IR nodes.
//
// # Usage
//
//	// Parse JSON text
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse YAML
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Object entry order is preserved in both formats.
//
// # Related Packages
//
//   - github.com/json-toolkit/go-jsontk/ir - IR representation
//   - github.com/json-toolkit/go-jsontk/encode - Encode IR to text
package parse
