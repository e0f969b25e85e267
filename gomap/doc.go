// Package gomap addresses and mutates plain Go documents: trees of
// map[string]any, []any and scalars, the shape encoding/json produces
// when unmarshalling into any.
//
// # Usage
//
//	var doc any
//	if err := json.Unmarshal(data, &doc); err != nil {
//	    return err
//	}
//
//	// Native operations
//	v, ok := gomap.Resolve(doc, jsontk.MustNew("/users/0/name"))
//	prev, err := gomap.InsertAt(&doc, jsontk.MustNew("/users/0/name"), "alice")
//
//	// Generic operations through the jsontk contract
//	v, ok := jsontk.Resolve(gomap.Root(&doc), p)
//
// Go maps carry no entry order; use the ir package when object entry
// order matters.
//
// # Related Packages
//
//   - github.com/json-toolkit/go-jsontk - pointers and the value contract
//   - github.com/json-toolkit/go-jsontk/ir - order-preserving documents
package gomap
