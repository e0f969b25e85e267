// Package diff computes RFC 7386 JSON merge patches.
//
// # Usage
//
//	// Compute the merge patch that transforms from into to
//	patch := diff.Make(from, to)
//
// Merge patches are plain documents that can be stored, transmitted, and
// applied with any RFC 7386 implementation. They carry the format's known
// limits: arrays are replaced wholesale, a null value means deletion, and
// object entry order is invisible.
//
// # Related Packages
//
//   - github.com/json-toolkit/go-jsontk/ir - IR representation
package diff
