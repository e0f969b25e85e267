// Package jsontk implements RFC 6901 JSON pointers and the algorithms for
// resolving them against, and inserting into, tree-shaped documents.
//
// # Pointers
//
// A Pointer addresses one node inside a document made of objects, arrays,
// and scalars. The text form is the RFC 6901 one: the empty string is the
// document root, and every other pointer is a run of /-separated reference
// tokens with '~' escaped as "~0" and '/' as "~1".
//
//	p, err := jsontk.New("/users/0/name")
//
// Pointers are immutable values: comparison with == follows the encoded
// text, Compare orders by depth before text so that shallow addresses sort
// ahead of deep ones, and the derivation methods (Parent, Ancestors, Key,
// Tokens, Append) produce new values without touching the original.
//
// # Documents
//
// Tree representations plug in through a small capability contract: Value
// exposes the optional object and array capabilities of a node, Document
// adds whole-content replacement at the root. Resolve and InsertAt work
// against any implementation. Two are provided: ir.Node, an ordered
// document tree, and gomap, which serves plain map[string]any trees as
// encoding/json produces them.
//
// Resolution follows the pointer token by token and reports absence, never
// an error; a pointer that leads nowhere in a particular document is an
// ordinary outcome. Insertion is stricter: every ancestor of the target
// must already exist (ErrKeyNotFound) and the target's parent must be an
// object (ErrUnsupportedInsertion). Only the terminal key is ever created,
// so a misaddressed pointer cannot silently grow deep structure.
package jsontk
