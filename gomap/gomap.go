package gomap

import (
	"strconv"

	"github.com/json-toolkit/go-jsontk"
	"github.com/json-toolkit/go-jsontk/debug"
)

// Resolve walks p against a plain Go document and returns the addressed
// value. Maps step by key, []any slices by base-10 index with a bounds
// check; anything else stops the walk. A missing path reports false,
// never an error.
func Resolve(doc any, p jsontk.Pointer) (any, bool) {
	cur := doc
	for tok := range p.Tokens() {
		next, ok := step(cur, tok)
		if !ok {
			if debug.Resolve() {
				debug.Logf("gomap: resolve %s: stopped at token %q in %T\n", p, tok, cur)
			}
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func step(cur any, tok string) (any, bool) {
	switch x := cur.(type) {
	case map[string]any:
		v, ok := x[tok]
		return v, ok
	case []any:
		i, err := strconv.Atoi(tok)
		if err != nil || i < 0 || i >= len(x) {
			return nil, false
		}
		return x[i], true
	default:
		return nil, false
	}
}

// InsertAt places v at p inside the document held in slot and returns the
// displaced value. v is stored as given.
//
// Insertion at the root pointer replaces the whole document through the
// slot and cannot fail. For any other pointer, p's parent must already
// resolve (jsontk.ErrKeyNotFound otherwise) and must be a map
// (jsontk.ErrUnsupportedInsertion otherwise) and v lands under p's
// terminal key, with a nil result when the key is new. Intermediate
// ancestors are never created.
func InsertAt(slot *any, p jsontk.Pointer, v any) (any, error) {
	if p.IsRoot() {
		prev := *slot
		*slot = v
		if debug.Insert() {
			debug.Logf("gomap: insert %s: swapped root %T for %T\n", p, prev, v)
		}
		return prev, nil
	}
	parent, _ := p.Parent()
	key, _ := p.Key()
	node, ok := Resolve(*slot, parent)
	if !ok {
		return nil, jsontk.ErrKeyNotFound
	}
	return Insert(node, key, v)
}

// Insert places v under key in a map value and returns the displaced
// value, nil when the key is new. Any other value kind fails with
// jsontk.ErrUnsupportedInsertion.
func Insert(node any, key string, v any) (any, error) {
	m, ok := node.(map[string]any)
	if !ok {
		if debug.Insert() {
			debug.Logf("gomap: insert key %q: unsupported target %T\n", key, node)
		}
		return nil, jsontk.ErrUnsupportedInsertion
	}
	prev, had := m[key]
	m[key] = v
	if !had {
		return nil, nil
	}
	return prev, nil
}
