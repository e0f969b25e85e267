package jsontk

import "strconv"

// Value is a single node of a tree-shaped document: an object, an array,
// or a scalar. Implementations expose whichever container capability the
// node actually has; scalars expose neither.
//
// Values handed out by Resolve are live views into the document they came
// from. Go draws no shared/exclusive reference distinction, so mutating
// through a view mutates the document wherever the backing representation
// permits it.
type Value interface {
	// AsObject returns the node's keyed-container capability, or false
	// when the node is not an object.
	AsObject() (Object, bool)
	// AsArray returns the node's indexed-container capability, or false
	// when the node is not an array.
	AsArray() (Array, bool)
}

// Object is the keyed-container capability of an object node.
type Object interface {
	// Key returns the value under name.
	Key(name string) (Value, bool)
	// SetKey inserts v under name and returns the value it replaced, if
	// any. Backends document which value kinds they accept for v.
	SetKey(name string, v any) (prev Value, replaced bool)
}

// Array is the indexed-container capability of an array node.
type Array interface {
	// At returns the value at index i, or false when out of range.
	At(i int) (Value, bool)
	Len() int
}

// Document is a complete tree: a root Value whose content can also be
// replaced wholesale, as insertion at the root pointer requires.
type Document interface {
	Value
	// Swap replaces the document's entire content with v and returns the
	// previous content as a detached Value.
	Swap(v any) Value
}

// Resolve walks p against doc and returns the addressed node. The root
// pointer addresses doc itself. Each token steps into the current node:
// objects are stepped by decoded key, arrays by base-10 index with a
// bounds check. A failed key lookup, an unparseable or out-of-range index,
// or a scalar met mid-walk stops resolution immediately and the second
// result is false. A missing path is an absence, not an error.
func Resolve(doc Value, p Pointer) (Value, bool) {
	if doc == nil {
		return nil, false
	}
	node := doc
	for tok := range p.Tokens() {
		next, ok := step(node, tok)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

// step descends one token from node.
func step(node Value, tok string) (Value, bool) {
	if obj, ok := node.AsObject(); ok {
		return obj.Key(tok)
	}
	if arr, ok := node.AsArray(); ok {
		i, err := strconv.Atoi(tok)
		if err != nil || i < 0 || i >= arr.Len() {
			return nil, false
		}
		return arr.At(i)
	}
	return nil, false
}

// InsertAt places v at p inside doc.
//
// Insertion at the root pointer replaces the whole document content and
// returns the previous content; it cannot fail. Every other pointer is
// split into its parent and its terminal key: the parent must already
// resolve (ErrKeyNotFound otherwise) and must be an object
// (ErrUnsupportedInsertion otherwise, notably when it is an array or a
// scalar), and v is then inserted under the terminal key. The returned
// Value is whatever the insertion displaced: the previous whole tree for
// the root, the previous value under the exact key otherwise, nil when
// the key is new. Missing intermediate ancestors are never created; only
// the terminal key may come into existence.
func InsertAt(doc Document, p Pointer, v any) (Value, error) {
	if p.IsRoot() {
		return doc.Swap(v), nil
	}
	parent, _ := p.Parent()
	key, _ := p.Key()
	node, ok := Resolve(doc, parent)
	if !ok {
		return nil, ErrKeyNotFound
	}
	return Insert(node, key, v)
}

// Insert places v under key directly in node, which must be an object. It
// returns the value previously under key, or nil when the key is new.
func Insert(node Value, key string, v any) (Value, error) {
	obj, ok := node.AsObject()
	if !ok {
		return nil, ErrUnsupportedInsertion
	}
	prev, replaced := obj.SetKey(key, v)
	if !replaced {
		return nil, nil
	}
	return prev, nil
}
