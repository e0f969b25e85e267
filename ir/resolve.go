package ir

import (
	"strconv"

	"github.com/json-toolkit/go-jsontk"
)

// Resolve navigates n along p and returns the addressed node. The result
// is the document's own node, not a copy: mutations through it show up in
// the document. A pointer that leads nowhere in this document reports
// false, never an error.
func (n *Node) Resolve(p jsontk.Pointer) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	res := n
	for tok := range p.Tokens() {
		switch res.Type {
		case ObjectType:
			next := res.Get(tok)
			if next == nil {
				return nil, false
			}
			res = next
		case ArrayType:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(res.Values) {
				return nil, false
			}
			res = res.Values[i]
		default:
			return nil, false
		}
	}
	return res, true
}

// InsertAt places v at p inside the document rooted at n and returns the
// node the insertion displaced. v may be a *Node, used as-is, or any
// value FromAny accepts.
//
// Insertion at the root pointer swaps the whole document content in
// place and cannot fail; the previous content comes back as a detached
// node. For any other pointer, p's parent must already resolve
// (jsontk.ErrKeyNotFound otherwise) and must be an object node
// (jsontk.ErrUnsupportedInsertion otherwise) and v lands under p's
// terminal key, with a nil result when the key is new. Intermediate
// ancestors are never created.
func (n *Node) InsertAt(p jsontk.Pointer, v any) (*Node, error) {
	node, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	if p.IsRoot() {
		prev := &Node{}
		*prev = *n
		*n = *node
		return prev, nil
	}
	parent, _ := p.Parent()
	key, _ := p.Key()
	tgt, ok := n.Resolve(parent)
	if !ok {
		return nil, jsontk.ErrKeyNotFound
	}
	return tgt.Insert(key, node)
}

// Insert places v under key in an object node and returns the displaced
// value, nil when the key is new. Any other node type fails with
// jsontk.ErrUnsupportedInsertion. v may be a *Node or any value FromAny
// accepts.
func (n *Node) Insert(key string, v any) (*Node, error) {
	if n == nil || n.Type != ObjectType {
		return nil, jsontk.ErrUnsupportedInsertion
	}
	node, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	prev, _ := n.Set(key, node)
	return prev, nil
}
