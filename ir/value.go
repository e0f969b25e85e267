package ir

import (
	"fmt"

	"github.com/json-toolkit/go-jsontk"
)

var _ jsontk.Document = (*Node)(nil)

// AsObject exposes an object node through the jsontk capability contract,
// letting jsontk.Resolve and jsontk.InsertAt operate on ir documents.
func (n *Node) AsObject() (jsontk.Object, bool) {
	if n == nil || n.Type != ObjectType {
		return nil, false
	}
	return objectView{n}, true
}

// AsArray exposes an array node through the jsontk capability contract.
func (n *Node) AsArray() (jsontk.Array, bool) {
	if n == nil || n.Type != ArrayType {
		return nil, false
	}
	return arrayView{n}, true
}

// Swap replaces the document content with v in place and returns the
// previous content as a detached node. v must be a *Node or a value
// FromAny accepts; Swap panics when it does not convert. InsertAt with
// the root pointer is the erroring equivalent.
func (n *Node) Swap(v any) jsontk.Value {
	node := mustFromAny(v)
	prev := &Node{}
	*prev = *n
	*n = *node
	return prev
}

// objectView adapts an object node to jsontk.Object. The view writes
// through to the node it wraps.
type objectView struct {
	n *Node
}

func (o objectView) Key(name string) (jsontk.Value, bool) {
	v := o.n.Get(name)
	if v == nil {
		return nil, false
	}
	return v, true
}

func (o objectView) SetKey(name string, v any) (jsontk.Value, bool) {
	prev, replaced := o.n.Set(name, mustFromAny(v))
	if !replaced {
		return nil, false
	}
	return prev, true
}

// arrayView adapts an array node to jsontk.Array.
type arrayView struct {
	n *Node
}

func (a arrayView) At(i int) (jsontk.Value, bool) {
	v := a.n.At(i)
	if v == nil {
		return nil, false
	}
	return v, true
}

func (a arrayView) Len() int {
	return len(a.n.Values)
}

// mustFromAny converts v or panics. The capability interfaces carry no
// error path, and conversion only fails on values JSON cannot represent.
func mustFromAny(v any) *Node {
	n, err := FromAny(v)
	if err != nil {
		panic(fmt.Sprintf("ir: %v", err))
	}
	return n
}
