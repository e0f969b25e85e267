package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value of a JSON document: a tagged union over the JSON
// variants, discriminated by Type.
//
// Object nodes keep their entries in the parallel slices Keys and Values,
// in insertion order; Set overwrites a value in place without moving its
// key. Array nodes use Values alone. Number nodes carry the literal text
// in Number and, when the literal fits exactly, the decoded form in Int64
// or Float64.
//
// The zero Node is null.
type Node struct {
	Type Type

	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
}

// Null returns a null node.
func Null() *Node {
	return &Node{Type: NullType}
}

// FromBool returns a boolean node.
func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromInt returns a number node holding an integer.
func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

// FromFloat returns a number node holding a float.
func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

// FromNumber returns a number node for a numeric literal, keeping the
// literal text verbatim and decoding Int64 or Float64 when one of them
// represents it exactly.
func FromNumber(literal string) *Node {
	n := &Node{Type: NumberType, Number: literal}
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		n.Int64 = &i
		return n
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		n.Float64 = &f
	}
	return n
}

// FromString returns a string node.
func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromSlice returns an array node over elems, which it keeps as-is.
func FromSlice(elems []*Node) *Node {
	return &Node{Type: ArrayType, Values: elems}
}

// KeyVal is one object entry, used by Object to fix entry order.
type KeyVal struct {
	Key string
	Val *Node
}

// Object returns an object node with the given entries in the given
// order. A later duplicate key overwrites the earlier value in place.
func Object(kvs ...KeyVal) *Node {
	n := &Node{Type: ObjectType}
	for _, kv := range kvs {
		n.Set(kv.Key, kv.Val)
	}
	return n
}

// FromMap returns an object node over m with keys in sorted order, the
// only deterministic order a Go map offers.
func FromMap(m map[string]*Node) *Node {
	n := &Node{
		Type:   ObjectType,
		Keys:   make([]string, 0, len(m)),
		Values: make([]*Node, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		n.Keys = append(n.Keys, key)
		n.Values = append(n.Values, m[key])
	}
	return n
}

// ToMap returns an object node's entries as a map, or nil for any other
// node. Entry order is lost.
func ToMap(n *Node) map[string]*Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(n.Keys))
	for i, key := range n.Keys {
		res[key] = n.Values[i]
	}
	return res
}

// Get returns the value under key, or nil when n is not an object or has
// no such key.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Type != ObjectType {
		return nil
	}
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

// Set inserts v under key and returns the value it displaced, if any. An
// existing key keeps its position; a new key goes last. n must be an
// object node.
func (n *Node) Set(key string, v *Node) (prev *Node, replaced bool) {
	if n.Type != ObjectType {
		panic("ir: Set on a " + n.Type.String() + " node")
	}
	for i, k := range n.Keys {
		if k == key {
			prev = n.Values[i]
			n.Values[i] = v
			return prev, true
		}
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, v)
	return nil, false
}

// Delete removes key from an object node and returns the value it held.
// Deleting from a non-object or a missing key reports false.
func (n *Node) Delete(key string) (prev *Node, had bool) {
	if n == nil || n.Type != ObjectType {
		return nil, false
	}
	for i, k := range n.Keys {
		if k == key {
			prev = n.Values[i]
			n.Keys = slices.Delete(n.Keys, i, i+1)
			n.Values = slices.Delete(n.Values, i, i+1)
			return prev, true
		}
	}
	return nil, false
}

// Len returns the number of entries of an object or elements of an
// array, and 0 for scalars.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Values)
}

// At returns the i'th array element or object value, or nil out of range.
func (n *Node) At(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.Values[i]
}

// KeyAt returns the i'th object key, or "" out of range.
func (n *Node) KeyAt(i int) string {
	if n == nil || i < 0 || i >= len(n.Keys) {
		return ""
	}
	return n.Keys[i]
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{
		Type:   n.Type,
		String: n.String,
		Bool:   n.Bool,
		Number: n.Number,
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Keys != nil {
		dst.Keys = slices.Clone(n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}
