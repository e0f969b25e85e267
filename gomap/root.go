package gomap

import (
	"github.com/json-toolkit/go-jsontk"
)

// Root wraps a document slot so the generic jsontk operations can address
// and mutate the plain Go tree it holds. The document content is *slot;
// insertion at the root pointer writes back through the slot.
func Root(slot *any) jsontk.Document {
	return document{slot: slot}
}

// Unwrap returns the plain Go value behind a jsontk.Value handed out by
// this package.
func Unwrap(v jsontk.Value) (any, bool) {
	switch x := v.(type) {
	case value:
		return x.v, true
	case document:
		return *x.slot, true
	}
	return nil, false
}

type document struct {
	slot *any
}

func (d document) AsObject() (jsontk.Object, bool) {
	return value{*d.slot}.AsObject()
}

func (d document) AsArray() (jsontk.Array, bool) {
	return value{*d.slot}.AsArray()
}

func (d document) Swap(v any) jsontk.Value {
	prev := *d.slot
	*d.slot = v
	return value{prev}
}

// value adapts one plain Go value to the jsontk contract.
type value struct {
	v any
}

func (x value) AsObject() (jsontk.Object, bool) {
	m, ok := x.v.(map[string]any)
	if !ok {
		return nil, false
	}
	return mapView{m}, true
}

func (x value) AsArray() (jsontk.Array, bool) {
	s, ok := x.v.([]any)
	if !ok {
		return nil, false
	}
	return sliceView{s}, true
}

type mapView struct {
	m map[string]any
}

func (o mapView) Key(name string) (jsontk.Value, bool) {
	v, ok := o.m[name]
	if !ok {
		return nil, false
	}
	return value{v}, true
}

func (o mapView) SetKey(name string, v any) (jsontk.Value, bool) {
	prev, had := o.m[name]
	o.m[name] = v
	if !had {
		return nil, false
	}
	return value{prev}, true
}

type sliceView struct {
	s []any
}

func (a sliceView) At(i int) (jsontk.Value, bool) {
	if i < 0 || i >= len(a.s) {
		return nil, false
	}
	return value{a.s[i]}, true
}

func (a sliceView) Len() int {
	return len(a.s)
}
