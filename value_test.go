package jsontk

import (
	"errors"
	"testing"
)

// testNode is a minimal Value implementation exercising the generic
// algorithms without a real backend. A node with a non-nil obj is an
// object, with a non-nil arr an array, and a scalar otherwise.
type testNode struct {
	obj map[string]*testNode
	arr []*testNode
	str string
}

func (n *testNode) AsObject() (Object, bool) {
	if n == nil || n.obj == nil {
		return nil, false
	}
	return testObj{m: n.obj}, true
}

func (n *testNode) AsArray() (Array, bool) {
	if n == nil || n.arr == nil {
		return nil, false
	}
	return testArr{s: n.arr}, true
}

func (n *testNode) Swap(v any) Value {
	prev := &testNode{obj: n.obj, arr: n.arr, str: n.str}
	nv := v.(*testNode)
	n.obj, n.arr, n.str = nv.obj, nv.arr, nv.str
	return prev
}

type testObj struct {
	m map[string]*testNode
}

func (o testObj) Key(name string) (Value, bool) {
	v, ok := o.m[name]
	if !ok {
		return nil, false
	}
	return v, true
}

func (o testObj) SetKey(name string, v any) (Value, bool) {
	prev, had := o.m[name]
	o.m[name] = v.(*testNode)
	if !had {
		return nil, false
	}
	return prev, true
}

type testArr struct {
	s []*testNode
}

func (a testArr) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.s) {
		return nil, false
	}
	return a.s[i], true
}

func (a testArr) Len() int {
	return len(a.s)
}

func TestResolve(t *testing.T) {
	// {"foo": "bar", "zoo": {"id": [1, 2, 3]}, "a/b": "slashed"}
	one, two, three := tStr("1"), tStr("2"), tStr("3")
	bar := tStr("bar")
	slashed := tStr("slashed")
	ids := tArr(one, two, three)
	zoo := tObj(map[string]*testNode{"id": ids})
	tree := tObj(map[string]*testNode{"foo": bar, "zoo": zoo, "a/b": slashed})

	tests := []struct {
		name    string
		pointer string
		want    *testNode
		wantOK  bool
	}{
		{name: "root is whole tree", pointer: "", want: tree, wantOK: true},
		{name: "object key", pointer: "/foo", want: bar, wantOK: true},
		{name: "nested array element", pointer: "/zoo/id/0", want: one, wantOK: true},
		{name: "last array element", pointer: "/zoo/id/2", want: three, wantOK: true},
		{name: "escaped key", pointer: "/a~1b", want: slashed, wantOK: true},
		{name: "array itself", pointer: "/zoo/id", want: ids, wantOK: true},
		{name: "missing key is absent", pointer: "/nope", wantOK: false},
		{name: "missing nested key", pointer: "/zoo/nope", wantOK: false},
		{name: "index out of range", pointer: "/zoo/id/3", wantOK: false},
		{name: "negative index", pointer: "/zoo/id/-1", wantOK: false},
		{name: "non-numeric index", pointer: "/zoo/id/x", wantOK: false},
		{name: "leading zero index parses", pointer: "/zoo/id/01", want: two, wantOK: true},
		{name: "scalar stops the walk", pointer: "/foo/bar", wantOK: false},
		{name: "walk stops below scalar", pointer: "/foo/bar/baz", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tree, MustNew(tt.pointer))
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.pointer, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if got != Value(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.pointer, got, tt.want)
			}
		})
	}
}

func TestResolveNilDoc(t *testing.T) {
	if _, ok := Resolve(nil, MustNew("/a")); ok {
		t.Error("Resolve(nil) ok = true, want false")
	}
	if _, ok := Resolve(nil, Root()); ok {
		t.Error("Resolve(nil) at root ok = true, want false")
	}
}

// insertFixture builds {"foo": {"bar": "zoo"}, "ids": [1]} fresh for each
// mutation test.
func insertFixture() (tree, foo, bar *testNode) {
	bar = tStr("zoo")
	foo = tObj(map[string]*testNode{"bar": bar})
	tree = tObj(map[string]*testNode{"foo": foo, "ids": tArr(tStr("1"))})
	return tree, foo, bar
}

func TestInsertAt(t *testing.T) {
	t.Run("new terminal key", func(t *testing.T) {
		tree, _, _ := insertFixture()
		v := tStr("42")
		prev, err := InsertAt(tree, MustNew("/foo/test"), v)
		if err != nil {
			t.Fatalf("InsertAt() error = %v", err)
		}
		if prev != nil {
			t.Errorf("InsertAt() prev = %v, want nil", prev)
		}
		got, ok := Resolve(tree, MustNew("/foo/test"))
		if !ok || got != Value(v) {
			t.Errorf("inserted value not resolvable, got (%v, %v)", got, ok)
		}
	})

	t.Run("overwrite returns previous", func(t *testing.T) {
		tree, _, bar := insertFixture()
		v := tStr("new")
		prev, err := InsertAt(tree, MustNew("/foo/bar"), v)
		if err != nil {
			t.Fatalf("InsertAt() error = %v", err)
		}
		if prev != Value(bar) {
			t.Errorf("InsertAt() prev = %v, want the displaced node", prev)
		}
	})

	t.Run("missing ancestor", func(t *testing.T) {
		tree, _, _ := insertFixture()
		_, err := InsertAt(tree, MustNew("/foo/not_existing/zoo"), tStr("42"))
		if !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("InsertAt() error = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("scalar parent", func(t *testing.T) {
		tree, _, _ := insertFixture()
		_, err := InsertAt(tree, MustNew("/foo/bar/zoo"), tStr("42"))
		if !errors.Is(err, ErrUnsupportedInsertion) {
			t.Errorf("InsertAt() error = %v, want ErrUnsupportedInsertion", err)
		}
	})

	t.Run("array parent", func(t *testing.T) {
		tree, _, _ := insertFixture()
		_, err := InsertAt(tree, MustNew("/ids/0"), tStr("42"))
		if !errors.Is(err, ErrUnsupportedInsertion) {
			t.Errorf("InsertAt() error = %v, want ErrUnsupportedInsertion", err)
		}
	})

	t.Run("root replaces whole tree", func(t *testing.T) {
		tree, _, _ := insertFixture()
		next := tObj(map[string]*testNode{"fresh": tStr("x")})
		prev, err := InsertAt(tree, Root(), next)
		if err != nil {
			t.Fatalf("InsertAt() error = %v", err)
		}
		if prev == nil {
			t.Fatal("InsertAt() prev = nil, want previous tree")
		}
		if _, ok := Resolve(prev, MustNew("/foo/bar")); !ok {
			t.Error("previous tree lost its content")
		}
		if _, ok := Resolve(tree, MustNew("/fresh")); !ok {
			t.Error("document does not hold the new content")
		}
		if _, ok := Resolve(tree, MustNew("/foo")); ok {
			t.Error("document still resolves old content")
		}
	})
}

func TestInsert(t *testing.T) {
	tree, foo, bar := insertFixture()

	prev, err := Insert(foo, "extra", tStr("1"))
	if err != nil || prev != nil {
		t.Errorf("Insert() = (%v, %v), want (nil, nil)", prev, err)
	}
	if _, err := Insert(bar, "k", tStr("1")); !errors.Is(err, ErrUnsupportedInsertion) {
		t.Errorf("Insert() on scalar error = %v, want ErrUnsupportedInsertion", err)
	}
	arr, _ := Resolve(tree, MustNew("/ids"))
	if _, err := Insert(arr, "k", tStr("1")); !errors.Is(err, ErrUnsupportedInsertion) {
		t.Errorf("Insert() on array error = %v, want ErrUnsupportedInsertion", err)
	}
}

func tObj(kvs map[string]*testNode) *testNode {
	return &testNode{obj: kvs}
}

func tArr(ns ...*testNode) *testNode {
	return &testNode{arr: ns}
}

func tStr(s string) *testNode {
	return &testNode{str: s}
}
