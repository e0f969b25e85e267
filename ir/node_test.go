package ir

import (
	"slices"
	"testing"
)

func TestZeroNode(t *testing.T) {
	var n Node
	if n.Type != NullType {
		t.Errorf("zero node type = %v, want Null", n.Type)
	}
	if !Equal(&n, Null()) {
		t.Errorf("zero node is not Null()")
	}
}

func TestSet(t *testing.T) {
	n := Object(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "b", Val: FromInt(2)},
		KeyVal{Key: "c", Val: FromInt(3)},
	)
	prev, replaced := n.Set("b", FromInt(20))
	if !replaced {
		t.Fatalf("Set(b) replaced = false, want true")
	}
	if prev == nil || prev.Int64 == nil || *prev.Int64 != 2 {
		t.Errorf("Set(b) prev = %v, want 2", prev)
	}
	if !slices.Equal(n.Keys, []string{"a", "b", "c"}) {
		t.Errorf("keys after overwrite = %v, want [a b c]", n.Keys)
	}
	prev, replaced = n.Set("d", FromInt(4))
	if replaced || prev != nil {
		t.Errorf("Set(d) = %v, %v, want nil, false", prev, replaced)
	}
	if !slices.Equal(n.Keys, []string{"a", "b", "c", "d"}) {
		t.Errorf("keys after insert = %v, want [a b c d]", n.Keys)
	}
}

func TestSetNonObject(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Set on an array node did not panic")
		}
	}()
	FromSlice(nil).Set("a", Null())
}

func TestGet(t *testing.T) {
	n := Object(KeyVal{Key: "a", Val: FromString("x")})
	if got := n.Get("a"); got == nil || got.String != "x" {
		t.Errorf("Get(a) = %v, want x", got)
	}
	if got := n.Get("b"); got != nil {
		t.Errorf("Get(b) = %v, want nil", got)
	}
	if got := FromString("s").Get("a"); got != nil {
		t.Errorf("Get on a string node = %v, want nil", got)
	}
	var nn *Node
	if got := nn.Get("a"); got != nil {
		t.Errorf("Get on a nil node = %v, want nil", got)
	}
}

func TestDelete(t *testing.T) {
	n := Object(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "b", Val: FromInt(2)},
		KeyVal{Key: "c", Val: FromInt(3)},
	)
	prev, had := n.Delete("b")
	if !had || prev == nil || *prev.Int64 != 2 {
		t.Errorf("Delete(b) = %v, %v, want 2, true", prev, had)
	}
	if !slices.Equal(n.Keys, []string{"a", "c"}) {
		t.Errorf("keys after delete = %v, want [a c]", n.Keys)
	}
	if n.Len() != 2 {
		t.Errorf("Len() = %d, want 2", n.Len())
	}
	if _, had := n.Delete("nope"); had {
		t.Errorf("Delete(nope) had = true, want false")
	}
}

func TestAt(t *testing.T) {
	n := FromSlice([]*Node{FromInt(10), FromInt(11)})
	if got := n.At(1); got == nil || *got.Int64 != 11 {
		t.Errorf("At(1) = %v, want 11", got)
	}
	if got := n.At(2); got != nil {
		t.Errorf("At(2) = %v, want nil", got)
	}
	if got := n.At(-1); got != nil {
		t.Errorf("At(-1) = %v, want nil", got)
	}
	obj := Object(KeyVal{Key: "k", Val: FromBool(true)})
	if got := obj.KeyAt(0); got != "k" {
		t.Errorf("KeyAt(0) = %q, want k", got)
	}
	if got := obj.KeyAt(1); got != "" {
		t.Errorf("KeyAt(1) = %q, want empty", got)
	}
}

func TestClone(t *testing.T) {
	orig := Object(
		KeyVal{Key: "nums", Val: FromSlice([]*Node{FromInt(1), FromFloat(2.5)})},
		KeyVal{Key: "s", Val: FromString("x")},
	)
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone differs from original")
	}
	cp.Get("nums").Values[0] = FromInt(99)
	cp.Set("s", FromString("y"))
	if got := *orig.Get("nums").Values[0].Int64; got != 1 {
		t.Errorf("original nums[0] = %d after mutating clone, want 1", got)
	}
	if got := orig.Get("s").String; got != "x" {
		t.Errorf("original s = %q after mutating clone, want x", got)
	}
	*cp.Get("nums").Values[1].Float64 = 9.9
	if got := *orig.Get("nums").Values[1].Float64; got != 2.5 {
		t.Errorf("original nums[1] = %v after mutating clone, want 2.5", got)
	}
}

func TestFromMap(t *testing.T) {
	n := FromMap(map[string]*Node{"z": FromInt(1), "a": FromInt(2), "m": FromInt(3)})
	if !slices.Equal(n.Keys, []string{"a", "m", "z"}) {
		t.Errorf("FromMap keys = %v, want [a m z]", n.Keys)
	}
	back := ToMap(n)
	if len(back) != 3 || back["z"] == nil || *back["z"].Int64 != 1 {
		t.Errorf("ToMap() = %v", back)
	}
	if ToMap(FromString("s")) != nil {
		t.Errorf("ToMap on a string node is not nil")
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		literal   string
		wantInt   bool
		wantFloat bool
	}{
		{"42", true, false},
		{"-7", true, false},
		{"3.14", false, true},
		{"1e3", false, true},
		// beyond int64, representable as an approximate float
		{"123456789012345678901234567890", false, true},
		// beyond float64 as well, literal only
		{"1e999", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			n := FromNumber(tt.literal)
			if got := n.Int64 != nil; got != tt.wantInt {
				t.Errorf("Int64 set = %v, want %v", got, tt.wantInt)
			}
			if got := n.Float64 != nil; got != tt.wantFloat {
				t.Errorf("Float64 set = %v, want %v", got, tt.wantFloat)
			}
			if got := n.NumberLiteral(); got != tt.literal {
				t.Errorf("NumberLiteral() = %q, want %q", got, tt.literal)
			}
		})
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if back != typ {
			t.Errorf("text round trip = %v, want %v", back, typ)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Nope")); err == nil {
		t.Errorf("UnmarshalText(Nope) did not fail")
	}
}
