package ir

import (
	"encoding/json"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromAny(t *testing.T) {
	n, err := FromAny(map[string]any{
		"z": 1,
		"a": []any{true, nil, "s", 2.5},
		"m": json.Number("12"),
	})
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if !slices.Equal(n.Keys, []string{"a", "m", "z"}) {
		t.Errorf("keys = %v, want [a m z]", n.Keys)
	}
	want := Object(
		KeyVal{Key: "a", Val: FromSlice([]*Node{FromBool(true), Null(), FromString("s"), FromFloat(2.5)})},
		KeyVal{Key: "m", Val: FromNumber("12")},
		KeyVal{Key: "z", Val: FromInt(1)},
	)
	if !Equal(n, want) {
		t.Errorf("FromAny() = %s, want %s", mustJSON(n), mustJSON(want))
	}
}

func TestFromAnyNode(t *testing.T) {
	orig := Object(KeyVal{Key: "a", Val: FromInt(1)})
	n, err := FromAny(orig)
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if n != orig {
		t.Errorf("FromAny(*Node) returned a different node")
	}
}

func TestFromAnyStruct(t *testing.T) {
	type pt struct {
		X int    `json:"x"`
		Y string `json:"y,omitempty"`
	}
	n, err := FromAny(pt{X: 3})
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	want := Object(KeyVal{Key: "x", Val: FromNumber("3")})
	if !Equal(n, want) {
		t.Errorf("FromAny(struct) = %s, want %s", mustJSON(n), mustJSON(want))
	}
}

func TestFromAnyUnconvertible(t *testing.T) {
	if _, err := FromAny(make(chan int)); !errors.Is(err, ErrConvert) {
		t.Errorf("FromAny(chan) err = %v, want ErrConvert", err)
	}
}

func TestFromAnyUint(t *testing.T) {
	small, err := FromAny(uint64(7))
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if !Equal(small, FromInt(7)) {
		t.Errorf("FromAny(uint64 7) = %s, want 7", mustJSON(small))
	}
	big, err := FromAny(uint64(math.MaxInt64) + 1)
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if big.Int64 != nil || big.Number != "9223372036854775808" {
		t.Errorf("FromAny(big uint64) = %s, want the literal kept", mustJSON(big))
	}
}

func TestToAny(t *testing.T) {
	n, err := FromJSON([]byte(`{"a":[1,2.5,"x"],"big":1e999,"nul":null,"ok":true}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	want := map[string]any{
		"a":   []any{int64(1), 2.5, "x"},
		"big": json.Number("1e999"),
		"nul": nil,
		"ok":  true,
	}
	if diff := cmp.Diff(want, n.ToAny()); diff != "" {
		t.Errorf("ToAny() mismatch (-want +got):\n%s", diff)
	}
}

func TestAnyRoundTrip(t *testing.T) {
	in := `{"a":[1,2.5,"x"],"m":{"k":null},"ok":false}`
	n, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	back, err := FromAny(n.ToAny())
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if !Equal(n, back) {
		t.Errorf("round trip = %s, want %s", mustJSON(back), in)
	}
}

func mustJSON(n *Node) string {
	d, err := json.Marshal(n)
	if err != nil {
		panic(err)
	}
	return string(d)
}
