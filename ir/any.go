package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// FromAny converts a plain Go value into a Node. It accepts what
// encoding/json produces when unmarshalling into any (nil, bool, string,
// float64, json.Number, []any, map[string]any), the Go integer and float
// scalar kinds, *Node (used as-is, not cloned), []*Node, and
// map[string]*Node. Anything else takes a detour through encoding/json,
// so struct values with json tags convert too; values encoding/json
// rejects fail with ErrConvert.
//
// Map keys come out sorted, the only deterministic order a Go map offers.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case []any:
		elems := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elems[i] = n
		}
		return FromSlice(elems), nil
	case map[string]any:
		n := &Node{Type: ObjectType}
		for _, key := range slices.Sorted(maps.Keys(x)) {
			vn, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			n.Set(key, vn)
		}
		return n, nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %v", ErrConvert, v, err)
		}
		return FromJSON(d)
	}
}

// fromUint keeps values beyond the int64 range as number literals.
func fromUint(x uint64) *Node {
	if x > math.MaxInt64 {
		return FromNumber(strconv.FormatUint(x, 10))
	}
	return FromInt(int64(x))
}

// ToAny converts a Node into the plain Go form encoding/json would
// produce: map[string]any for objects (entry order is lost), []any for
// arrays, and Go scalars otherwise. Numbers come out as int64 or float64
// when the node carries a decoded form, and as json.Number otherwise.
func (n *Node) ToAny() any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case StringType:
		return n.String
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return json.Number(n.Number)
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, elt := range n.Values {
			res[i] = elt.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.Keys))
		for i, key := range n.Keys {
			res[key] = n.Values[i].ToAny()
		}
		return res
	default:
		panic("impossible production")
	}
}
