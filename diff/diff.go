package diff

import (
	"github.com/json-toolkit/go-jsontk/ir"
)

// Make computes the RFC 7386 merge patch that transforms from into to.
// A nil result means the patch is empty: the documents are equal up to
// object entry order, which merge patches cannot express.
//
// Changed and deleted keys appear in from's entry order, added keys in
// to's. Per RFC 7386, a null in the result deletes the key on apply, so
// a change whose target value is null round-trips to a deletion.
func Make(from, to *ir.Node) *ir.Node {
	if ir.Equal(from, to) {
		return nil
	}
	if from == nil || to == nil ||
		from.Type != ir.ObjectType || to.Type != ir.ObjectType {
		if to == nil {
			return ir.Null()
		}
		return to.Clone()
	}
	res := ir.Object()
	for i, key := range from.Keys {
		tv := to.Get(key)
		if tv == nil {
			res.Set(key, ir.Null())
			continue
		}
		if sub := Make(from.Values[i], tv); sub != nil {
			res.Set(key, sub)
		}
	}
	for i, key := range to.Keys {
		if from.Get(key) == nil {
			res.Set(key, to.Values[i].Clone())
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}
