package jsontk

import (
	"fmt"
	"iter"
	"strings"
)

// Pointer is an RFC 6901 JSON pointer: the textual address of one node
// inside a tree-shaped document.
//
//	""            the document root
//	"/foo"        key "foo" of the root object
//	"/foo/0"      element 0 of the array under "foo"
//	"/a~1b/m~0n"  key "a/b", then key "m~n"
//
// The text is held in encoded form and tokens are only decoded on demand,
// so Parent and Ancestors are cheap slices of the original text. The zero
// value is the root pointer. Pointers compare with == on their encoded
// text; two spellings that decode to the same key are distinct pointers.
type Pointer struct {
	s string
}

// New returns the pointer for s, which must be empty (the root) or start
// with '/'; anything else fails with ErrMissingLeadingSlash. No further
// validation is applied: tokens may contain arbitrary text, and a '~' not
// followed by '0' or '1' passes through decoding as a literal '~'.
func New(s string) (Pointer, error) {
	if s != "" && s[0] != '/' {
		return Pointer{}, ErrMissingLeadingSlash
	}
	return Pointer{s: s}, nil
}

// MustNew is New, panicking on invalid text. It is intended for pointer
// literals.
func MustNew(s string) Pointer {
	p, err := New(s)
	if err != nil {
		panic(fmt.Sprintf("jsontk: MustNew(%q): %v", s, err))
	}
	return p
}

// Root returns the empty pointer, which addresses the whole document.
func Root() Pointer {
	return Pointer{}
}

// IsRoot reports whether p addresses the whole document.
func (p Pointer) IsRoot() bool {
	return p.s == ""
}

// String returns the encoded pointer text.
func (p Pointer) String() string {
	return p.s
}

// Depth returns the number of reference tokens in p. The root pointer has
// depth 0. Note "/" has depth 1: a single empty token.
func (p Pointer) Depth() int {
	return strings.Count(p.s, "/")
}

// Key returns the decoded last token of p. The root pointer is the only
// pointer without a key.
func (p Pointer) Key() (string, bool) {
	if p.s == "" {
		return "", false
	}
	i := strings.LastIndexByte(p.s, '/')
	return Unescape(p.s[i+1:]), true
}

// Parent returns p with its last token dropped. Only the root pointer has
// no parent; a one-token pointer's parent is the root.
func (p Pointer) Parent() (Pointer, bool) {
	if p.s == "" {
		return Pointer{}, false
	}
	i := strings.LastIndexByte(p.s, '/')
	return Pointer{s: p.s[:i]}, true
}

// Ancestors yields p, then p's parent, and so on up to the root, inclusive
// at both ends. The sequence is finite with Depth()+1 entries and can be
// ranged over any number of times.
func (p Pointer) Ancestors() iter.Seq[Pointer] {
	return func(yield func(Pointer) bool) {
		for q, ok := p, true; ok; q, ok = q.Parent() {
			if !yield(q) {
				return
			}
		}
	}
}

// IsAncestorOf reports whether p is o or one of o's ancestors.
func (p Pointer) IsAncestorOf(o Pointer) bool {
	for a := range o.Ancestors() {
		if a == p {
			return true
		}
	}
	return false
}

// IsParentOf reports whether p is o's immediate parent.
func (p Pointer) IsParentOf(o Pointer) bool {
	q, ok := o.Parent()
	return ok && q == p
}

// IsSiblingOf reports whether p and o are distinct pointers sharing a
// parent. A pointer is not its own sibling, and the root has none.
func (p Pointer) IsSiblingOf(o Pointer) bool {
	if p == o {
		return false
	}
	pp, pok := p.Parent()
	op, ook := o.Parent()
	return pok && ook && pp == op
}

// Tokens yields the decoded reference tokens of p in order. The root
// pointer yields nothing. The sequence is restartable.
func (p Pointer) Tokens() iter.Seq[string] {
	return func(yield func(string) bool) {
		if p.s == "" {
			return
		}
		for tok := range strings.SplitSeq(p.s[1:], "/") {
			if !yield(Unescape(tok)) {
				return
			}
		}
	}
}

// Append returns the pointer addressing keys under p. Each key is escaped
// and appended as one token:
//
//	MustNew("/a").Append("b", "x/y").String() == "/a/b/x~1y"
func (p Pointer) Append(keys ...string) Pointer {
	if len(keys) == 0 {
		return p
	}
	var b strings.Builder
	b.WriteString(p.s)
	for _, k := range keys {
		b.WriteByte('/')
		b.WriteString(Escape(k))
	}
	return Pointer{s: b.String()}
}

// Compare orders pointers by depth, then by encoded text. Shallow
// addresses sort ahead of deep ones regardless of alphabetic content, so
// "/z" precedes "/a/a". The result is 0 iff p == o.
func (p Pointer) Compare(o Pointer) int {
	pd, od := p.Depth(), o.Depth()
	switch {
	case pd < od:
		return -1
	case pd > od:
		return 1
	}
	return strings.Compare(p.s, o.s)
}

// Clone returns p backed by its own copy of the pointer text. Derived
// pointers share their source's backing string; Clone detaches one that
// must outlive a large source buffer.
func (p Pointer) Clone() Pointer {
	return Pointer{s: strings.Clone(p.s)}
}

func (p Pointer) MarshalText() ([]byte, error) {
	return []byte(p.s), nil
}

func (p *Pointer) UnmarshalText(d []byte) error {
	q, err := New(string(d))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

var escaper = strings.NewReplacer("~", "~0", "/", "~1")

// Escape encodes a literal key as a reference token, turning '~' into
// "~0" and '/' into "~1".
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape decodes a reference token into a literal key. The two
// replacements run as separate full passes, "~1" strictly before "~0",
// which is what RFC 6901 §4 requires for double escapes:
//
//	Unescape("~01") == "~1" (not "/")
//	Unescape("~10") == "/0"
func Unescape(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}
