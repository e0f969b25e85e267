package encode

import (
	"bytes"
	"strings"

	"github.com/json-toolkit/go-jsontk/ir"
)

// String renders node as text.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString renders node as text with surrounding whitespace trimmed,
// panicking on error. Encoding a well-formed node as JSON cannot fail.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}
