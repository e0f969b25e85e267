package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/json-toolkit/go-jsontk/format"
	"github.com/json-toolkit/go-jsontk/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default rendering is indented JSON with a
// trailing newline; EncodeWire(true) selects the compact one-line form
// and EncodeYAML() the YAML form. Colors apply to JSON output only.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encodeJSON(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func encodeJSON(n *ir.Node, w io.Writer, es *EncState) error {
	if n == nil {
		return writeScalar(w, es, ir.NullType, "null")
	}
	switch n.Type {
	case ir.NullType:
		return writeScalar(w, es, ir.NullType, "null")
	case ir.BoolType:
		return writeScalar(w, es, ir.BoolType, strconv.FormatBool(n.Bool))
	case ir.NumberType:
		return writeScalar(w, es, ir.NumberType, n.NumberLiteral())
	case ir.StringType:
		d, err := json.Marshal(n.String)
		if err != nil {
			return err
		}
		return writeScalar(w, es, ir.StringType, string(d))
	case ir.ArrayType:
		return encodeArray(n, w, es)
	case ir.ObjectType:
		return encodeObject(n, w, es)
	}
	return fmt.Errorf("%w: unknown node type %v", ErrEncoding, n.Type)
}

func encodeArray(n *ir.Node, w io.Writer, es *EncState) error {
	if len(n.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range n.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeObject(n *ir.Node, w io.Writer, es *EncState) error {
	if len(n.Keys) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, key := range n.Keys {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		d, err := json.Marshal(key)
		if err != nil {
			return err
		}
		ks := string(d)
		if es.Color != nil {
			ks = es.Color(ir.ObjectType, FieldColor, ks)
		}
		if err := writeString(w, ks); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, ":"); err != nil {
			return err
		}
		if !es.wire {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encodeJSON(n.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeScalar(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}

func encodeYAML(n *ir.Node, w io.Writer) error {
	v := toYAML(n)
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

// rawNumber feeds a numeric literal through goccy unquoted.
type rawNumber string

func (r rawNumber) MarshalYAML() ([]byte, error) {
	return []byte(r), nil
}

// toYAML renders a Node as goccy input, keeping object entry order via
// yaml.MapSlice.
func toYAML(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Bool
	case ir.StringType:
		return n.String
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return rawNumber(n.NumberLiteral())
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(n.Keys))
		for i, key := range n.Keys {
			res[i] = yaml.MapItem{Key: key, Value: toYAML(n.Values[i])}
		}
		return res
	default:
		panic("impossible production")
	}
}
