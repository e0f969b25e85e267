package parse

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/json-toolkit/go-jsontk/format"
	"github.com/json-toolkit/go-jsontk/ir"
)

// Parse decodes one document into a Node. The input format defaults to
// JSON; ParseYAML or ParseFormat select another.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format.IsYAML() {
		return parseYAML(d)
	}
	return ir.FromJSON(d)
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseFile reads and parses path. The format is guessed from the file
// extension; an explicit ParseFormat option overrides the guess.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts = append([]ParseOption{ParseFormat(format.FromPath(path))}, opts...)
	return Parse(d, opts...)
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return fromYAML(v)
}

// fromYAML converts goccy's ordered decoding into a Node. Mapping keys
// that are not strings are rendered with fmt.Sprint: YAML allows them,
// the JSON data model does not.
func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		n := &ir.Node{Type: ir.ObjectType}
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			n.Set(key, val)
		}
		return n, nil
	case []any:
		elems := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			elems[i] = n
		}
		return ir.FromSlice(elems), nil
	default:
		return ir.FromAny(v)
	}
}
