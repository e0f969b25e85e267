package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/json-toolkit/go-jsontk/encode"
	"github.com/json-toolkit/go-jsontk/ir"
)

// Logf writes a gated debug line to stderr, rendering document-shaped
// arguments readably: plain Go trees as indented JSON, *ir.Node compactly.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			s, err := encode.String(x, encode.EncodeWire(true))
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = s
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
