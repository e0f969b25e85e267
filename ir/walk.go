package ir

import (
	"strconv"

	"github.com/json-toolkit/go-jsontk"
)

// Walk visits every node of the document rooted at n in depth-first
// pre-order, handing each visit the pointer that addresses the node.
// Returning false from f prunes the node's children; a non-nil error
// stops the walk and is returned as-is.
func (n *Node) Walk(f func(p jsontk.Pointer, n *Node) (bool, error)) error {
	if n == nil {
		return nil
	}
	return n.walk(jsontk.Root(), f)
}

func (n *Node) walk(p jsontk.Pointer, f func(jsontk.Pointer, *Node) (bool, error)) error {
	dive, err := f(p, n)
	if err != nil {
		return err
	}
	if !dive {
		return nil
	}
	switch n.Type {
	case ObjectType:
		for i, key := range n.Keys {
			if err := n.Values[i].walk(p.Append(key), f); err != nil {
				return err
			}
		}
	case ArrayType:
		for i, v := range n.Values {
			if err := v.walk(p.Append(strconv.Itoa(i)), f); err != nil {
				return err
			}
		}
	}
	return nil
}
