// Package ir provides the in-memory representation of JSON documents.
//
// The representation is a tree of [Node] values. Object members keep the
// order in which they were added or parsed, numbers keep their source
// literal alongside parsed forms, and every node is addressable with a
// [jsontk.Pointer].
//
// # Construction
//
// Nodes come from parsing ([FromJSON]), from plain Go values ([FromAny],
// [FromMap], [FromSlice]) or from the typed constructors ([Null],
// [FromBool], [FromInt], [FromFloat], [FromNumber], [FromString],
// [Object]). The zero Node is the JSON null.
//
// # Pointer operations
//
// [Node.Resolve], [Node.InsertAt] and [Node.Insert] are the native
// pointer operations. *Node also implements the jsontk capability
// contract, so the generic jsontk.Resolve and jsontk.InsertAt work on ir
// documents, and [Node.Walk] enumerates a document pointer by pointer.
//
// # Ordering
//
// [Compare] defines a total order over documents: null, then booleans,
// numbers, strings, arrays and objects, with container elements compared
// pairwise. [Equal] is its equivalence.
package ir
