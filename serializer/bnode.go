package serializer

import (
	"strconv"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/rdfsink/triple"
)

// BlankNodes maps parser blank node labels to blank nodes of one
// serialization pass. The first occurrence of a label allocates the next
// node; later occurrences reuse it.
type BlankNodes struct {
	nodes map[string]quad.BNode
	cur   int
}

// NewBlankNodes returns an empty table.
func NewBlankNodes() *BlankNodes {
	return &BlankNodes{nodes: make(map[string]quad.BNode)}
}

// Node returns the blank node allocated for label.
func (b *BlankNodes) Node(label string) quad.BNode {
	if n, ok := b.nodes[label]; ok {
		return n
	}
	if b.nodes == nil {
		b.nodes = make(map[string]quad.BNode)
	}
	n := quad.BNode("b" + strconv.Itoa(b.cur))
	b.cur++
	b.nodes[label] = n
	return n
}

// Len returns the number of distinct labels seen.
func (b *BlankNodes) Len() int { return len(b.nodes) }

// term resolves a subject or IRI object.
func (b *BlankNodes) term(s string) quad.Value {
	if triple.IsBlank(s) {
		return b.Node(s)
	}
	return quad.IRI(s)
}
