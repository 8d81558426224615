// Package collector accumulates the triples and namespace declarations a
// parser emits for one document.
package collector

import "github.com/cayleygraph/rdfsink/triple"

// Collector is an append-only triple store with one sequence per stream
// and a prefix table. It is driven by a single parser and is not safe for
// concurrent use.
type Collector struct {
	graphs [2][]triple.Triple
	ns     map[string]string
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{ns: make(map[string]string)}
}

// AddTriple appends t to the end of stream s. Streams other than
// triple.Default and triple.Processor are ignored.
func (c *Collector) AddTriple(s triple.Stream, t triple.Triple) {
	if s != triple.Default && s != triple.Processor {
		return
	}
	c.graphs[s] = append(c.graphs[s], t)
}

// AddNamespace binds prefix to iri, replacing any earlier binding.
func (c *Collector) AddNamespace(prefix, iri string) {
	if c.ns == nil {
		c.ns = make(map[string]string)
	}
	c.ns[prefix] = iri
}

// Triples returns the triples of stream s in emission order.
// The returned slice must not be modified.
func (c *Collector) Triples(s triple.Stream) []triple.Triple {
	if s != triple.Default && s != triple.Processor {
		return nil
	}
	return c.graphs[s]
}

// Len returns the number of triples collected for s.
func (c *Collector) Len(s triple.Stream) int {
	return len(c.Triples(s))
}

// Namespaces returns a copy of the prefix table.
func (c *Collector) Namespaces() map[string]string {
	out := make(map[string]string, len(c.ns))
	for p, iri := range c.ns {
		out[p] = iri
	}
	return out
}

// Reset drops everything collected so far.
func (c *Collector) Reset() {
	c.graphs = [2][]triple.Triple{}
	c.ns = make(map[string]string)
}
