package collector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfsink/triple"
)

func plain(s, o string) triple.Triple {
	return triple.Triple{Subject: s, Predicate: "http://ex/p", Object: o, Kind: triple.PlainLiteral}
}

func TestAddTriplePreservesOrder(t *testing.T) {
	c := New()
	var exp []triple.Triple
	for i := 0; i < 1000; i++ {
		tr := plain("http://ex/s", fmt.Sprint(i))
		c.AddTriple(triple.Default, tr)
		exp = append(exp, tr)
	}
	require.Equal(t, exp, c.Triples(triple.Default))
	require.Equal(t, 1000, c.Len(triple.Default))
	require.Empty(t, c.Triples(triple.Processor))
}

func TestAddTripleKeepsDuplicates(t *testing.T) {
	c := New()
	tr := plain("_:a", "x")
	c.AddTriple(triple.Default, tr)
	c.AddTriple(triple.Default, tr)
	require.Equal(t, []triple.Triple{tr, tr}, c.Triples(triple.Default))
}

func TestStreamsAreIndependent(t *testing.T) {
	c := New()
	d := plain("http://ex/d", "d")
	p := plain("http://ex/p", "p")
	c.AddTriple(triple.Default, d)
	c.AddTriple(triple.Processor, p)
	c.AddTriple(triple.Stream(7), p)
	require.Equal(t, []triple.Triple{d}, c.Triples(triple.Default))
	require.Equal(t, []triple.Triple{p}, c.Triples(triple.Processor))
	require.Nil(t, c.Triples(triple.Stream(7)))
}

func TestAddNamespaceLastWriteWins(t *testing.T) {
	c := New()
	c.AddNamespace("ex", "http://example.org/")
	c.AddNamespace("foaf", "http://xmlns.com/foaf/0.1/")
	c.AddNamespace("ex", "http://example.com/")
	require.Equal(t, map[string]string{
		"ex":   "http://example.com/",
		"foaf": "http://xmlns.com/foaf/0.1/",
	}, c.Namespaces())

	ns := c.Namespaces()
	ns["ex"] = "changed"
	require.Equal(t, "http://example.com/", c.Namespaces()["ex"])
}

func TestZeroValue(t *testing.T) {
	var c Collector
	c.AddNamespace("ex", "http://example.org/")
	c.AddTriple(triple.Processor, plain("_:a", "x"))
	require.Equal(t, 1, c.Len(triple.Processor))
	require.Len(t, c.Namespaces(), 1)
}

func TestReset(t *testing.T) {
	c := New()
	c.AddNamespace("ex", "http://example.org/")
	c.AddTriple(triple.Default, plain("_:a", "x"))
	c.AddTriple(triple.Processor, plain("_:b", "y"))
	c.Reset()
	require.Zero(t, c.Len(triple.Default))
	require.Zero(t, c.Len(triple.Processor))
	require.Empty(t, c.Namespaces())
}
