package rdfsink

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfsink/collector"
	"github.com/cayleygraph/rdfsink/internal/load"
	"github.com/cayleygraph/rdfsink/serializer"
	"github.com/cayleygraph/rdfsink/source"
	"github.com/cayleygraph/rdfsink/triple"
)

const doc = `@prefix ex: <http://ex/> .
<http://ex/s> <http://ex/p> "hello" .
_:a <http://ex/p> _:b .
_:a <http://ex/q> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .
not a statement
`

func fill(s string) source.BufferFiller {
	return source.FillFrom(strings.NewReader(s))
}

func TestConvert(t *testing.T) {
	c := collector.New()
	out, err := Convert(c, source.NQuadsParser{}, fill(doc), Options{})
	require.NoError(t, err)
	require.Equal(t, `<http://ex/s> <http://ex/p> "hello" .`+"\n"+
		`_:b0 <http://ex/p> _:b1 .`+"\n"+
		`_:b0 <http://ex/q> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .`+"\n", out)
	require.Equal(t, map[string]string{"ex": "http://ex/"}, c.Namespaces())
}

func TestConvertProcessorGraph(t *testing.T) {
	out, err := Convert(collector.New(), source.NQuadsParser{}, fill(doc), Options{Graph: triple.Processor})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, out, "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/rdfa#Error>")
	require.Contains(t, out, `"5"^^<http://www.w3.org/2001/XMLSchema#positiveInteger>`)
	require.NotContains(t, out, "hello")
}

func TestConvertProcessorGraphRDFXML(t *testing.T) {
	out, err := Convert(collector.New(), source.NQuadsParser{}, fill(doc), Options{Graph: triple.Processor, Format: serializer.RDFXML})
	require.NoError(t, err)
	require.Contains(t, out, `<rdf:type rdf:resource="http://www.w3.org/ns/rdfa#Error"/>`)
	require.Contains(t, out, `<rdf:type rdf:resource="http://www.w3.org/2009/pointers#LineCharPointer"/>`)
	require.Contains(t, out, `rdf:datatype="http://www.w3.org/2001/XMLSchema#positiveInteger">5<`)
}

func TestConvertKeepsLexicalForms(t *testing.T) {
	in := `<http://ex/s> <http://ex/p> "042"^^<http://www.w3.org/2001/XMLSchema#integer> .
<http://ex/s> <http://ex/p> "1.0E0"^^<http://www.w3.org/2001/XMLSchema#double> .
<http://ex/s> <http://ex/p> "1"^^<http://www.w3.org/2001/XMLSchema#boolean> .
<http://ex/s> <http://ex/p> "2020-01-01T00:00:00.000Z"^^<http://www.w3.org/2001/XMLSchema#dateTime> .
`
	out, err := Convert(collector.New(), source.NQuadsParser{}, fill(in), Options{})
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestConvertRDFXML(t *testing.T) {
	out, err := Convert(collector.New(), source.NQuadsParser{}, fill(doc), Options{Format: serializer.RDFXML})
	require.NoError(t, err)
	require.Contains(t, out, `xmlns:ex="http://ex/"`)
	require.Contains(t, out, `<ex:p>hello</ex:p>`)
}

type badParser struct{}

func (badParser) Parse(base string, fill source.BufferFiller, sink source.Sink) error {
	sink.AddTriple(triple.Default, triple.Triple{Subject: "http://ex/s", Predicate: "http://ex/p", Object: "x", Kind: triple.Kind(99)})
	sink.AddNamespace("ex", "http://ex/")
	return nil
}

func TestConvertMalformedResets(t *testing.T) {
	c := collector.New()
	out, err := Convert(c, badParser{}, fill(""), Options{})
	require.Equal(t, "", out)
	var me *triple.MalformedError
	require.True(t, errors.As(err, &me), "got %v", err)
	require.Equal(t, 0, c.Len(triple.Default))
	require.Empty(t, c.Namespaces())
}

func TestConvertUnknownFormat(t *testing.T) {
	c := collector.New()
	_, err := Convert(c, source.NQuadsParser{}, fill(doc), Options{Format: "turtle"})
	require.True(t, errors.Is(err, serializer.ErrUnknownFormat))
	require.Equal(t, 0, c.Len(triple.Default))
}

func TestParserFor(t *testing.T) {
	p, err := ParserFor("doc.jsonld.gz", "")
	require.NoError(t, err)
	require.IsType(t, source.JSONLDParser{}, p)

	p, err = ParserFor("https://example.org/data.jsonld?v=1", "")
	require.NoError(t, err)
	require.IsType(t, source.JSONLDParser{}, p)

	p, err = ParserFor("doc.html", "")
	require.NoError(t, err)
	require.IsType(t, source.NQuadsParser{}, p)

	_, err = ParserFor("doc.nq", "rdfa")
	require.True(t, errors.Is(err, ErrUnknownInput))
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.nt")
	require.NoError(t, os.WriteFile(path, []byte(`<s> <http://ex/p> "x" .`+"\n"), 0644))

	out, err := ConvertFile(context.Background(), path, Options{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<file://"), out)
	require.Contains(t, out, "/s> <http://ex/p> \"x\" .")

	out, err = ConvertFile(context.Background(), path, Options{Base: "http://base/"})
	require.NoError(t, err)
	require.Equal(t, `<http://base/s> <http://ex/p> "x" .`+"\n", out)

	_, err = ConvertFile(context.Background(), filepath.Join(dir, "missing.nt"), Options{})
	var re *load.ResourceError
	require.True(t, errors.As(err, &re))
}
