package source

import (
	"fmt"
	"net/url"
	"unicode"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/xsd"
	"golang.org/x/text/language"

	"github.com/cayleygraph/rdfsink/triple"
)

var xsdString = xsd.NS + "string"

// converter turns decoded quads into triples, resolving relative IRIs
// against the document base and reporting problems to rep.
type converter struct {
	base *url.URL
	sink Sink
	rep  *Reporter
}

func newConverter(base string, sink Sink) *converter {
	c := &converter{sink: sink, rep: NewReporter(sink)}
	c.setBase(base)
	return c
}

func (c *converter) setBase(base string) {
	c.base = nil
	if base == "" {
		return
	}
	if u, err := url.Parse(base); err == nil && u.IsAbs() {
		c.base = u
	}
}

func (c *converter) resolve(iri string) string {
	if c.base == nil {
		return iri
	}
	u, err := url.Parse(iri)
	if err != nil || u.IsAbs() {
		return iri
	}
	return c.base.ResolveReference(u).String()
}

func (c *converter) node(v quad.Value) (string, error) {
	switch v := v.(type) {
	case quad.IRI:
		return c.resolve(string(v)), nil
	case quad.BNode:
		return triple.BNodePrefix + string(v), nil
	}
	return "", fmt.Errorf("%v cannot be used as a node", v)
}

// add emits q into the default graph.
func (c *converter) add(line int, q quad.Quad) {
	t, err := c.convert(line, q)
	if err != nil {
		c.rep.Report(Error, line, err.Error())
		return
	}
	if q.Label != nil {
		c.rep.Report(Warning, line, fmt.Sprintf("The graph name %v is not supported; the statement is added to the default graph.", q.Label))
	}
	c.sink.AddTriple(triple.Default, t)
}

func (c *converter) convert(line int, q quad.Quad) (triple.Triple, error) {
	var (
		t   triple.Triple
		err error
	)
	if t.Subject, err = c.node(q.Subject); err != nil {
		return t, fmt.Errorf("invalid subject: %v", err)
	}
	p, ok := q.Predicate.(quad.IRI)
	if !ok {
		return t, fmt.Errorf("invalid predicate: %v is not an IRI", q.Predicate)
	}
	t.Predicate = c.resolve(string(p))

	switch o := q.Object.(type) {
	case quad.IRI, quad.BNode:
		t.Kind = triple.IRI
		t.Object, _ = c.node(o)
	case quad.String:
		t.Kind, t.Object = triple.PlainLiteral, string(o)
	case quad.LangString:
		t.Kind, t.Object, t.Language = triple.PlainLiteral, string(o.Value), o.Lang
		if _, err := language.Parse(o.Lang); err != nil {
			c.rep.Report(Warning, line, fmt.Sprintf("The language tag '%s' is not well-formed.", o.Lang))
		}
	case quad.TypedString:
		dt := c.resolve(string(o.Type))
		switch dt {
		case triple.XMLLiteralType:
			t.Kind, t.Object = triple.XMLLiteral, string(o.Value)
		case xsdString:
			// Simple literals and xsd:string are the same value.
			t.Kind, t.Object = triple.PlainLiteral, string(o.Value)
		default:
			t.Kind, t.Object, t.Datatype = triple.TypedLiteral, string(o.Value), dt
		}
	default:
		return t, fmt.Errorf("unsupported object %v", q.Object)
	}
	return t, nil
}

// namespace reports and drops prefixes that cannot be declared, passing the
// rest to the sink.
func (c *converter) namespace(line int, prefix, iri string) {
	switch {
	case prefix == "_":
		c.rep.Report(Warning, line, "The underscore character must not be declared as a prefix "+
			"because it conflicts with the prefix for blank node identifiers. "+
			"The occurrence of this prefix declaration is being ignored.")
	case prefix != "" && !validPrefixStart(prefix):
		c.rep.Report(Warning, line, fmt.Sprintf("The declaration of the '%s' prefix is invalid "+
			"because it starts with an invalid character. Please see "+
			"http://www.w3.org/TR/REC-xml/#NT-NameStartChar for a "+
			"full explanation of valid first characters for declaring prefixes.", prefix))
	default:
		c.sink.AddNamespace(prefix, c.resolve(iri))
	}
}

func validPrefixStart(prefix string) bool {
	for _, r := range prefix {
		return r == '_' || unicode.IsLetter(r)
	}
	return false
}
