package serializer

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"

	"github.com/cayleygraph/rdfsink/triple"
)

const rdfxmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// RDFXMLWriter writes statements as RDF/XML, one rdf:Description per
// statement. Namespaces are declared on the root element and used to name
// predicate elements; predicates outside every namespace get a generated
// prefix.
//
// Statements are buffered until Close, since all prefixes must be known
// before the root element is written.
type RDFXMLWriter struct {
	w      *bufio.Writer
	err    error
	closed bool

	quads  []quad.Quad
	byNS   map[string]string // namespace IRI -> prefix
	prefix map[string]string // prefix -> namespace IRI
	auto   int
}

// NewRDFXMLWriter creates a writer binding the given prefixes.
// Prefixes that are not valid XML names, or that would rebind rdf or xml,
// are skipped.
func NewRDFXMLWriter(w io.Writer, namespaces map[string]string) *RDFXMLWriter {
	xw := &RDFXMLWriter{
		w:      bufio.NewWriter(w),
		byNS:   make(map[string]string),
		prefix: map[string]string{"rdf": rdf.NS},
	}
	keys := make([]string, 0, len(namespaces))
	for p := range namespaces {
		keys = append(keys, p)
	}
	sort.Strings(keys)
	for _, p := range keys {
		ns := namespaces[p]
		if ns == "" || p == "_" || !isNCName(p) || p == "rdf" || strings.HasPrefix(strings.ToLower(p), "xml") {
			continue
		}
		xw.prefix[p] = ns
		if _, ok := xw.byNS[ns]; !ok {
			xw.byNS[ns] = p
		}
	}
	xw.byNS[rdf.NS] = "rdf"
	return xw
}

// WriteQuad buffers a single statement.
func (w *RDFXMLWriter) WriteQuad(q quad.Quad) error {
	_, err := w.WriteQuads([]quad.Quad{q})
	return err
}

// WriteQuads buffers statements. Predicate names are resolved here, so
// every generated prefix is known when Close writes the root element.
func (w *RDFXMLWriter) WriteQuads(buf []quad.Quad) (int, error) {
	if w.err != nil {
		return 0, w.err
	} else if w.closed {
		return 0, fmt.Errorf("rdfxml: writer closed")
	}
	for i, q := range buf {
		p, ok := q.Predicate.(quad.IRI)
		if !ok {
			w.err = fmt.Errorf("rdfxml: unsupported predicate %v", q.Predicate)
			return i, w.err
		}
		if _, err := w.qname(string(p)); err != nil {
			w.err = err
			return i, err
		}
		w.quads = append(w.quads, q)
	}
	return len(buf), nil
}

// qname returns the element name of a predicate, declaring a prefix if
// no known namespace matches.
func (w *RDFXMLWriter) qname(iri string) (string, error) {
	best := ""
	for ns := range w.byNS {
		if len(ns) > len(best) && strings.HasPrefix(iri, ns) && isNCName(iri[len(ns):]) {
			best = ns
		}
	}
	if best != "" {
		return w.byNS[best] + ":" + iri[len(best):], nil
	}
	i := strings.LastIndexAny(iri, "#/")
	if i <= 0 || !isNCName(iri[i+1:]) {
		return "", fmt.Errorf("rdfxml: cannot encode predicate <%s> as an XML element name", iri)
	}
	ns := iri[:i+1]
	var p string
	for {
		p = "ns" + strconv.Itoa(w.auto)
		w.auto++
		if _, used := w.prefix[p]; !used {
			break
		}
	}
	w.prefix[p] = ns
	w.byNS[ns] = p
	return p + ":" + iri[i+1:], nil
}

func (w *RDFXMLWriter) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

func (w *RDFXMLWriter) writeEscaped(s string) {
	if w.err != nil {
		return
	}
	w.err = xml.EscapeText(w.w, []byte(s))
}

func (w *RDFXMLWriter) writeAttr(name, val string) {
	w.writeString(" " + name + `="`)
	w.writeEscaped(val)
	w.writeString(`"`)
}

func (w *RDFXMLWriter) writeHeader() {
	w.writeString(rdfxmlHeader)
	w.writeString("<rdf:RDF")
	prefixes := make([]string, 0, len(w.prefix))
	for p := range w.prefix {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		w.writeAttr("xmlns:"+p, w.prefix[p])
	}
	w.writeString(">\n")
}

func (w *RDFXMLWriter) writeNode(attr string, v quad.Value) error {
	switch v := v.(type) {
	case quad.IRI:
		w.writeAttr(attr, string(v))
	case quad.BNode:
		w.writeAttr("rdf:nodeID", string(v))
	default:
		return fmt.Errorf("rdfxml: unsupported node %v", v)
	}
	return nil
}

func (w *RDFXMLWriter) writeStatement(q quad.Quad) error {
	pred, err := w.qname(string(q.Predicate.(quad.IRI)))
	if err != nil {
		return err
	}
	w.writeString("  <rdf:Description")
	if err := w.writeNode("rdf:about", q.Subject); err != nil {
		return err
	}
	w.writeString(">\n    <" + pred)
	switch o := q.Object.(type) {
	case quad.IRI, quad.BNode:
		if err := w.writeNode("rdf:resource", o); err != nil {
			return err
		}
		w.writeString("/>\n")
	case quad.String:
		w.writeString(">")
		w.writeEscaped(string(o))
		w.writeString("</" + pred + ">\n")
	case quad.LangString:
		w.writeAttr("xml:lang", o.Lang)
		w.writeString(">")
		w.writeEscaped(string(o.Value))
		w.writeString("</" + pred + ">\n")
	case quad.TypedString:
		if o.Type == triple.XMLLiteralType {
			w.writeString(` rdf:parseType="Literal">`)
			w.writeString(string(o.Value))
		} else {
			w.writeAttr("rdf:datatype", string(o.Type))
			w.writeString(">")
			w.writeEscaped(string(o.Value))
		}
		w.writeString("</" + pred + ">\n")
	default:
		return fmt.Errorf("rdfxml: unsupported object %v", q.Object)
	}
	w.writeString("  </rdf:Description>\n")
	return w.err
}

// Close writes the document and flushes the underlying writer.
func (w *RDFXMLWriter) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	if w.err != nil {
		return w.err
	}
	w.writeHeader()
	for _, q := range w.quads {
		if err := w.writeStatement(q); err != nil {
			w.err = err
			return err
		}
	}
	w.writeString("</rdf:RDF>\n")
	if w.err != nil {
		return w.err
	}
	w.quads = nil
	w.err = w.w.Flush()
	return w.err
}

func isNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == ':' {
			return false
		}
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if r != '_' && r != '-' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}
