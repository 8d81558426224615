// Package triple defines the statements exchanged between a document parser
// and the serializer: a subject, a predicate and one of four object kinds.
package triple

import (
	"fmt"
	"strings"

	"github.com/cayleygraph/quad/voc/rdf"
)

// BNodePrefix marks a subject or IRI object as a document-local blank node label.
const BNodePrefix = "_:"

// XMLLiteralType is the datatype every XML literal carries.
const XMLLiteralType = rdf.NS + "XMLLiteral"

// Kind is the kind of a triple object.
type Kind int

const (
	// IRI is an IRI reference or a blank node label.
	IRI Kind = iota + 1
	// TypedLiteral is a literal with an explicit datatype IRI.
	TypedLiteral
	// PlainLiteral is a literal with an optional language tag.
	PlainLiteral
	// XMLLiteral is an XML fragment literal; its datatype is always rdf:XMLLiteral.
	XMLLiteral
)

var kindNames = map[Kind]string{
	IRI:          "iri",
	TypedLiteral: "typed",
	PlainLiteral: "plain",
	XMLLiteral:   "xml",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the four known object kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Stream selects one of the two triple sequences a parser produces.
type Stream int

const (
	// Default is the graph of data extracted from the document.
	Default Stream = iota
	// Processor is the graph of parser diagnostics.
	Processor
)

func (s Stream) String() string {
	switch s {
	case Default:
		return "default"
	case Processor:
		return "processor"
	}
	return fmt.Sprintf("stream(%d)", int(s))
}

// ParseStream maps "default" or "processor" to a Stream.
// An empty name selects the default graph.
func ParseStream(name string) (Stream, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return Default, nil
	case "processor":
		return Processor, nil
	}
	return Default, fmt.Errorf("unknown graph %q", name)
}

// Triple is a single statement as emitted by a parser.
//
// Datatype and Language are empty when absent.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
	Kind      Kind
	Datatype  string
	Language  string
}

// IsBlank reports whether the term is a blank node label.
func IsBlank(term string) bool {
	return strings.HasPrefix(term, BNodePrefix)
}

// Validate checks the object kind invariants of t.
func (t Triple) Validate() error {
	if t.Subject == "" {
		return malformed(t, "missing subject")
	}
	if t.Predicate == "" {
		return malformed(t, "missing predicate")
	}
	switch t.Kind {
	case IRI:
		if t.Object == "" {
			return malformed(t, "empty IRI object")
		}
		if t.Datatype != "" || t.Language != "" {
			return malformed(t, "IRI object with datatype or language")
		}
	case TypedLiteral:
		if t.Datatype == "" {
			return malformed(t, "typed literal without datatype")
		}
		if t.Language != "" {
			return malformed(t, "typed literal with language")
		}
	case PlainLiteral:
		if t.Datatype != "" {
			return malformed(t, "plain literal with datatype")
		}
	case XMLLiteral:
		if t.Datatype != "" && t.Datatype != XMLLiteralType {
			return malformed(t, "XML literal with datatype "+t.Datatype)
		}
	default:
		return malformed(t, "unknown object kind "+t.Kind.String())
	}
	return nil
}

func (t Triple) String() string {
	return fmt.Sprintf("(%s, %s, %q, %v, %q, %q)", t.Subject, t.Predicate, t.Object, t.Kind, t.Datatype, t.Language)
}

func malformed(t Triple, reason string) *MalformedError {
	return &MalformedError{Index: -1, Triple: t, Reason: reason}
}
