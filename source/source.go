// Package source defines how document parsers feed triples to a collector
// and provides producers for N-Quads and JSON-LD input.
//
// A parser pulls input through a BufferFiller and pushes every triple it
// extracts into a Sink, either to the default graph or, for diagnostics, to
// the processor graph.
package source

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"

	"github.com/cayleygraph/rdfsink/internal/load"
	"github.com/cayleygraph/rdfsink/triple"
)

// BufferFiller fills p with the next chunk of input and returns the number
// of bytes written. A fill shorter than len(p) marks the end of the input.
type BufferFiller func(p []byte) (int, error)

// FillFrom returns a BufferFiller reading from r.
func FillFrom(r io.Reader) BufferFiller {
	return func(p []byte) (int, error) {
		n, err := io.ReadFull(r, p)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = nil
		}
		return n, err
	}
}

// fillReader adapts a BufferFiller to io.Reader.
type fillReader struct {
	fill BufferFiller
	eof  bool
}

func (r *fillReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	} else if len(p) == 0 {
		return 0, nil
	}
	n, err := r.fill(p)
	if err != nil {
		return 0, &load.ResourceError{Msg: "Cannot read input", Err: err}
	}
	if n < len(p) {
		r.eof = true
		if n <= 0 {
			return 0, io.EOF
		}
	}
	return n, nil
}

// Sink receives the output of a parser.
type Sink interface {
	AddTriple(s triple.Stream, t triple.Triple)
	AddNamespace(prefix, iri string)
}

// Callbacks is a Sink dispatching to per-event functions. Nil functions
// drop their events.
type Callbacks struct {
	DefaultGraph   func(t triple.Triple)
	ProcessorGraph func(t triple.Triple)
	Namespace      func(prefix, iri string)
}

func (c Callbacks) AddTriple(s triple.Stream, t triple.Triple) {
	switch s {
	case triple.Default:
		if c.DefaultGraph != nil {
			c.DefaultGraph(t)
		}
	case triple.Processor:
		if c.ProcessorGraph != nil {
			c.ProcessorGraph(t)
		}
	}
}

func (c Callbacks) AddNamespace(prefix, iri string) {
	if c.Namespace != nil {
		c.Namespace(prefix, iri)
	}
}

// Parser extracts triples from a document.
//
// Syntax problems are reported into the processor graph and do not fail the
// parse; only input errors are returned.
type Parser interface {
	Parse(base string, fill BufferFiller, sink Sink) error
}

// Format is a registered input format.
type Format struct {
	Name   string
	Ext    []string
	Parser Parser
}

var (
	formatsByName = make(map[string]*Format)
	formatsByExt  = make(map[string]*Format)
)

// Register adds an input format. It panics if the name or an extension is
// already taken.
func Register(name string, p Parser, ext ...string) {
	if _, ok := formatsByName[name]; ok {
		panic(fmt.Errorf("input format %s is already registered", name))
	}
	f := &Format{Name: name, Ext: ext, Parser: p}
	for _, e := range ext {
		if sf, ok := formatsByExt[e]; ok {
			panic(fmt.Errorf("input format %s is already registered with extension %s", sf.Name, e))
		}
		formatsByExt[e] = f
	}
	formatsByName[name] = f
}

// ByName returns the parser registered under name, or nil.
func ByName(name string) Parser {
	if f := formatsByName[name]; f != nil {
		return f.Parser
	}
	return nil
}

// ByExt returns the parser registered for a file extension, or nil.
func ByExt(ext string) Parser {
	if f := formatsByExt[ext]; f != nil {
		return f.Parser
	}
	return nil
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formatsByName))
	for name := range formatsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Formats returns all registered input formats sorted by name.
func Formats() []Format {
	list := make([]Format, 0, len(formatsByName))
	for _, name := range Names() {
		list = append(list, *formatsByName[name])
	}
	return list
}

const (
	// NQuads is the line-based N-Quads/N-Triples input format.
	NQuads = "nquads"
	// JSONLD is the JSON-LD input format.
	JSONLD = "jsonld"
)

func init() {
	// Typed literals keep their lexical form instead of being decoded
	// into native values.
	nquads.AutoConvertTypedString = false
	jsonld.AutoConvertTypedString = false

	Register(NQuads, NQuadsParser{}, ".nq", ".nt")
	Register(JSONLD, JSONLDParser{}, ".jsonld", ".json")
}
