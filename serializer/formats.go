package serializer

import (
	"fmt"
	"io"
	"sort"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"
)

// Format describes an output serialization.
type Format struct {
	// Name is a short format name used as identifier for RegisterFormat.
	Name string
	// Ext is a list of file extensions for the format.
	Ext []string
	// Mime is a list of content types; the first one is used in HTTP responses.
	Mime []string
	// Ordered is set if the format writes one statement per triple in input
	// order, keeping duplicates.
	Ordered bool
	// Writer creates a writer for w. Namespaces maps prefixes to IRIs and may
	// be used to compact the output.
	Writer func(w io.Writer, namespaces map[string]string) quad.WriteCloser
}

var (
	formatsByName = make(map[string]*Format)
	formatsByExt  = make(map[string]*Format)
	formatsByMime = make(map[string]*Format)
)

// RegisterFormat registers a new output format.
func RegisterFormat(f Format) {
	if _, ok := formatsByName[f.Name]; ok {
		panic(fmt.Errorf("format %s is already registered", f.Name))
	}
	formatsByName[f.Name] = &f
	for _, e := range f.Ext {
		if sf, ok := formatsByExt[e]; ok {
			panic(fmt.Errorf("format %s is already registered with extension %s", sf.Name, e))
		}
		formatsByExt[e] = &f
	}
	for _, m := range f.Mime {
		if sf, ok := formatsByMime[m]; ok {
			panic(fmt.Errorf("format %s is already registered with MIME %s", sf.Name, m))
		}
		formatsByMime[m] = &f
	}
}

// FormatByName returns a registered format by its name, or nil.
func FormatByName(name string) *Format {
	return formatsByName[name]
}

// FormatByExt returns a registered format by its file extension, or nil.
func FormatByExt(ext string) *Format {
	return formatsByExt[ext]
}

// FormatByMime returns a registered format by its MIME type, or nil.
func FormatByMime(mime string) *Format {
	return formatsByMime[mime]
}

// Formats returns all registered formats sorted by name.
func Formats() []Format {
	list := make([]Format, 0, len(formatsByName))
	for _, f := range formatsByName {
		list = append(list, *f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

const (
	// NTriples is the canonical output format.
	NTriples = "ntriples"
	// RDFXML is the namespace-aware XML format.
	RDFXML = "rdfxml"
	// JSONLD is JSON-LD with the namespace table as context.
	JSONLD = "jsonld"
)

func init() {
	RegisterFormat(Format{
		Name:    NTriples,
		Ext:     []string{".nt"},
		Mime:    []string{"application/n-triples", "text/plain"},
		Ordered: true,
		Writer: func(w io.Writer, _ map[string]string) quad.WriteCloser {
			return nquads.NewWriter(w)
		},
	})
	RegisterFormat(Format{
		Name:    RDFXML,
		Ext:     []string{".rdf", ".xml"},
		Mime:    []string{"application/rdf+xml"},
		Ordered: true,
		Writer: func(w io.Writer, ns map[string]string) quad.WriteCloser {
			return NewRDFXMLWriter(w, ns)
		},
	})
	RegisterFormat(Format{
		Name: JSONLD,
		Ext:  []string{".jsonld"},
		Mime: []string{"application/ld+json"},
		Writer: func(w io.Writer, ns map[string]string) quad.WriteCloser {
			jw := jsonld.NewWriter(w)
			if len(ns) != 0 {
				ctx := make(map[string]interface{}, len(ns))
				for p, iri := range ns {
					if p != "" {
						ctx[p] = iri
					}
				}
				if len(ctx) != 0 {
					jw.SetLdContext(ctx)
				}
			}
			return jw
		},
	})
}
