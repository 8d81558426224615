package source

import (
	"strconv"

	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/xsd"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cayleygraph/rdfsink/clog"
	"github.com/cayleygraph/rdfsink/triple"
)

// Vocabulary of processor graph entries.
const (
	RDFaNS    = "http://www.w3.org/ns/rdfa#"
	PtrNS     = "http://www.w3.org/2009/pointers#"
	DCTermsNS = "http://purl.org/dc/terms/"

	rdfType = rdf.NS + "type"
)

// Level is the severity of a processor graph entry.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

var levelNames = [...]string{Info: "Info", Warning: "Warning", Error: "Error"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// IRI returns the rdfa class of the level.
func (l Level) IRI() string { return RDFaNS + l.String() }

var mIssues = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rdfsink_source_issues_total",
	Help: "Number of processor graph entries reported by parsers.",
}, []string{"level"})

// Reporter writes processor graph entries to a sink. Each entry is a node
// typed with its level, an English description and a line pointer.
type Reporter struct {
	sink Sink
	next int
}

// NewReporter returns a reporter writing to sink.
func NewReporter(sink Sink) *Reporter {
	return &Reporter{sink: sink}
}

func (r *Reporter) bnode() string {
	id := triple.BNodePrefix + "g" + strconv.Itoa(r.next)
	r.next++
	return id
}

// Report adds an entry for line with the given message.
func (r *Reporter) Report(level Level, line int, msg string) {
	if line < 1 {
		line = 1
	}
	mIssues.WithLabelValues(level.String()).Inc()
	if clog.V(1) {
		clog.Infof("line %d: %s: %s", line, level, msg)
	}
	subj, ctx := r.bnode(), r.bnode()
	for _, t := range []triple.Triple{
		{Subject: subj, Predicate: rdfType, Object: level.IRI(), Kind: triple.IRI},
		{Subject: subj, Predicate: DCTermsNS + "description", Object: msg, Kind: triple.PlainLiteral, Language: "en"},
		{Subject: subj, Predicate: RDFaNS + "context", Object: ctx, Kind: triple.IRI},
		{Subject: ctx, Predicate: rdfType, Object: PtrNS + "LineCharPointer", Kind: triple.IRI},
		{Subject: ctx, Predicate: PtrNS + "lineNumber", Object: strconv.Itoa(line), Kind: triple.TypedLiteral, Datatype: xsd.NS + "positiveInteger"},
	} {
		r.sink.AddTriple(triple.Processor, t)
	}
}
