package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cayleygraph/quad/nquads"

	"github.com/cayleygraph/rdfsink/clog"
)

// MaxLineSize is the longest input line the N-Quads parser accepts.
const MaxLineSize = 1 << 20

// NQuadsParser reads N-Quads or N-Triples, one statement per line.
//
// Turtle-style "@prefix p: <iri> ." and SPARQL-style "PREFIX p: <iri>" lines
// declare namespaces; "@base" and "BASE" lines replace the base IRI.
// Lines that cannot be decoded are reported as errors and skipped.
type NQuadsParser struct{}

func (NQuadsParser) Parse(base string, fill BufferFiller, sink Sink) error {
	c := newConverter(base, sink)
	sc := bufio.NewScanner(&fillReader{fill: fill})
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	line, n := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		if c.directive(line, text) {
			continue
		}
		q, err := nquads.NewReader(strings.NewReader(text), false).ReadQuad()
		if errors.Is(err, io.EOF) {
			continue
		} else if err != nil {
			c.rep.Report(Error, line, fmt.Sprintf("Cannot parse statement: %v", err))
			continue
		}
		c.add(line, q)
		n++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if clog.V(2) {
		clog.Infof("nquads: read %d statements from %d lines", n, line)
	}
	return nil
}

// directive handles prefix and base declarations, returning false for
// anything else.
func (c *converter) directive(line int, text string) bool {
	fields := strings.Fields(text)
	kw := fields[0]
	switch {
	case kw == "@prefix" || kw == "@base":
		last := fields[len(fields)-1]
		if !strings.HasSuffix(last, ".") {
			c.rep.Report(Error, line, fmt.Sprintf("Directive %s is not terminated by '.'", kw))
			return true
		}
		if last == "." {
			fields = fields[:len(fields)-1]
		} else {
			fields[len(fields)-1] = strings.TrimSuffix(last, ".")
		}
		kw = kw[1:]
	case strings.EqualFold(kw, "prefix") || strings.EqualFold(kw, "base"):
		kw = strings.ToLower(kw)
	default:
		return false
	}
	if kw == "prefix" {
		if len(fields) != 3 || !strings.HasSuffix(fields[1], ":") {
			c.rep.Report(Error, line, "Malformed prefix declaration")
			return true
		}
		iri, ok := bracketed(fields[2])
		if !ok {
			c.rep.Report(Error, line, fmt.Sprintf("Prefix namespace %s is not an IRI", fields[2]))
			return true
		}
		c.namespace(line, strings.TrimSuffix(fields[1], ":"), iri)
		return true
	}
	iri, ok := "", len(fields) == 2
	if ok {
		iri, ok = bracketed(fields[1])
	}
	if !ok {
		c.rep.Report(Error, line, "Malformed base declaration")
		return true
	}
	c.setBase(c.resolve(iri))
	return true
}

func bracketed(s string) (string, bool) {
	if len(s) < 2 || s[0] != '<' || s[len(s)-1] != '>' {
		return "", false
	}
	return s[1 : len(s)-1], true
}
