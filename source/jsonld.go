package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cayleygraph/quad/jsonld"

	"github.com/cayleygraph/rdfsink/clog"
)

// JSONLDParser reads a JSON-LD document. String-valued terms of a top-level
// @context are passed to the sink as namespaces.
//
// JSON-LD carries no line structure once expanded, so statements are
// reported against line 1; syntax errors carry the line of the failure.
type JSONLDParser struct{}

func (JSONLDParser) Parse(base string, fill BufferFiller, sink Sink) error {
	c := newConverter(base, sink)
	data, err := io.ReadAll(&fillReader{fill: fill})
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		line := 1
		var se *json.SyntaxError
		if errors.As(err, &se) && int(se.Offset) <= len(data) {
			line += bytes.Count(data[:se.Offset], []byte("\n"))
		}
		c.rep.Report(Error, line, fmt.Sprintf("Cannot parse JSON-LD document: %v", err))
		return nil
	}
	c.contexts(doc)

	r := jsonld.NewReaderFromMap(doc)
	n := 0
	for {
		q, err := r.ReadQuad()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			c.rep.Report(Error, 1, fmt.Sprintf("Cannot expand JSON-LD document: %v", err))
			break
		}
		c.add(1, q)
		n++
	}
	if clog.V(2) {
		clog.Infof("jsonld: read %d statements", n)
	}
	return nil
}

// contexts collects prefix definitions from the top-level node objects.
func (c *converter) contexts(doc interface{}) {
	var nodes []interface{}
	switch d := doc.(type) {
	case []interface{}:
		nodes = d
	default:
		nodes = []interface{}{d}
	}
	for _, n := range nodes {
		m, ok := n.(map[string]interface{})
		if !ok {
			continue
		}
		ctxs, ok := m["@context"].([]interface{})
		if !ok {
			ctxs = []interface{}{m["@context"]}
		}
		for _, ctx := range ctxs {
			terms, ok := ctx.(map[string]interface{})
			if !ok {
				continue
			}
			keys := make([]string, 0, len(terms))
			for term := range terms {
				keys = append(keys, term)
			}
			sort.Strings(keys)
			for _, term := range keys {
				iri, ok := terms[term].(string)
				if !ok || strings.HasPrefix(term, "@") || strings.HasPrefix(iri, "@") {
					continue
				}
				c.namespace(1, term, iri)
			}
		}
	}
}
