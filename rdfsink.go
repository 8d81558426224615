// Package rdfsink converts documents into RDF serializations.
//
// A conversion runs one parser over a document, collecting triples into the
// default and processor graphs, and then serializes one of the graphs.
package rdfsink

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/rdfsink/clog"
	"github.com/cayleygraph/rdfsink/collector"
	"github.com/cayleygraph/rdfsink/internal/load"
	"github.com/cayleygraph/rdfsink/serializer"
	"github.com/cayleygraph/rdfsink/source"
	"github.com/cayleygraph/rdfsink/triple"
)

// ErrUnknownInput is returned for an input format that is not registered.
var ErrUnknownInput = errors.New("unknown input format")

// Options configures a conversion.
type Options struct {
	// Input is the input format name. If empty, it is derived from the
	// file extension, falling back to N-Quads.
	Input string
	// Format is the output format name; N-Triples if empty.
	Format string
	// Base overrides the base IRI derived from the input location.
	Base string
	// Graph selects the serialized stream.
	Graph triple.Stream
}

func (o Options) format() string {
	if o.Format == "" {
		return serializer.NTriples
	}
	return o.Format
}

// Convert parses the document supplied by fill with p into c and serializes
// the selected graph. On failure c is reset and no output is returned.
func Convert(c *collector.Collector, p source.Parser, fill source.BufferFiller, opt Options) (string, error) {
	if serializer.FormatByName(opt.format()) == nil {
		return "", fmt.Errorf("%w: %q", serializer.ErrUnknownFormat, opt.format())
	}
	if err := p.Parse(opt.Base, fill, c); err != nil {
		c.Reset()
		return "", err
	}
	if clog.V(2) {
		clog.Infof("parsed %d triples and %d processor entries", c.Len(triple.Default), c.Len(triple.Processor))
	}
	out, err := serializer.SerializeAs(c, opt.Graph, opt.format())
	if err != nil {
		c.Reset()
		return "", err
	}
	return out, nil
}

// ParserFor picks the parser for a document. An explicit name wins,
// otherwise the extension of path is used, ignoring compression suffixes.
func ParserFor(path, name string) (source.Parser, error) {
	if name != "" {
		p := source.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInput, name)
		}
		return p, nil
	}
	if u, err := url.Parse(path); err == nil && load.IsURL(path) {
		path = u.Path
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".bz2":
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	if p := source.ByExt(ext); p != nil {
		return p, nil
	}
	return source.ByName(source.NQuads), nil
}

// ConvertFile converts the file or http(s) URL at path.
func ConvertFile(ctx context.Context, path string, opt Options) (string, error) {
	p, err := ParserFor(path, opt.Input)
	if err != nil {
		return "", err
	}
	in, err := load.Open(ctx, path)
	if err != nil {
		return "", err
	}
	defer in.Close()
	if opt.Base == "" {
		opt.Base = in.Base
	}
	return Convert(collector.New(), p, source.FillFrom(in), opt)
}
