package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/cayleygraph/rdfsink"
	"github.com/cayleygraph/rdfsink/collector"
	"github.com/cayleygraph/rdfsink/internal/load"
	"github.com/cayleygraph/rdfsink/serializer"
	"github.com/cayleygraph/rdfsink/source"
	"github.com/cayleygraph/rdfsink/triple"
)

// inputByMime maps request content types to input formats.
var inputByMime = map[string]string{
	"application/n-quads":   source.NQuads,
	"application/n-triples": source.NQuads,
	"text/plain":            source.NQuads,
	"application/ld+json":   source.JSONLD,
	"application/json":      source.JSONLD,
}

// getFormat picks the output format from the "format" parameter or the
// Accept header, defaulting to N-Triples. It returns nil for an unknown name.
func getFormat(r *http.Request) *serializer.Format {
	if name := r.URL.Query().Get("format"); name != "" {
		return serializer.FormatByName(name)
	}
	for _, spec := range strings.Split(r.Header.Get(hdrAccept), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(spec))
		if err != nil {
			continue
		}
		if f := serializer.FormatByMime(mt); f != nil {
			return f
		}
	}
	return serializer.FormatByName(serializer.NTriples)
}

// getParser picks the input format from the "input" parameter or the
// Content-Type header, defaulting to N-Quads.
func getParser(r *http.Request) (source.Parser, error) {
	name := r.URL.Query().Get("input")
	if name == "" {
		if mt, _, err := mime.ParseMediaType(r.Header.Get(hdrContentType)); err == nil {
			name = inputByMime[mt]
		}
	}
	if name == "" {
		name = source.NQuads
	}
	return rdfsink.ParserFor("", name)
}

// ServeV1Convert converts the request body and returns the selected graph.
func (api *API) ServeV1Convert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) int {
	defer r.Body.Close()
	q := r.URL.Query()
	graph, err := triple.ParseStream(q.Get("graph"))
	if err != nil {
		return jsonResponse(w, http.StatusBadRequest, err)
	}
	format := getFormat(r)
	if format == nil {
		return jsonResponse(w, http.StatusBadRequest, serializer.ErrUnknownFormat.Error()+": "+q.Get("format"))
	}
	p, err := getParser(r)
	if err != nil {
		return jsonResponse(w, http.StatusBadRequest, err)
	}

	var body io.Reader = r.Body
	if api.config.MaxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, api.config.MaxBody)
	}
	rd, err := load.Decompress(body)
	if err != nil {
		return jsonResponse(w, errorCode(err), err)
	}
	out, err := rdfsink.Convert(collector.New(), p, source.FillFrom(rd), rdfsink.Options{
		Base:   q.Get("base"),
		Format: format.Name,
		Graph:  graph,
	})
	if err != nil {
		return jsonResponse(w, errorCode(err), err)
	}
	w.Header().Set(hdrContentType, format.Mime[0])
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, out)
	return http.StatusOK
}

func errorCode(err error) int {
	var (
		tooLarge  *http.MaxBytesError
		malformed *triple.MalformedError
		resource  *load.ResourceError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &malformed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, serializer.ErrUnknownFormat), errors.Is(err, rdfsink.ErrUnknownInput), errors.As(err, &resource):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

type formatInfo struct {
	Name string   `json:"name"`
	Ext  []string `json:"ext,omitempty"`
	Mime []string `json:"mime,omitempty"`
}

// ServeV1Formats lists the input and output formats.
func (api *API) ServeV1Formats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) int {
	var resp struct {
		Input  []formatInfo `json:"input"`
		Output []formatInfo `json:"output"`
	}
	for _, f := range source.Formats() {
		resp.Input = append(resp.Input, formatInfo{Name: f.Name, Ext: f.Ext})
	}
	for _, f := range serializer.Formats() {
		resp.Output = append(resp.Output, formatInfo{Name: f.Name, Ext: f.Ext, Mime: f.Mime})
	}
	w.Header().Set(hdrContentType, contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
	return http.StatusOK
}
