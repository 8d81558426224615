package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const doc = `@prefix ex: <http://ex/> .
<http://ex/s> <http://ex/p> "hello" .
<rel> <http://ex/p> <http://ex/o> .
not a statement
`

func serve(t testing.TB, cfg *Config, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	SetupRoutes(cfg).ServeHTTP(rec, req)
	return rec
}

var convertTests = []struct {
	name     string
	url      string
	header   map[string]string
	body     string
	code     int
	mime     string
	contains []string
}{
	{
		name:     "default graph",
		url:      "/api/v1/convert?base=http://base/",
		body:     doc,
		code:     http.StatusOK,
		mime:     "application/n-triples",
		contains: []string{`<http://ex/s> <http://ex/p> "hello" .`, `<http://base/rel> <http://ex/p> <http://ex/o> .`},
	},
	{
		name:     "processor graph",
		url:      "/api/v1/convert?graph=processor",
		body:     doc,
		code:     http.StatusOK,
		mime:     "application/n-triples",
		contains: []string{"<http://www.w3.org/ns/rdfa#Error>", `"4"^^<http://www.w3.org/2001/XMLSchema#positiveInteger>`},
	},
	{
		name:     "rdfxml by accept",
		url:      "/api/v1/convert",
		header:   map[string]string{"Accept": "text/html, application/rdf+xml;q=0.9"},
		body:     doc,
		code:     http.StatusOK,
		mime:     "application/rdf+xml",
		contains: []string{`xmlns:ex="http://ex/"`, "<ex:p>hello</ex:p>"},
	},
	{
		name:     "jsonld input by content type",
		url:      "/api/v1/convert",
		header:   map[string]string{"Content-Type": "application/ld+json"},
		body:     `{"@id": "http://ex/s", "http://ex/p": "hello"}`,
		code:     http.StatusOK,
		contains: []string{`<http://ex/s> <http://ex/p> "hello" .`},
	},
	{
		name: "unknown graph",
		url:  "/api/v1/convert?graph=named",
		body: doc,
		code: http.StatusBadRequest,
	},
	{
		name:     "unknown format",
		url:      "/api/v1/convert?format=turtle",
		body:     doc,
		code:     http.StatusBadRequest,
		contains: []string{"turtle"},
	},
	{
		name: "unknown input",
		url:  "/api/v1/convert?input=rdfa",
		body: doc,
		code: http.StatusBadRequest,
	},
}

func TestConvert(t *testing.T) {
	for _, c := range convertTests {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, c.url, strings.NewReader(c.body))
			for k, v := range c.header {
				req.Header.Set(k, v)
			}
			rec := serve(t, nil, req)
			require.Equal(t, c.code, rec.Code, rec.Body.String())
			if c.mime != "" {
				require.Equal(t, c.mime, rec.Header().Get("Content-Type"))
			}
			for _, s := range c.contains {
				require.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestConvertGzipBody(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(doc))
	zw.Close()
	rec := serve(t, nil, httptest.NewRequest(http.MethodPost, "/api/v1/convert", &buf))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"hello"`)
}

func TestConvertBodyTooLarge(t *testing.T) {
	body := strings.Repeat(`<http://ex/s> <http://ex/p> "hello" .`+"\n", 1000)
	rec := serve(t, &Config{MaxBody: 1024}, httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(body)))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
}

func TestFormats(t *testing.T) {
	rec := serve(t, nil, httptest.NewRequest(http.MethodGet, "/api/v1/formats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Input  []formatInfo `json:"input"`
		Output []formatInfo `json:"output"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Input, 2)
	require.Len(t, resp.Output, 3)
	require.Equal(t, "jsonld", resp.Output[0].Name)
}

func TestHealthAndMetrics(t *testing.T) {
	rec := serve(t, nil, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	serve(t, nil, httptest.NewRequest(http.MethodGet, "/api/v1/formats", nil))
	rec = serve(t, nil, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "rdfsink_http_requests_total")
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/convert", nil)
	req.Header.Set("Origin", "http://app.example")
	rec := serve(t, nil, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
