// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package http serves document conversion over HTTP.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cayleygraph/rdfsink/clog"
)

const (
	hdrContentType  = "Content-Type"
	hdrAccept       = "Accept"
	contentTypeJSON = "application/json"
)

var mRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rdfsink_http_requests_total",
	Help: "Number of HTTP requests served, by route and status code.",
}, []string{"route", "code"})

// ResponseHandler is a route handler returning the status code it wrote.
type ResponseHandler func(http.ResponseWriter, *http.Request, httprouter.Params) int

// LogRequest logs the start and completion of every request and counts it
// by status code.
func LogRequest(route string, handler ResponseHandler) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		start := time.Now()
		addr := req.Header.Get("X-Real-IP")
		if addr == "" {
			addr = req.Header.Get("X-Forwarded-For")
			if addr == "" {
				addr = req.RemoteAddr
			}
		}
		clog.Infof("started %s %s for %s", req.Method, req.URL.Path, addr)
		code := handler(w, req, params)
		mRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
		clog.Infof("completed %v %s %s in %v", code, http.StatusText(code), req.URL.Path, time.Since(start))
	}
}

func jsonResponse(w http.ResponseWriter, code int, err interface{}) int {
	w.Header().Set(hdrContentType, contentTypeJSON)
	w.WriteHeader(code)
	data, _ := json.Marshal(map[string]string{"error": fmt.Sprint(err)})
	w.Write(data)
	return code
}

// Config is the configuration of the conversion API.
type Config struct {
	// MaxBody limits the size of a request body; zero means no limit.
	MaxBody int64
}

// API serves the conversion endpoints.
type API struct {
	config *Config
}

// NewAPI returns an API with the given configuration.
func NewAPI(cfg *Config) *API {
	if cfg == nil {
		cfg = &Config{}
	}
	return &API{config: cfg}
}

// APIv1 registers the versioned routes on r.
func (api *API) APIv1(r *httprouter.Router) {
	r.POST("/api/v1/convert", CORS(LogRequest("convert", api.ServeV1Convert)))
	r.GET("/api/v1/formats", CORS(LogRequest("formats", api.ServeV1Formats)))
}

// SetupRoutes returns a router serving the API, health checks and metrics.
func SetupRoutes(cfg *Config) *httprouter.Router {
	r := httprouter.New()
	r.OPTIONS("/*path", HandlePreflight)
	NewAPI(cfg).APIv1(r)
	r.GET("/health", HandleHealth)
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}
