package http

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// CORSFunc adds CORS related headers to responses.
func CORSFunc(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	if origin := req.Header.Get("Origin"); origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Accept, Content-Type, Content-Length, Content-Encoding, Accept-Encoding")
	}
}

// CORS wraps a route with CORSFunc.
func CORS(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		CORSFunc(w, req, params)
		h(w, req, params)
	}
}

// HandlePreflight answers CORS preflight requests.
func HandlePreflight(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
	CORSFunc(w, req, params)
	w.WriteHeader(http.StatusNoContent)
}
