package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// getPathID extracts an opaque identifier from the URL path parameters.
// The value is passed through untouched: IDs are compared exactly, and an ID
// that matches no task is left to the service to report.
func getPathID(r *http.Request, paramName string) string {
	return chi.URLParam(r, paramName)
}
