package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"
)

// translations served by the mock API, keyed by langpair then text
var translations = map[string]map[string]string{
	"en-US|fr-FR": {
		"Hello":       "Bonjour",
		"Hello world": "Bonjour le monde",
	},
	"en-US|hi-IN": {
		"Hello": "नमस्ते",
	},
}

type mockResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
		Match          int    `json:"match"`
	} `json:"responseData"`
	ResponseStatus  any    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails,omitempty"`
}

// startMockServer starts a mock MyMemory-compatible translation server
func startMockServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var resp mockResponse

		pair, ok := translations[q.Get("langpair")]
		if !ok {
			resp.ResponseStatus = "403"
			resp.ResponseDetails = "INVALID LANGUAGE PAIR SPECIFIED"
		} else if text, ok := pair[q.Get("q")]; ok {
			resp.ResponseStatus = 200
			resp.ResponseData.TranslatedText = text
			resp.ResponseData.Match = 1
		} else {
			resp.ResponseStatus = 200
			resp.ResponseData.TranslatedText = "[" + q.Get("q") + "]"
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	mux.HandleFunc("/error", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	mux.HandleFunc("/html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>Service unavailable</body></html>"))
	})

	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
	})

	return httptest.NewServer(mux)
}
