package testutils

import (
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Get("/{userID}/leagues/nfl/{season}", userLeaguesHandler)
			r.Get("/{username}", sleeperUserHandler)
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "sleeperuser" {
		serveJSON(w, `{"user_id": "12345678", "username": "sleeperuser"}`)
	} else {
		// requesting a user that doesn't exist returns a 200 with "null" as the response body
		serveJSON(w, "null")
	}
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	season := chi.URLParam(r, "season")

	if userID == "12345678" && season == "2024" {
		serveJSON(w, `[
			{"league_id": "924039165950484480", "name": "Footclan & Friends Dynasty", "season": "2024", "sport": "nfl"},
			{"league_id": "1005178517580746753", "name": "The Megalabowl", "season": "2024", "sport": "nfl"}
		]`)
	} else {
		serveJSON(w, "[]")
	}
}

func serveJSON(w http.ResponseWriter, body string) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
