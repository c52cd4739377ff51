// Package web exposes the solve Driver over HTTP: POST /api/solve takes
// a JSON request and, once the search finishes, returns the same solution
// set the CLI prints as one JSON response;
// GET /api/health reports liveness. This is the optional ambient surface
// the Driver wiring calls for — it wraps the same bounded enumerator, it
// does not change what gets enumerated.
package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Server struct {
	router *mux.Router
}

func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("cube serve: listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
