package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/solve"
)

// SolveRequest is the body of POST /api/solve: a 54-character initial and
// desired state, and the length range to search.
type SolveRequest struct {
	Initial  string `json:"initial"`
	Desired  string `json:"desired"`
	MinMoves int    `json:"min_moves"`
	MaxMoves int    `json:"max_moves"`
	Parallel bool   `json:"parallel"`
}

// SolveResponse carries the rendered solution set plus the count and
// elapsed seconds, mirroring the CLI's printed output in structured form.
type SolveResponse struct {
	Solutions      []string `json:"solutions"`
	SolutionsFound int      `json:"solutions_found"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.MinMoves > req.MaxMoves {
		writeError(w, http.StatusBadRequest, "min_moves must not exceed max_moves")
		return
	}

	initial, err := cube.Parse(req.Initial)
	if err != nil {
		writeError(w, http.StatusBadRequest, "initial: "+err.Error())
		return
	}
	desired, err := cube.Parse(req.Desired)
	if err != nil {
		writeError(w, http.StatusBadRequest, "desired: "+err.Error())
		return
	}

	result, err := solve.Run(solve.Options{
		Initial:  initial,
		Desired:  desired,
		MinMoves: req.MinMoves,
		MaxMoves: req.MaxMoves,
		Parallel: req.Parallel,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rendered := make([]string, len(result.Solutions))
	for i, sol := range result.Solutions {
		parts := make([]string, len(sol))
		for j, m := range sol {
			parts[j] = m.String()
		}
		rendered[i] = strings.Join(parts, " ")
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		Solutions:      rendered,
		SolutionsFound: len(rendered),
		ElapsedSeconds: result.Elapsed.Seconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
