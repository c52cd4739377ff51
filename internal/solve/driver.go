// Package solve implements the Driver: it runs a SolveInstance for every
// length in a range, unions the results, and renders them in the external
// output format.
package solve

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/solver"
)

// Options configures a run of the Driver.
type Options struct {
	Initial, Desired cube.CubeState
	MinMoves         int
	MaxMoves         int
	Parallel         bool
	MaxStates        uint64
}

// Result is everything the Driver produces for one run: the ordered,
// deduplicated solution set and how long the search took.
type Result struct {
	Solutions []solver.Solution
	Elapsed   time.Duration
}

// Run iterates MoveCount over [MinMoves, MaxMoves] ascending, building one
// SolveInstance per length and unioning its solutions into a single
// ordered, duplicate-free result.
func Run(opts Options) (Result, error) {
	if opts.MinMoves > opts.MaxMoves {
		return Result{}, fmt.Errorf("solve: min-moves (%d) must not exceed max-moves (%d)", opts.MinMoves, opts.MaxMoves)
	}

	start := time.Now()
	seen := make(map[string]solver.Solution)
	for length := opts.MinMoves; length <= opts.MaxMoves; length++ {
		inst := solver.NewBuilder().
			InitialState(opts.Initial).
			DesiredState(opts.Desired).
			MoveCount(length).
			Parallel(opts.Parallel).
			MaxStates(opts.MaxStates).
			Build()
		inst.Solve()
		for _, sol := range inst.Solutions() {
			seen[renderKey(sol)] = sol
		}
	}

	out := make([]solver.Solution, 0, len(seen))
	for _, sol := range seen {
		out = append(out, sol)
	}
	sort.Slice(out, func(i, j int) bool { return solver.Less(out[i], out[j]) })

	return Result{Solutions: out, Elapsed: time.Since(start)}, nil
}

func renderKey(sol solver.Solution) string {
	var b strings.Builder
	for _, m := range sol {
		b.WriteString(m.String())
		b.WriteByte(' ')
	}
	return b.String()
}

// Render writes the result in the external output format: one indexed
// line per solution, a blank line, "Done.", then elapsed time and count.
func Render(w io.Writer, r Result) {
	for idx, sol := range r.Solutions {
		fmt.Fprintf(w, "Solution %d: ", idx)
		for _, m := range sol {
			fmt.Fprintf(w, "%s ", m)
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "\nDone.\n")
	fmt.Fprintf(w, "Elapsed Time: %.3fs\n", r.Elapsed.Seconds())
	fmt.Fprintf(w, "Solutions Found: %d\n", len(r.Solutions))
}
