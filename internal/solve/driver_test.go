package solve

import (
	"strings"
	"testing"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/rotation"
	"github.com/ehrlich-b/cuberithm/internal/solver"
)

func mustParse(t *testing.T, s string) cube.CubeState {
	t.Helper()
	c, err := cube.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return c
}

func TestRunRejectsInvalidRange(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	_, err := Run(Options{Initial: solved, Desired: solved, MinMoves: 3, MaxMoves: 1})
	if err == nil {
		t.Fatal("Run should reject min-moves > max-moves")
	}
}

func TestRunUnionsAcrossLengths(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	target := cube.RotateSequence(solved, []rotation.Move{rotation.MoveR})

	result, err := Run(Options{Initial: solved, Desired: target, MinMoves: 0, MaxMoves: 2})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(result.Solutions) == 0 {
		t.Fatal("expected at least the length-1 solution R")
	}
	for i := 1; i < len(result.Solutions); i++ {
		if !solver.Less(result.Solutions[i-1], result.Solutions[i]) {
			t.Errorf("solutions not strictly ascending at index %d", i)
		}
	}
}

func TestRenderFormat(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	result, err := Run(Options{Initial: solved, Desired: solved, MinMoves: 0, MaxMoves: 0})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	var out strings.Builder
	Render(&out, result)
	rendered := out.String()

	if !strings.HasPrefix(rendered, "Solution 0: ") {
		t.Errorf("Render output does not start with the expected index line: %q", rendered)
	}
	if !strings.Contains(rendered, "\nDone.\n") {
		t.Error("Render output missing 'Done.' marker")
	}
	if !strings.Contains(rendered, "Solutions Found: 1") {
		t.Error("Render output missing solution count")
	}
}
