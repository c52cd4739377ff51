package solver

import (
	"testing"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/rotation"
)

func mustParse(t *testing.T, s string) cube.CubeState {
	t.Helper()
	c, err := cube.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return c
}

// TestZeroLengthSolvedToSolved checks that solving a solved state against
// itself at length zero returns exactly the empty solution.
func TestZeroLengthSolvedToSolved(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	inst := NewBuilder().InitialState(solved).DesiredState(solved).MoveCount(0).Build()
	inst.Solve()
	sols := inst.Solutions()
	if len(sols) != 1 || len(sols[0]) != 0 {
		t.Fatalf("solve(solved, solved, 0) = %v, want exactly one empty solution", sols)
	}
}

func TestZeroLengthMismatchIsEmpty(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	scrambled := solved.Rotate(rotation.MoveR)
	inst := NewBuilder().InitialState(solved).DesiredState(scrambled).MoveCount(0).Build()
	inst.Solve()
	if len(inst.Solutions()) != 0 {
		t.Fatalf("solve(solved, R(solved), 0) should be empty, got %v", inst.Solutions())
	}
}

// TestSingleMoveHit checks that solving from a single R turn back to
// solved at length one returns exactly the single move R'.
func TestSingleMoveHit(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	scrambled := solved.Rotate(rotation.MoveR)
	inst := NewBuilder().InitialState(scrambled).DesiredState(solved).MoveCount(1).Build()
	inst.Solve()
	sols := inst.Solutions()
	if len(sols) != 1 || len(sols[0]) != 1 || sols[0][0] != rotation.MoveRp {
		t.Fatalf("solve(R(solved), solved, 1) = %v, want exactly {<R'>}", sols)
	}
}

func TestSingleMoveNoHitOnIdentity(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	inst := NewBuilder().InitialState(solved).DesiredState(solved).MoveCount(1).Build()
	inst.Solve()
	if len(inst.Solutions()) != 0 {
		t.Fatalf("solve(solved, solved, 1) should be empty, got %v", inst.Solutions())
	}
}

// TestSolutionsMatchLengthAndTarget checks that every returned solution
// has the requested length and, applied to the initial state, reaches
// the desired state.
func TestSolutionsMatchLengthAndTarget(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	target := cube.RotateSequence(solved, []rotation.Move{rotation.MoveR, rotation.MoveU})

	for length := 0; length <= 4; length++ {
		inst := NewBuilder().InitialState(solved).DesiredState(target).MoveCount(length).Build()
		inst.Solve()
		for _, sol := range inst.Solutions() {
			if len(sol) != length {
				t.Errorf("length %d: solution %v has length %d", length, sol, len(sol))
			}
			if got := cube.RotateSequence(solved, sol); got != target {
				t.Errorf("length %d: solution %v does not reach target", length, sol)
			}
		}
	}
}

func TestEvenAndOddLengthsBothWork(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	known := []Solution{
		{rotation.MoveR, rotation.MoveU},
		{rotation.MoveR, rotation.MoveU, rotation.MoveFp},
	}
	for _, want := range known {
		target := cube.RotateSequence(solved, want)
		inst := NewBuilder().InitialState(solved).DesiredState(target).MoveCount(len(want)).Build()
		inst.Solve()
		found := false
		for _, sol := range inst.Solutions() {
			if solutionKey(sol) == solutionKey(want) {
				found = true
			}
		}
		if !found {
			t.Errorf("expected to find the known length-%d solution %v", len(want), want)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	solved := mustParse(t, cube.Solved)
	target := cube.RotateSequence(solved, []rotation.Move{rotation.MoveR, rotation.MoveU})

	seq := NewBuilder().InitialState(solved).DesiredState(target).MoveCount(2).Build()
	seq.Solve()

	par := NewBuilder().InitialState(solved).DesiredState(target).MoveCount(2).Parallel(true).Build()
	par.Solve()

	seqSet := map[string]bool{}
	for _, s := range seq.Solutions() {
		seqSet[solutionKey(s)] = true
	}
	parSet := map[string]bool{}
	for _, s := range par.Solutions() {
		parSet[solutionKey(s)] = true
	}
	if len(seqSet) != len(parSet) {
		t.Fatalf("sequential found %d solutions, parallel found %d", len(seqSet), len(parSet))
	}
	for k := range seqSet {
		if !parSet[k] {
			t.Errorf("parallel solve missing solution present in sequential: %v", []byte(k))
		}
	}
}
