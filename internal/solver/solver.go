// Package solver implements SolveInstance: a fixed-length,
// meet-in-the-middle bidirectional depth-first search that enumerates
// every non-redundant move sequence of an exact length transforming one
// cube configuration into another.
package solver

import (
	"sync"

	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/prune"
	"github.com/ehrlich-b/cuberithm/internal/rotation"
)

// SolveInstance enumerates all move sequences of exactly MoveCount moves
// that carry InitialState to DesiredState. Build one with Builder, call
// Solve, then read Solutions. A SolveInstance is meant for one solve; it
// is not safe to call Solve twice on the same value.
type SolveInstance struct {
	initial, desired cube.CubeState
	moveCount        int
	parallel         bool
	maxStates        uint64

	forwardDepth, backwardDepth int
	middleStates                map[cube.CubeState]bool
	solutions                   map[string]Solution
	statesProcessed             uint64
}

// StatesProcessed returns the number of DFS expansions performed across
// both passes and any recursive bridging sub-solves.
func (s *SolveInstance) StatesProcessed() uint64 {
	return s.statesProcessed
}

// Solutions returns the completed solutions found, each of length
// MoveCount, in no particular order (the Driver is responsible for the
// final ordering across lengths).
func (s *SolveInstance) Solutions() []Solution {
	out := make([]Solution, 0, len(s.solutions))
	for _, sol := range s.solutions {
		out = append(out, sol)
	}
	return out
}

// Solve runs the search to completion.
func (s *SolveInstance) Solve() {
	switch s.moveCount {
	case 0:
		if s.initial == s.desired {
			s.record(nil)
		}
		return
	case 1:
		for _, m := range rotation.All() {
			if s.initial.Rotate(m) == s.desired {
				s.record(Solution{m})
			}
		}
		return
	}

	s.forwardDepth = s.moveCount / 2
	s.backwardDepth = s.moveCount - s.forwardDepth
	s.middleStates = make(map[cube.CubeState]bool)

	if s.parallel {
		s.solveForwardParallel()
		s.solveBackwardParallel()
	} else {
		ws := newSearchState()
		ws.forward(s, s.initial, nil)
		s.absorbForward(ws)

		ws = newSearchState()
		ws.backward(s, s.desired, nil)
		s.absorbBackward(ws)
	}
}

func (s *SolveInstance) record(seq Solution) {
	cp := append(Solution(nil), seq...)
	s.solutions[solutionKey(cp)] = cp
}

func (s *SolveInstance) absorbForward(ws *searchState) {
	for st := range ws.middle {
		s.middleStates[st] = true
	}
	s.statesProcessed += ws.statesProcessed
}

func (s *SolveInstance) absorbBackward(ws *searchState) {
	for k, sol := range ws.solutions {
		s.solutions[k] = sol
	}
	s.statesProcessed += ws.statesProcessed
}

// solveForwardParallel spawns one worker per first move of the forward
// pass; each explores its own subtree with a private ancestor stack and
// middle-state set, then results are merged by union. The join here is
// the barrier required between the forward and backward passes: the
// backward pass must not start reading middle states until every forward
// worker has finished writing them.
func (s *SolveInstance) solveForwardParallel() {
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, m := range rotation.All() {
		wg.Add(1)
		go func(first rotation.Move) {
			defer wg.Done()
			ws := newSearchState()
			ws.forward(s, s.initial, []rotation.Move{first})
			mu.Lock()
			s.absorbForward(ws)
			mu.Unlock()
		}(m)
	}
	wg.Wait()
}

func (s *SolveInstance) solveBackwardParallel() {
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, m := range rotation.All() {
		wg.Add(1)
		go func(first rotation.Move) {
			defer wg.Done()
			ws := newSearchState()
			ws.backward(s, s.desired, []rotation.Move{first})
			mu.Lock()
			s.absorbBackward(ws)
			mu.Unlock()
		}(m)
	}
	wg.Wait()
}

// searchState is one DFS worker's private scratch: the ancestor-state
// stack (for cycle avoidance) and the current path, plus whatever it has
// accumulated so far. Passed through recursion as push/pop discipline —
// never cloned per expansion.
type searchState struct {
	ancestors       map[cube.CubeState]bool
	path            []rotation.Move
	middle          map[cube.CubeState]bool
	solutions       map[string]Solution
	statesProcessed uint64
}

func newSearchState() *searchState {
	return &searchState{
		ancestors: make(map[cube.CubeState]bool),
		middle:    make(map[cube.CubeState]bool),
		solutions: make(map[string]Solution),
	}
}

func (ws *searchState) record(seq Solution) {
	cp := append(Solution(nil), seq...)
	ws.solutions[solutionKey(cp)] = cp
}

func (ws *searchState) overBudget(inst *SolveInstance) bool {
	return inst.maxStates > 0 && ws.statesProcessed >= inst.maxStates
}

// branchMoves picks which moves to try at this node: the caller's
// restricted first-move set at the root (used by the parallel workers),
// or the full twelve everywhere else.
func branchMoves(path []rotation.Move, firstMoves []rotation.Move) []rotation.Move {
	if len(path) == 0 && firstMoves != nil {
		return firstMoves
	}
	all := rotation.All()
	return all[:]
}

// forward explores from the initial state down to forwardDepth, recording
// every state reached at that depth into ws.middle.
func (ws *searchState) forward(inst *SolveInstance, state cube.CubeState, firstMoves []rotation.Move) {
	ws.statesProcessed++
	if ws.overBudget(inst) {
		return
	}

	if len(ws.path) == inst.forwardDepth {
		ws.middle[state] = true
		return
	}

	ws.ancestors[state] = true
	for _, m := range branchMoves(ws.path, firstMoves) {
		if prune.IsRedundant(ws.path, m) {
			continue
		}
		next := state.Rotate(m)
		if ws.ancestors[next] {
			continue
		}
		ws.path = append(ws.path, m)
		ws.forward(inst, next, firstMoves)
		ws.path = ws.path[:len(ws.path)-1]
	}
	delete(ws.ancestors, state)
}

// backward explores from the desired state down to backwardDepth. On
// reaching that depth, a hit against inst.middleStates triggers a
// recursive bridging solve of (initial, state, forwardDepth) to
// reconstruct every matching forward half.
func (ws *searchState) backward(inst *SolveInstance, state cube.CubeState, firstMoves []rotation.Move) {
	ws.statesProcessed++
	if ws.overBudget(inst) {
		return
	}

	if len(ws.path) == inst.backwardDepth {
		if !inst.middleStates[state] {
			return
		}
		ws.bridge(inst, state)
		return
	}

	ws.ancestors[state] = true
	for _, m := range branchMoves(ws.path, firstMoves) {
		if prune.IsRedundant(ws.path, m) {
			continue
		}
		next := state.Rotate(m)
		if ws.ancestors[next] {
			continue
		}
		ws.path = append(ws.path, m)
		ws.backward(inst, next, firstMoves)
		ws.path = ws.path[:len(ws.path)-1]
	}
	delete(ws.ancestors, state)
}

// bridge reconstructs every forward half realizing the middle state just
// met, by recursively solving (initial, middle, forwardDepth) — always
// synchronously, regardless of whether the outer solve is parallel.
func (ws *searchState) bridge(inst *SolveInstance, middle cube.CubeState) {
	sub := NewBuilder().
		InitialState(inst.initial).
		DesiredState(middle).
		MoveCount(inst.forwardDepth).
		MaxStates(inst.maxStates).
		Build()
	sub.Solve()
	ws.statesProcessed += sub.StatesProcessed()

	tail := reverseInverse(ws.path)
	for _, half := range sub.Solutions() {
		combined := make(Solution, 0, len(half)+len(tail))
		combined = append(combined, half...)
		combined = append(combined, tail...)
		if prune.RevisitsPath(inst.initial, combined) {
			continue
		}
		ws.record(combined)
	}
}

// reverseInverse turns the backward path (moves applied walking from
// desired toward the middle) into the forward-direction path from the
// middle back to desired: invert each move, then reverse the order.
func reverseInverse(path []rotation.Move) []rotation.Move {
	out := make([]rotation.Move, len(path))
	for i, m := range path {
		out[len(path)-1-i] = m.Inverse()
	}
	return out
}
