// Package prune detects redundant move extensions of a partial sequence
// and redundant completed sequences, so the solver never emits a sequence
// that could trivially collapse to a shorter one.
package prune

import (
	"github.com/ehrlich-b/cuberithm/internal/cube"
	"github.com/ehrlich-b/cuberithm/internal/rotation"
)

// sign returns +1 for a clockwise move and -1 for its prime.
func sign(m rotation.Move) int {
	if m.Clockwise() {
		return 1
	}
	return -1
}

// IsRedundant reports whether appending m to path introduces an obvious
// redundancy. It walks path from right to left collecting a trailing
// window of moves that share m's face or its opposite face, stopping at
// the first move outside that set, then classifies every move in that
// window plus m by whether it acts on m's face (the "f" class) or the
// opposite face (the "o" class). A class with more than two quarter-turns
// collapses to a single prime turn (or cancels entirely); a class whose
// signed sum disagrees with its count contains a move and its own
// inverse separated only by commuting moves on the other face. Either
// condition, in either class, makes the extension redundant.
//
// Same-face and opposite-face moves are pooled into one accounting pass
// because opposite faces commute freely — U and D can interleave in any
// order without changing the result, so three U's with a D between them
// are just as redundant as three U's in a row.
func IsRedundant(path []rotation.Move, m rotation.Move) bool {
	face := m.Face()
	opposite := m.OppositeFace()

	fTot, oTot := 0, 0
	fNet, oNet := 0, 0
	classify := func(mv rotation.Move) bool {
		switch mv.Face() {
		case face:
			fTot++
			fNet += sign(mv)
			return true
		case opposite:
			oTot++
			oNet += sign(mv)
			return true
		default:
			return false
		}
	}

	for i := len(path) - 1; i >= 0; i-- {
		if !classify(path[i]) {
			break
		}
	}
	classify(m)

	if fTot > 2 || oTot > 2 {
		return true
	}
	if fTot > 0 && abs(fNet) != fTot {
		return true
	}
	if oTot > 0 && abs(oNet) != oTot {
		return true
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RevisitsPath reports whether replaying seq from start ever returns to a
// configuration it has already passed through — the path-level check
// applied to completed candidate solutions at emission time.
func RevisitsPath(start cube.CubeState, seq []rotation.Move) bool {
	seen := map[cube.CubeState]bool{start: true}
	state := start
	for _, m := range seq {
		state = state.Rotate(m)
		if seen[state] {
			return true
		}
		seen[state] = true
	}
	return false
}
