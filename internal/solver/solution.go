package solver

import "github.com/ehrlich-b/cuberithm/internal/rotation"

// Solution is a finite sequence of moves, in application order.
type Solution []rotation.Move

// Less orders solutions lexicographically by the canonical Move order; a
// sequence that is a proper prefix of another sorts before it.
func Less(a, b Solution) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func solutionKey(seq Solution) string {
	b := make([]byte, len(seq))
	for i, m := range seq {
		b[i] = byte(m)
	}
	return string(b)
}
