// Package rotation defines the twelve quarter-turn moves of a 3x3x3 cube
// and the relations between them: face, opposite face, and inverse.
package rotation

import "fmt"

// Face identifies one of the six sides of the cube.
type Face int

const (
	U Face = iota
	L
	F
	R
	B
	D
)

func (f Face) String() string {
	return []string{"U", "L", "F", "R", "B", "D"}[f]
}

// Move is one of the twelve quarter-turns: six faces times two directions.
// The zero value is MoveU.
type Move int

const (
	MoveU Move = iota
	MoveUp
	MoveL
	MoveLp
	MoveF
	MoveFp
	MoveR
	MoveRp
	MoveB
	MoveBp
	MoveD
	MoveDp
)

// All returns the twelve moves in their canonical order. This order is the
// tie-breaker used when sequences are compared or emitted.
func All() [12]Move {
	return [12]Move{MoveU, MoveUp, MoveL, MoveLp, MoveF, MoveFp, MoveR, MoveRp, MoveB, MoveBp, MoveD, MoveDp}
}

// Face returns the face a move acts on.
func (m Move) Face() Face {
	switch m {
	case MoveU, MoveUp:
		return U
	case MoveL, MoveLp:
		return L
	case MoveF, MoveFp:
		return F
	case MoveR, MoveRp:
		return R
	case MoveB, MoveBp:
		return B
	case MoveD, MoveDp:
		return D
	default:
		panic(fmt.Sprintf("rotation: invalid move %d", m))
	}
}

// OppositeFace returns the face across the cube from the one m acts on:
// U<->D, L<->R, F<->B.
func (m Move) OppositeFace() Face {
	switch m.Face() {
	case U:
		return D
	case D:
		return U
	case L:
		return R
	case R:
		return L
	case F:
		return B
	case B:
		return F
	default:
		panic("rotation: unreachable face")
	}
}

// Clockwise reports whether m turns its face clockwise (as opposed to prime).
func (m Move) Clockwise() bool {
	return m%2 == 0
}

// Inverse flips the orientation bit, leaving the face unchanged.
func (m Move) Inverse() Move {
	if m.Clockwise() {
		return m + 1
	}
	return m - 1
}

func (m Move) String() string {
	switch m {
	case MoveU:
		return "U"
	case MoveUp:
		return "U'"
	case MoveL:
		return "L"
	case MoveLp:
		return "L'"
	case MoveF:
		return "F"
	case MoveFp:
		return "F'"
	case MoveR:
		return "R"
	case MoveRp:
		return "R'"
	case MoveB:
		return "B"
	case MoveBp:
		return "B'"
	case MoveD:
		return "D"
	case MoveDp:
		return "D'"
	default:
		return fmt.Sprintf("?(%d)", int(m))
	}
}

// Parse recognizes a single move in canonical notation: a face letter
// optionally followed by a prime (U, U', L, L', ...).
func Parse(s string) (Move, error) {
	for _, m := range All() {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("rotation: unrecognized move %q", s)
}

// ParseSequence splits a space-separated scramble string into moves.
func ParseSequence(s string) ([]Move, error) {
	var moves []Move
	field := ""
	flush := func() error {
		if field == "" {
			return nil
		}
		m, err := Parse(field)
		if err != nil {
			return err
		}
		moves = append(moves, m)
		field = ""
		return nil
	}
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		field += string(r)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return moves, nil
}
