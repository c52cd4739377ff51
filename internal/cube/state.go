// Package cube implements the 3x3x3 cube configuration: parsing and
// rendering the 54-character facelet string, and the rotate operator for
// the twelve quarter-turn moves.
package cube

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/cuberithm/internal/rotation"
)

// CubeState is a full cube configuration: six faces, each a 3x3 grid of
// facelets. It is a plain value type — copying a CubeState copies the
// whole configuration, so Rotate can work on a local copy and return it
// without touching the receiver.
type CubeState struct {
	Top, Left, Front, Right, Back, Bottom Side
}

// Solved is the string form of the solved cube: white on top, orange on
// the left, green on front, red on right, blue on back, yellow on bottom.
const Solved = "WWWWWWWWWOOOOOOOOOGGGGGGGGGRRRRRRRRRBBBBBBBBBYYYYYYYYY"

// faces returns pointers to the six sides in the external string order:
// top, left, front, right, back, bottom.
func (c *CubeState) faces() [6]*Side {
	return [6]*Side{&c.Top, &c.Left, &c.Front, &c.Right, &c.Back, &c.Bottom}
}

// Parse reads the 54-character state string described in the external
// interface: six faces in top/left/front/right/back/bottom order, each
// face's nine characters read left-to-right, bottom-to-top (position 0 is
// the bottom-left facelet, position 8 is the top-right facelet). The
// center facelet of each face must be a recognized color but is otherwise
// ignored: the parsed state always holds the face's own center color.
func Parse(s string) (CubeState, error) {
	if len(s) != 54 {
		return CubeState{}, fmt.Errorf("cube: state must be 54 characters, got %d", len(s))
	}
	var c CubeState
	for i, side := range c.faces() {
		chunk := s[i*9 : i*9+9]
		for pos := 0; pos < 9; pos++ {
			col := pos % 3
			rowFromBottom := pos / 3
			clr, err := colorFromByte(chunk[pos])
			if err != nil {
				return CubeState{}, fmt.Errorf("cube: face %d, position %d: %w", i, pos, err)
			}
			if pos == 4 {
				clr, _ = colorFromByte(centerByte[i])
			}
			side[col][rowFromBottom] = clr
		}
	}
	return c, nil
}

// Render produces the 54-character unwrapped layout described above —
// the inverse of Parse. parse(render(c)) == c for every c that Parse
// returns.
func (c CubeState) Render() string {
	buf := make([]byte, 0, 54)
	for _, side := range [6]Side{c.Top, c.Left, c.Front, c.Right, c.Back, c.Bottom} {
		var chunk [9]byte
		for x := 0; x < 3; x++ {
			for y := 0; y < 3; y++ {
				chunk[y*3+x] = side[x][y].byte()
			}
		}
		buf = append(buf, chunk[:]...)
	}
	return string(buf)
}

// RenderPretty renders the cube as an unfolded net for terminal display,
// six-space indenting the top and bottom face blocks so they line up over
// the front face of the middle band.
func (c CubeState) RenderPretty() string {
	var b strings.Builder
	writeIndented := func(s Side) {
		for y := 2; y >= 0; y-- {
			b.WriteString("      ")
			for x := 0; x < 3; x++ {
				b.WriteByte(s[x][y].byte())
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
	}
	writeIndented(c.Top)
	for y := 2; y >= 0; y-- {
		for _, side := range [4]Side{c.Left, c.Front, c.Right, c.Back} {
			for x := 0; x < 3; x++ {
				b.WriteByte(side[x][y].byte())
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	writeIndented(c.Bottom)
	return b.String()
}

// Rotate applies a single quarter-turn and returns the resulting state,
// leaving c unchanged. Ported directly from the reference rotate
// implementation: the turning face is rotated in place and the three
// adjacent facelet strips on its four neighbors are cycled one quarter.
func (c CubeState) Rotate(m rotation.Move) CubeState {
	switch m {
	case rotation.MoveU:
		c.Top = c.Top.rotateClockwise()
		for x := 0; x < 3; x++ {
			aux := c.Left[x][2]
			c.Left[x][2] = c.Front[x][2]
			c.Front[x][2] = c.Right[x][2]
			c.Right[x][2] = c.Back[x][2]
			c.Back[x][2] = aux
		}
	case rotation.MoveUp:
		c.Top = c.Top.rotateCounterClockwise()
		for x := 0; x < 3; x++ {
			aux := c.Left[x][2]
			c.Left[x][2] = c.Back[x][2]
			c.Back[x][2] = c.Right[x][2]
			c.Right[x][2] = c.Front[x][2]
			c.Front[x][2] = aux
		}
	case rotation.MoveL:
		c.Left = c.Left.rotateClockwise()
		for i := 0; i < 3; i++ {
			aux := c.Top[0][i]
			c.Top[0][i] = c.Back[2][2-i]
			c.Back[2][2-i] = c.Bottom[0][i]
			c.Bottom[0][i] = c.Front[0][i]
			c.Front[0][i] = aux
		}
	case rotation.MoveLp:
		c.Left = c.Left.rotateCounterClockwise()
		for i := 0; i < 3; i++ {
			aux := c.Top[0][i]
			c.Top[0][i] = c.Front[0][i]
			c.Front[0][i] = c.Bottom[0][i]
			c.Bottom[0][i] = c.Back[2][2-i]
			c.Back[2][2-i] = aux
		}
	case rotation.MoveF:
		c.Front = c.Front.rotateClockwise()
		for i := 0; i < 3; i++ {
			aux := c.Top[i][0]
			c.Top[i][0] = c.Left[2][i]
			c.Left[2][i] = c.Bottom[2-i][2]
			c.Bottom[2-i][2] = c.Right[0][2-i]
			c.Right[0][2-i] = aux
		}
	case rotation.MoveFp:
		c.Front = c.Front.rotateCounterClockwise()
		for i := 0; i < 3; i++ {
			aux := c.Top[i][0]
			c.Top[i][0] = c.Right[0][2-i]
			c.Right[0][2-i] = c.Bottom[2-i][2]
			c.Bottom[2-i][2] = c.Left[2][i]
			c.Left[2][i] = aux
		}
	case rotation.MoveR:
		c.Right = c.Right.rotateClockwise()
		for i := 0; i < 3; i++ {
			aux := c.Top[2][i]
			c.Top[2][i] = c.Front[2][i]
			c.Front[2][i] = c.Bottom[2][i]
			c.Bottom[2][i] = c.Back[0][2-i]
			c.Back[0][2-i] = aux
		}
	case rotation.MoveRp:
		c.Right = c.Right.rotateCounterClockwise()
		for i := 0; i < 3; i++ {
			aux := c.Top[2][i]
			c.Top[2][i] = c.Back[0][2-i]
			c.Back[0][2-i] = c.Bottom[2][i]
			c.Bottom[2][i] = c.Front[2][i]
			c.Front[2][i] = aux
		}
	case rotation.MoveB:
		c.Back = c.Back.rotateClockwise()
		for i := 0; i < 3; i++ {
			aux := c.Top[i][2]
			c.Top[i][2] = c.Right[2][2-i]
			c.Right[2][2-i] = c.Bottom[2-i][0]
			c.Bottom[2-i][0] = c.Left[0][i]
			c.Left[0][i] = aux
		}
	case rotation.MoveBp:
		c.Back = c.Back.rotateCounterClockwise()
		for i := 0; i < 3; i++ {
			aux := c.Top[i][2]
			c.Top[i][2] = c.Left[0][i]
			c.Left[0][i] = c.Bottom[2-i][0]
			c.Bottom[2-i][0] = c.Right[2][2-i]
			c.Right[2][2-i] = aux
		}
	case rotation.MoveD:
		c.Bottom = c.Bottom.rotateClockwise()
		for x := 0; x < 3; x++ {
			aux := c.Front[x][0]
			c.Front[x][0] = c.Left[x][0]
			c.Left[x][0] = c.Back[x][0]
			c.Back[x][0] = c.Right[x][0]
			c.Right[x][0] = aux
		}
	case rotation.MoveDp:
		c.Bottom = c.Bottom.rotateCounterClockwise()
		for x := 0; x < 3; x++ {
			aux := c.Front[x][0]
			c.Front[x][0] = c.Right[x][0]
			c.Right[x][0] = c.Back[x][0]
			c.Back[x][0] = c.Left[x][0]
			c.Left[x][0] = aux
		}
	default:
		panic(fmt.Sprintf("cube: invalid move %d", m))
	}
	return c
}

// RotateSequence applies a sequence of moves in order.
func RotateSequence(c CubeState, moves []rotation.Move) CubeState {
	for _, m := range moves {
		c = c.Rotate(m)
	}
	return c
}
