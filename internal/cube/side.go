package cube

// Side is one face's 3x3 grid of facelets. Indices are not row/column in
// the screen sense; rotateClockwise/rotateCounterClockwise below define the
// only operations that care about the indexing, and CubeState.Rotate uses
// them consistently with Parse/Render.
type Side [3][3]Color

// rotateClockwise turns a face 90 degrees clockwise in isolation (it does
// not touch the four adjacent side-rings; CubeState.Rotate handles those).
//
// Derived from the complex-plane rotation rot(x, y) = (y, 2-x): rotating a
// point one quarter turn clockwise about the face center at (1, 1).
func (s Side) rotateClockwise() Side {
	var out Side
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			out[y][2-x] = s[x][y]
		}
	}
	return out
}

// rotateCounterClockwise is the inverse: rot'(x, y) = (2-y, x).
func (s Side) rotateCounterClockwise() Side {
	var out Side
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			out[2-y][x] = s[x][y]
		}
	}
	return out
}
