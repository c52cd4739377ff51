package cube

import (
	"testing"

	"github.com/ehrlich-b/cuberithm/internal/rotation"
)

// ccc is the scramble fixture used throughout the scenario checks below.
const ccc = "RWGRWWRRRYOBOOBBBBWWWWGGWGRGGGRRGWRGYBOYBBYYYBYOYYOOOO"

func mustParse(t *testing.T, s string) CubeState {
	t.Helper()
	c, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return c
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{Solved, ccc} {
		c := mustParse(t, s)
		if got := c.Render(); got != s {
			t.Errorf("Render() = %q, want %q", got, s)
		}
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	if _, err := Parse("WWW"); err == nil {
		t.Error("Parse of a short string should fail")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	bad := "X" + Solved[1:]
	if _, err := Parse(bad); err == nil {
		t.Error("Parse of an unrecognized color should fail")
	}
}

func TestRotateU(t *testing.T) {
	c := mustParse(t, ccc)
	want := "GWRWWRRRRYOBOOBWGRWWWWGGWRGGGGRRGYYYYBOYBBBBBBYOYYOOOO"
	if got := c.Rotate(rotation.MoveU).Render(); got != want {
		t.Errorf("rotate(ccc, U) = %q, want %q", got, want)
	}
}

func TestRotateUPrime(t *testing.T) {
	c := mustParse(t, ccc)
	want := "RRRRWWRWGYOBOOBYYYWWWWGGBBBGGGRRGWGRYBOYBBWRGBYOYYOOOO"
	if got := c.Rotate(rotation.MoveUp).Render(); got != want {
		t.Errorf("rotate(ccc, U') = %q, want %q", got, want)
	}
}

func TestRotateF(t *testing.T) {
	c := mustParse(t, ccc)
	want := "BBBRWWRRRYOOOOOBBOWGRWGGWWWGGGWRGRRGYBOYBBYYYBYOYYOGRW"
	if got := c.Rotate(rotation.MoveF).Render(); got != want {
		t.Errorf("rotate(ccc, F) = %q, want %q", got, want)
	}
}

func TestRotateSolvedU(t *testing.T) {
	c := mustParse(t, Solved)
	want := "WWWWWWWWWOOOOOOGGGGGGGGGRRRRRRRRRBBBBBBBBBOOOYYYYYYYYY"
	if got := c.Rotate(rotation.MoveU).Render(); got != want {
		t.Errorf("rotate(solved, U) = %q, want %q", got, want)
	}
}

// TestInverseIsIdentity checks that applying a move and then its inverse
// returns to the original state: rotate(rotate(c, m), inverse(m)) == c.
func TestInverseIsIdentity(t *testing.T) {
	states := []CubeState{mustParse(t, Solved), mustParse(t, ccc)}
	for _, c := range states {
		for _, m := range rotation.All() {
			got := c.Rotate(m).Rotate(m.Inverse())
			if got != c {
				t.Errorf("rotate(rotate(c, %v), %v) != c", m, m.Inverse())
			}
		}
	}
}

// TestFourQuarterTurnsRestoreFace checks that four quarter-turns of the
// same move restore the original state.
func TestFourQuarterTurnsRestoreFace(t *testing.T) {
	states := []CubeState{mustParse(t, Solved), mustParse(t, ccc)}
	for _, c := range states {
		for _, m := range rotation.All() {
			got := c
			for i := 0; i < 4; i++ {
				got = got.Rotate(m)
			}
			if got != c {
				t.Errorf("rotate^4(c, %v) != c", m)
			}
		}
	}
}

func TestRotateSequenceAppliesInOrder(t *testing.T) {
	c := mustParse(t, Solved)
	moves, err := rotation.ParseSequence("R U R' U'")
	if err != nil {
		t.Fatalf("ParseSequence error: %v", err)
	}
	want := c
	for _, m := range moves {
		want = want.Rotate(m)
	}
	if got := RotateSequence(c, moves); got != want {
		t.Errorf("RotateSequence result differs from manual fold")
	}
}
