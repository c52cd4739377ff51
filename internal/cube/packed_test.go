package cube

import (
	"testing"

	"github.com/ehrlich-b/cuberithm/internal/rotation"
)

func TestPackedRoundTrip(t *testing.T) {
	for _, s := range []string{Solved, ccc} {
		c := mustParse(t, s)
		p := ToPacked(c)
		if got := p.ToCubeState(); got != c {
			t.Errorf("packed round trip for %q failed: got %q, want %q", s, got.Render(), s)
		}
	}
}

// TestPackedRotateMatchesStructural is the primary correctness test for
// the packed encoding: every rotation must agree with the reference
// structural CubeState.Rotate.
func TestPackedRotateMatchesStructural(t *testing.T) {
	states := []CubeState{mustParse(t, Solved), mustParse(t, ccc)}
	for _, c := range states {
		p := ToPacked(c)
		for _, m := range rotation.All() {
			wantState := c.Rotate(m)
			gotState := p.Rotate(m).ToCubeState()
			if gotState != wantState {
				t.Errorf("packed rotate(%v) diverges from structural rotate", m)
			}
		}
	}
}

func TestPackedPaddingSlotsAreZero(t *testing.T) {
	p := ToPacked(mustParse(t, Solved))
	if p.getSlot(0) != 0 || p.getSlot(49) != 0 {
		t.Errorf("padding slots not zero: slot0=%d slot49=%d", p.getSlot(0), p.getSlot(49))
	}
}
