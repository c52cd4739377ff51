package cube

import (
	"github.com/ehrlich-b/cuberithm/internal/rotation"
)

// Packed is the alternative 150-bit encoding described by the cube data
// model: 50 three-bit slots packed across three 64-bit words. Slot 0 and
// slot 49 are padding and are always zero;
// slots 1 through 48 each hold one mobile facelet's color code (the six
// face centers are implicit and never stored).
//
// Packed is a plain [3]uint64 value: copying it copies the whole state,
// equality is the built-in array comparison, and it is usable directly as
// a map key. Slot assignment walks the six faces in the same
// top/left/front/right/back/bottom order Parse and Render use, skipping
// each face's center position.
type Packed [3]uint64

var slotFace, slotPos [49]int

func init() {
	slot := 1
	for f := 0; f < 6; f++ {
		for pos := 0; pos < 9; pos++ {
			if pos == 4 {
				continue
			}
			slotFace[slot] = f
			slotPos[slot] = pos
			slot++
		}
	}
}

func (p Packed) getSlot(slot int) uint8 {
	bit := slot * 3
	word := bit / 64
	shift := uint(bit % 64)
	if shift <= 61 {
		return uint8((p[word] >> shift) & 0x7)
	}
	lo := p[word] >> shift
	hi := p[word+1] << (64 - shift)
	return uint8((lo | hi) & 0x7)
}

func (p *Packed) setSlot(slot int, v uint8) {
	bit := slot * 3
	word := bit / 64
	shift := uint(bit % 64)
	mask := uint64(0x7) << shift
	p[word] = (p[word] &^ mask) | (uint64(v) << shift)
	if shift > 61 {
		bitsInFirst := 64 - shift
		bitsInSecond := 3 - bitsInFirst
		maskHi := (uint64(1) << bitsInSecond) - 1
		p[word+1] = (p[word+1] &^ maskHi) | (uint64(v) >> bitsInFirst)
	}
}

// ToPacked packs a structural CubeState into the 150-bit form.
func ToPacked(c CubeState) Packed {
	s := c.Render()
	var p Packed
	for slot := 1; slot <= 48; slot++ {
		ch := s[slotFace[slot]*9+slotPos[slot]]
		clr, _ := colorFromByte(ch) // Render only ever emits valid codes
		p.setSlot(slot, uint8(clr))
	}
	return p
}

var centerByte = [6]byte{'W', 'O', 'G', 'R', 'B', 'Y'}

// ToCubeState unpacks a Packed value back into the structural form.
func (p Packed) ToCubeState() CubeState {
	buf := make([]byte, 54)
	for f := 0; f < 6; f++ {
		buf[f*9+4] = centerByte[f]
	}
	for slot := 1; slot <= 48; slot++ {
		buf[slotFace[slot]*9+slotPos[slot]] = Color(p.getSlot(slot)).byte()
	}
	c, err := Parse(string(buf))
	if err != nil {
		panic("cube: packed state unpacked to an invalid string: " + err.Error())
	}
	return c
}

// Rotate applies a quarter-turn to the packed representation. It is
// implemented by unpacking, rotating the structural form (the
// reference-correct algorithm the rest of the package is built on), and
// repacking — rather than a hand-derived table of 150-bit masks, which
// the design notes allow as long as equivalence with the structural
// rotate holds (it does, by construction) and the cost stays within a
// small constant factor of it.
func (p Packed) Rotate(m rotation.Move) Packed {
	return ToPacked(p.ToCubeState().Rotate(m))
}
