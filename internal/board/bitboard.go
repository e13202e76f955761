// Package board implements the bitboard position model: piece encoding,
// move generation, check detection and turn application.
package board

import "math/bits"

// Bitboard is a 64-bit word with one bit per square; bit b represents
// square b (rank b/8, file b%8).
type Bitboard uint64

// IsolateByte returns bits [8*k .. 8*k+7] of w as a byte — the pattern
// restricted to rank k.
func IsolateByte(w Bitboard, k uint8) uint8 {
	return uint8(w >> (uint(k) * 8))
}

// ShiftWord shifts w by whole rows: n<0 shifts left by |n|, n>0 shifts
// right by n. n is expected to be a multiple of 8 by callers that want
// row motion, but the shift itself is unconstrained.
func ShiftWord(w Bitboard, n int) Bitboard {
	if n < 0 {
		return w << uint(-n)
	}
	return w >> uint(n)
}

// ShiftBytes shifts each of w's eight byte-lanes independently by n bits,
// with no carry between lanes: n<0 shifts each byte left, n>0 shifts each
// byte right. This is what confines file motion to a single rank.
func ShiftBytes(w Bitboard, n int) Bitboard {
	var out Bitboard
	for i := uint8(0); i < 8; i++ {
		cur := IsolateByte(w, i)
		var shifted uint8
		if n < 0 {
			shifted = cur << uint(-n)
		} else {
			shifted = cur >> uint(n)
		}
		out |= Bitboard(shifted) << (uint(i) * 8)
	}
	return out
}

// BitOn reports whether bit k of w is set.
func BitOn(w Bitboard, k Square) bool {
	return w&(1<<uint(k)) != 0
}

// BitsOn appends the set bits of w, in ascending order, to seq. seq's
// fixed capacity (MaxDestinations) bounds how many bits can be collected;
// exceeding it panics (see fixedseq.go).
func BitsOn(w Bitboard, seq *DestSeq) {
	for w != 0 {
		tz := bits.TrailingZeros64(uint64(w))
		seq.Push(Square(tz))
		w &= w - 1
	}
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

func (b Bitboard) String() string {
	out := make([]byte, 0, 64+8)
	for rank := 7; rank >= 0; rank-- {
		row := IsolateByte(b, uint8(rank))
		for file := 7; file >= 0; file-- {
			if row&(1<<uint(file)) != 0 {
				out = append(out, '1')
			} else {
				out = append(out, '0')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
