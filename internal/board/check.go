package board

import "math/bits"

// PotentialCheckers implements spec.md §4.4 stage 1: OR together, for each
// of the six capture-relevant direction templates aligned at color's king
// square, template & enemy occupancy. The result is a superset of the
// pieces actually threatening the king (e.g. an enemy pawn on the king's
// own rank is "potential" purely because of the horizontal template, even
// though pawns never attack horizontally — stage 2 filters that out).
func PotentialCheckers(b *Board, color Color) CheckerSeq {
	enemyOcc := b.Occupied(color.Other())
	kingSq := b.KingSq[color]

	var hits Bitboard
	for _, tmpl := range AllCaptureTemplates {
		hits |= Align(tmpl, kingSq) & enemyOcc
	}

	var seq CheckerSeq
	for hits != 0 {
		tz := bits.TrailingZeros64(uint64(hits))
		seq.Push(Square(tz))
		hits &= hits - 1
	}
	return seq
}

// InCheck implements spec.md §4.4 stage 2: for each potential checker,
// generate its pseudo-legal moves and test whether the king square is
// among them. checkers is computed once per search node by
// PotentialCheckers and shared across that node's children (recomputed
// only when the king itself moves — see turn.go).
func InCheck(b *Board, color Color, checkers CheckerSeq) bool {
	enemy := color.Other()
	kingSq := b.KingSq[color]

	for i := 0; i < checkers.Len(); i++ {
		sq := checkers.At(i)
		id := b.PieceAt(enemy, sq)
		moves, _, _ := GenerateMoves(b, sq, id, enemy)
		if BitOn(moves, kingSq) {
			return true
		}
	}
	return false
}
