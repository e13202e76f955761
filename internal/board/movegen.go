package board

import "math/bits"

// EnPassantCapture pairs the square of the enemy pawn captured en passant
// with the square the capturing pawn lands on.
type EnPassantCapture struct {
	CaptureSq Square
	MoveSq    Square
}

var startingPlanes = [2][3]Bitboard{
	White: {startingWhitePlane0, startingWhitePlane1, startingWhitePlane2},
	Black: {startingBlackPlane0, startingBlackPlane1, startingBlackPlane2},
}

// GenerateMoves implements spec.md §4.3: the pseudo-legal move bitboard for
// the piece of id and color sitting at sq, plus an optional en-passant
// double-step target and an optional en-passant capture pair. It does not
// care whose turn it is — check detection calls it for the side NOT to
// move, to test whether a candidate attacker threatens the king.
func GenerateMoves(b *Board, sq Square, id PieceType, color Color) (Bitboard, *Square, *EnPassantCapture) {
	info := &PieceInfoTable[color][id]
	friendlyOcc := b.Occupied(color)
	enemyOcc := b.Occupied(color.Other())

	var out Bitboard
	var epTarget *Square

	if info.PawnDoubleMove != nil && pieceIDFromPlanes(&startingPlanes[color], sq) == id {
		moveBB := Align(*info.PawnDoubleMove, sq)
		unblocked := moveBB ^ ((moveBB & friendlyOcc) | (moveBB & enemyOcc))
		if unblocked == moveBB {
			out |= moveBB
			t := epTargetFromBitboard(moveBB, color)
			epTarget = &t
		}
	}

	for _, tmpl := range info.Directions {
		moveBB := Align(tmpl, sq)
		friendlyHits := moveBB & friendlyOcc
		enemyHits := moveBB & enemyOcc
		unblocked := moveBB ^ (friendlyHits | enemyHits)

		if !info.Sliding {
			if info.PawnCapture == nil {
				out |= moveBB ^ friendlyHits
			} else {
				out |= unblocked
				out |= enemyOcc & Align(*info.PawnCapture, sq)
			}
			continue
		}

		horizontal := tmpl.Mode == ShiftStandard
		fixed, lowerBlocker, upperBlocker := resolveSliderBlockers(sq, horizontal, moveBB, unblocked)
		out |= fixed

		var cutoff Bitboard
		if lowerBlocker != nil {
			cutoff |= lowerBlocker.BB()
		}
		if upperBlocker != nil {
			cutoff |= upperBlocker.BB()
		}
		out |= enemyOcc & cutoff
	}

	ep := enPassantCapture(b, color, sq, id)
	if ep != nil {
		out |= ep.MoveSq.BB()
	}

	return out, epTarget, ep
}

// epTargetFromBitboard derives the en-passant target from a pawn's aligned
// double-step bitboard (which has exactly two bits set, the single-step and
// double-step destinations): the trailing-zero index for White, 63 minus
// the leading-zero index for Black. Either way this is the double-step
// destination, the square the pawn lands on, which is where
// enPassantCapture later looks for the pawn to capture.
func epTargetFromBitboard(moveBB Bitboard, color Color) Square {
	if color == White {
		return Square(bits.TrailingZeros64(uint64(moveBB)))
	}
	return Square(63 - bits.LeadingZeros64(uint64(moveBB)))
}

// enPassantCapture implements spec.md §4.3 step 5.
func enPassantCapture(b *Board, color Color, sq Square, id PieceType) *EnPassantCapture {
	if id != Pawn || b.EnPassant == NoSquare {
		return nil
	}

	target := b.EnPassant
	if absInt(int(sq)-int(target)) > 1 {
		return nil
	}

	enemy := color.Other()
	if b.PieceAt(enemy, target) != Pawn {
		return nil
	}

	var moveSq Square
	if color == White {
		moveSq = target - 8
	} else {
		moveSq = target + 8
	}

	if b.PieceAt(color, moveSq) != Empty || b.PieceAt(enemy, moveSq) != Empty {
		return nil
	}

	return &EnPassantCapture{CaptureSq: target, MoveSq: moveSq}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
