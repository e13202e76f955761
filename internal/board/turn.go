package board

import "errors"

// ErrCheck is returned when a candidate move leaves the mover's own king in
// check. Callers (the search) must treat this as "skip this child" — it
// never escapes to the external caller of the engine.
var ErrCheck = errors.New("board: move leaves king in check")

// ErrNotCapture is returned in quiescence mode (capturesOnly) when a
// candidate move does not capture anything. Like ErrCheck, this is
// consumed locally by the search.
var ErrNotCapture = errors.New("board: move is not a capture")

// ResolveEPBits narrows a piece's GenerateMoves output down to the
// en-passant state that applies to one specific candidate move: a piece's
// move bitboard can carry a double-step target and an en-passant capture
// pair that belong to different destination squares within that same
// bitboard, so only the move whose destination matches gets them.
func ResolveEPBits(epTarget *Square, ep *EnPassantCapture, to Square) (*Square, *EnPassantCapture) {
	var resolvedTarget *Square
	if epTarget != nil && *epTarget == to {
		t := *epTarget
		resolvedTarget = &t
	}

	var resolvedEP *EnPassantCapture
	if ep != nil && ep.MoveSq == to {
		e := *ep
		resolvedEP = &e
	}

	return resolvedTarget, resolvedEP
}

// TakeTurn implements spec.md §4.5. It clones b, resolves the captured
// piece (honoring an en-passant capture when ep is non-nil), applies the
// move, recomputes the potential-checkers shortlist only if the king moved
// (otherwise reusing the caller's), and rejects the move with ErrCheck if
// it leaves the mover in check. On success it updates clocks, en-passant
// state and side to move, and returns the new board plus the unsigned
// capture value — the search applies its own sign when folding that value
// into its running total (see DESIGN.md's capture-value-sign resolution).
func TakeTurn(
	b *Board,
	id PieceType,
	from, to Square,
	capturesOnly bool,
	epTarget *Square,
	ep *EnPassantCapture,
	checkers CheckerSeq,
) (*Board, int, error) {
	nb := b.Copy()
	mover := nb.ToMove
	enemy := mover.Other()

	var captureID PieceType
	if ep != nil {
		captureID = nb.PieceAt(enemy, ep.CaptureSq)
		nb.removePiece(enemy, ep.CaptureSq)
	} else {
		captureID = nb.PieceAt(enemy, to)
	}

	var captureValue int
	if captureID == Empty {
		if capturesOnly {
			return nil, 0, ErrNotCapture
		}
	} else {
		captureValue = PieceInfoTable[enemy][captureID].Value
		nb.Material[enemy] -= captureValue
	}

	nb.removePiece(mover, from)
	nb.setPiece(mover, to, id)
	nb.removePiece(enemy, to)

	if id == King {
		nb.KingSq[mover] = to
		checkers = PotentialCheckers(nb, mover)
	}

	if InCheck(nb, mover, checkers) {
		return nil, 0, ErrCheck
	}

	if mover == Black {
		nb.FullMoveNumber++
	}

	if epTarget != nil {
		nb.EnPassant = *epTarget
	} else {
		nb.EnPassant = NoSquare
	}

	if captureValue != 0 || id == Pawn {
		nb.HalfMoveClock = 0
	} else {
		nb.HalfMoveClock++
	}

	nb.ToMove = enemy

	return nb, captureValue, nil
}
