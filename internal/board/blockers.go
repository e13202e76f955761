package board

// resolveSliderBlockers implements spec.md §4.3.1: given the piece square,
// whether the template being resolved is the horizontal one, the aligned
// raw move bitboard, and that same bitboard already masked down to fully
// open squares ("unblocked"), produce the corrected sliding bitboard plus
// the nearest blocker square on each side of the piece, so the caller can
// OR enemy occupancy back in at those squares (captures) without also
// permitting capture-through.
func resolveSliderBlockers(piece Square, horizontal bool, moveBB, maskedBB Bitboard) (Bitboard, *Square, *Square) {
	if moveBB == maskedBB {
		return maskedBB, nil, nil
	}

	file, rank := piece.File(), piece.Rank()

	if !horizontal {
		lowerBits, lowerStopRank := walkRanksVertical(rank-1, moveBB, maskedBB, false)
		upperBits, upperStopRank := walkRanksVertical(rank+1, moveBB, maskedBB, true)

		interceptBB := moveBB ^ maskedBB
		return lowerBits | upperBits, blockerFromRank(lowerStopRank, interceptBB), blockerFromRank(upperStopRank, interceptBB)
	}

	maskByte := IsolateByte(maskedBB, uint8(rank))
	lowerByte, lowerStopFile := walkBitsHorizontal(file-1, maskByte, false)
	upperByte, upperStopFile := walkBitsHorizontal(file+1, maskByte, true)

	var lowerBlocker, upperBlocker *Square
	if lowerStopFile >= 0 {
		sq := NewSquare(lowerStopFile, rank)
		lowerBlocker = &sq
	}
	if upperStopFile >= 0 {
		sq := NewSquare(upperStopFile, rank)
		upperBlocker = &sq
	}

	fixed := Bitboard(lowerByte|upperByte) << uint(rank*8)
	return fixed, lowerBlocker, upperBlocker
}

// walkRanksVertical walks ranks outward from rank, including each rank's
// pattern byte while the raw and masked bitboards still agree there; the
// first rank where they differ is the blocked rank. Returns the
// accumulated bits and the rank the walk stopped at (-1 if it ran off the
// board without finding a blocker).
func walkRanksVertical(rank int, moveBB, maskedBB Bitboard, up bool) (Bitboard, int) {
	if rank < 0 || rank > 7 {
		return 0, -1
	}

	moveByte := IsolateByte(moveBB, uint8(rank))
	maskByte := IsolateByte(maskedBB, uint8(rank))
	if moveByte != maskByte {
		return 0, rank
	}

	contribution := Bitboard(maskByte) << uint(rank*8)
	next := rank + 1
	if !up {
		next = rank - 1
	}
	restBits, stopRank := walkRanksVertical(next, moveBB, maskedBB, up)
	return contribution | restBits, stopRank
}

// blockerFromRank resolves the blocker square at stopRank by finding the
// single set bit of interceptBB's rank byte (the file the blocking piece
// sits on).
func blockerFromRank(stopRank int, interceptBB Bitboard) *Square {
	if stopRank < 0 {
		return nil
	}
	b := IsolateByte(interceptBB, uint8(stopRank))
	if b == 0 {
		return nil
	}
	sq := NewSquare(trailingZeroColumn(b), stopRank)
	return &sq
}

// walkBitsHorizontal walks bits outward from file within maskByte (the
// piece's own rank, already masked to open squares), stopping at the
// first closed bit — which is itself the blocker's file. Returns the
// accumulated byte and the file it stopped at (-1 if it ran off the
// board without finding one).
func walkBitsHorizontal(file int, maskByte uint8, up bool) (uint8, int) {
	if file < 0 || file > 7 {
		return 0, -1
	}
	if maskByte&(1<<uint(file)) == 0 {
		return 0, file
	}

	next := file + 1
	if !up {
		next = file - 1
	}
	restByte, stopFile := walkBitsHorizontal(next, maskByte, up)
	return (1 << uint(file)) | restByte, stopFile
}
