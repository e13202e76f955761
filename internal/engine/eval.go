// Package engine implements the search: iterative-deepening alpha-beta with
// PV-move ordering, MVV-LVA capture ordering and a bounded quiescence
// extension, plus the leaf evaluator it calls at search horizon.
package engine

import "github.com/hailam/chessbot/internal/board"

// Evaluate implements spec.md's leaf scorer: a material term (scaled net
// material change from the search root) blended with a piece-square-table
// term, 70/30. materialDelta is signed from the perspective of whichever
// side the caller wants evaluated favorably when positive.
func Evaluate(materialDelta int, b *board.Board) float64 {
	materialValue := f32Scale(float64(materialDelta), -20, 20)
	squareTableValue := pestoValue(b)
	return materialValue*0.7 + squareTableValue*0.3
}

// f32Scale scales input to a 0..1 range given input_min/input_max, with no
// clamp — values outside the range produce values outside 0..1.
func f32Scale(input, inputMin, inputMax float64) float64 {
	return (input - inputMin) / (inputMax - inputMin)
}

// pestoValue implements pesto.rs::get_table_value: blend the midgame and
// endgame piece-square tables by a material-derived weight (1.0 = full
// midgame, 0.0 = full endgame), from the perspective of the side to move.
func pestoValue(b *board.Board) float64 {
	side := b.ToMove
	invert := side == board.Black

	mgWeight := f32Scale(float64(b.Material[side]), 0, float64(board.TeamMaterialValue))

	var totalMg, totalEg float64
	for bit := 0; bit < 64; bit++ {
		sq := board.Square(bit)
		id := b.PieceAt(side, sq)
		if id == board.Empty {
			continue
		}

		idx := convertBitToIndex(sq)
		if invert {
			idx = invertIndex(idx)
		}

		totalMg += float64(midgameTables[id][idx])
		totalEg += float64(endgameTables[id][idx])
	}

	total := totalMg*mgWeight + totalEg*(1-mgWeight)
	return f32Scale(total, -300, 300)
}

// convertBitToIndex maps a bitboard square to the pesto tables' own index
// order (which runs white-perspective, rank 0 at the table's top): the
// tables were authored against a conventional left-to-right file order, the
// opposite of this module's column-7-first bit layout, hence the mirror.
func convertBitToIndex(sq board.Square) int {
	return absInt(sq.File()-7) + sq.Rank()*8
}

// invertIndex flips a midgame/endgame table index to black's perspective.
func invertIndex(idx int) int {
	return absInt(idx - 63)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
