package board

import "testing"

func TestParseFENKingOnly(t *testing.T) {
	b, err := ParseFEN("k7/8/8/8/8/8/8/8 w HAha 31 5 20")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if got := b.PieceAt(Black, 7); got != King {
		t.Errorf("PieceAt(Black, 7) = %v, want King", got)
	}
	if b.KingSq[Black] != 7 {
		t.Errorf("KingSq[Black] = %v, want 7", b.KingSq[Black])
	}
	if b.ToMove != White {
		t.Errorf("ToMove = %v, want White", b.ToMove)
	}
	if b.Castling != (CastlingRights{}) {
		t.Errorf("Castling = %+v, want all false", b.Castling)
	}
	if b.EnPassant != 31 {
		t.Errorf("EnPassant = %v, want 31", b.EnPassant)
	}
	if b.HalfMoveClock != 5 {
		t.Errorf("HalfMoveClock = %d, want 5", b.HalfMoveClock)
	}
	if b.FullMoveNumber != 20 {
		t.Errorf("FullMoveNumber = %d, want 20", b.FullMoveNumber)
	}
}

func TestParseFENMixedMaterial(t *testing.T) {
	b, err := ParseFEN("7p/8/8/2B5/8/5P2/8/8 b Kq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if got := b.PieceAt(Black, 0); got != Pawn {
		t.Errorf("PieceAt(Black, 0) = %v, want Pawn", got)
	}
	if got := b.PieceAt(White, 29); got != Bishop {
		t.Errorf("PieceAt(White, 29) = %v, want Bishop", got)
	}
	if got := b.PieceAt(White, 42); got != Pawn {
		t.Errorf("PieceAt(White, 42) = %v, want Pawn", got)
	}
	if b.Material[White] != 4 {
		t.Errorf("Material[White] = %d, want 4", b.Material[White])
	}
	if b.Material[Black] != 1 {
		t.Errorf("Material[Black] = %d, want 1", b.Material[Black])
	}
	if b.ToMove != Black {
		t.Errorf("ToMove = %v, want Black", b.ToMove)
	}
	want := CastlingRights{WhiteKingside: true, BlackQueenside: true}
	if b.Castling != want {
		t.Errorf("Castling = %+v, want %+v", b.Castling, want)
	}
	if b.EnPassant != NoSquare {
		t.Errorf("EnPassant = %v, want NoSquare", b.EnPassant)
	}
	if b.HalfMoveClock != 0 {
		t.Errorf("HalfMoveClock = %d, want 0", b.HalfMoveClock)
	}
	if b.FullMoveNumber != 1 {
		t.Errorf("FullMoveNumber = %d, want 1", b.FullMoveNumber)
	}
}
