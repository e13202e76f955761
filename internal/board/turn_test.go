package board

import (
	"errors"
	"testing"
)

func boardsEqual(t *testing.T, got, want *Board) {
	t.Helper()
	if got.Pieces != want.Pieces {
		t.Errorf("Pieces = %+v, want %+v", got.Pieces, want.Pieces)
	}
	if got.ToMove != want.ToMove {
		t.Errorf("ToMove = %v, want %v", got.ToMove, want.ToMove)
	}
	if got.EnPassant != want.EnPassant {
		t.Errorf("EnPassant = %v, want %v", got.EnPassant, want.EnPassant)
	}
	if got.Castling != want.Castling {
		t.Errorf("Castling = %+v, want %+v", got.Castling, want.Castling)
	}
	if got.Material != want.Material {
		t.Errorf("Material = %+v, want %+v", got.Material, want.Material)
	}
	if got.HalfMoveClock != want.HalfMoveClock {
		t.Errorf("HalfMoveClock = %d, want %d", got.HalfMoveClock, want.HalfMoveClock)
	}
	if got.FullMoveNumber != want.FullMoveNumber {
		t.Errorf("FullMoveNumber = %d, want %d", got.FullMoveNumber, want.FullMoveNumber)
	}
}

func TestTakeTurnCapture(t *testing.T) {
	b, err := ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want, err := ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4N3/4P3/2N5/PPPP1PPP/R1BQKB1R b KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	checkers := PotentialCheckers(b, b.ToMove)
	got, captureValue, err := TakeTurn(b, Knight, 42, 27, false, nil, nil, checkers)
	if err != nil {
		t.Fatalf("TakeTurn: %v", err)
	}
	if captureValue != 1 {
		t.Errorf("captureValue = %d, want 1", captureValue)
	}
	boardsEqual(t, got, want)
}

func TestTakeTurnRejectsSelfCheck(t *testing.T) {
	b, err := ParseFEN("r1bqkb1r/p1pp1pp1/1p3n1p/4n3/6b1/2N5/PPPP1PPP/R1BQK2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	checkers := PotentialCheckers(b, b.ToMove)
	_, _, err = TakeTurn(b, King, 59, 51, false, nil, nil, checkers)
	if !errors.Is(err, ErrCheck) {
		t.Fatalf("err = %v, want ErrCheck", err)
	}
}

func TestTakeTurnEnPassant(t *testing.T) {
	b, err := ParseFEN("rn1qkbnr/p1ppp1pp/bp6/8/5pP1/2N5/PPPPPP1P/R1BQKBNR b KQkq 33 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want, err := ParseFEN("rn1qkbnr/p1ppp1pp/bp6/8/8/2N3p1/PPPPPP1P/R1BQKBNR w KQkq - 0 2")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	checkers := PotentialCheckers(b, b.ToMove)
	ep := &EnPassantCapture{CaptureSq: 33, MoveSq: 41}
	got, captureValue, err := TakeTurn(b, Pawn, 34, 41, false, nil, ep, checkers)
	if err != nil {
		t.Fatalf("TakeTurn: %v", err)
	}
	if captureValue != 1 {
		t.Errorf("captureValue = %d, want 1", captureValue)
	}
	boardsEqual(t, got, want)
}
