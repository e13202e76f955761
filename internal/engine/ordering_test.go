package engine

import (
	"testing"

	"github.com/hailam/chessbot/internal/board"
)

func TestOrderMovesKnightLShape(t *testing.T) {
	b, err := board.ParseFEN("8/8/8/8/3N4/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	want := []board.Square{19, 21, 26, 30, 42, 46, 51, 53}
	moves := OrderMoves(b, nil)
	if moves.Len() != len(want) {
		t.Fatalf("OrderMoves candidate count = %d, want %d", moves.Len(), len(want))
	}
	for i, to := range want {
		if moves.At(i).From != 36 {
			t.Errorf("moves[%d].From = %d, want 36", i, moves.At(i).From)
		}
		if moves.At(i).To != to {
			t.Errorf("moves[%d].To = %d, want %d", i, moves.At(i).To, to)
		}
	}
}

func TestOrderMovesCandidateCount(t *testing.T) {
	b, err := board.ParseFEN("6pk/3p2pp/r7/8/6p1/3Q3q/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := OrderMoves(b, nil)
	if moves.Len() != 27 {
		t.Errorf("OrderMoves candidate count = %d, want 27", moves.Len())
	}
}
