package engine

import (
	"testing"
	"time"

	"github.com/hailam/chessbot/internal/board"
)

func TestFindBestMoveTacticalFork(t *testing.T) {
	b, err := board.ParseFEN("7k/6pp/8/1r6/6b1/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	budget := NewBudget(1 * time.Second)
	from, to, err := FindBestMove(b, budget)
	if err != nil {
		t.Fatalf("FindBestMove: %v", err)
	}
	if from != 33 || to != 19 {
		t.Errorf("FindBestMove = (%d, %d), want (33, 19)", from, to)
	}
}

func TestFindBestMoveOpeningReturnsLegalMove(t *testing.T) {
	b := board.NewBoard()

	budget := NewBudget(1 * time.Second)
	from, to, err := FindBestMove(b, budget)
	if err != nil {
		t.Fatalf("FindBestMove: %v", err)
	}

	checkers := board.PotentialCheckers(b, b.ToMove)
	id := b.PieceAt(b.ToMove, from)
	if id == board.Empty {
		t.Fatalf("FindBestMove chose empty square %d as source", from)
	}
	moveBB, epTarget, ep := board.GenerateMoves(b, from, id, b.ToMove)
	if !board.BitOn(moveBB, to) {
		t.Fatalf("FindBestMove chose (%d, %d), not a pseudo-legal move", from, to)
	}
	resolvedTarget, resolvedEP := board.ResolveEPBits(epTarget, ep, to)
	if _, _, err := board.TakeTurn(b, id, from, to, false, resolvedTarget, resolvedEP, checkers); err != nil {
		t.Fatalf("chosen move failed legality check: %v", err)
	}
}
