package engine

import (
	"errors"
	"math"

	"github.com/hailam/chessbot/internal/board"
)

// ErrNoBestMove is returned when iterative deepening completes zero depths
// before the deadline elapses — the only failure visible outside the
// search (spec.md §7).
var ErrNoBestMove = errors.New("engine: no depth completed before deadline")

const (
	checkmateWeight    = 5.0
	quiescenceMaxDepth = 3
	minDepth           = 3
	maxDepthExclusive  = 100
)

// FindBestMove implements spec.md §4.6's iterative-deepening driver: run a
// full-window alpha-beta search at depth 3, then 4, and so on up to 99,
// seeding each depth with the previous depth's best move as its PV move.
// If a depth's search observes the deadline has passed, its result is
// discarded and the last fully completed depth's move is returned.
func FindBestMove(b *board.Board, budget Budget) (board.Square, board.Square, error) {
	var pv *ScoredMove

	for depth := minDepth; depth < maxDepthExclusive; depth++ {
		_, move, timedOut := searchNode(b, 0, 0, false, pv, true, 0, depth, false, budget)
		if timedOut {
			break
		}
		m := move
		pv = &m
	}

	if pv == nil {
		return 0, 0, ErrNoBestMove
	}
	return pv.From, pv.To, nil
}

// searchNode is the alpha-beta core: symmetric min/max window value per
// node, PV-seeded and MVV-LVA-ordered children via OrderMoves, a bounded
// quiescence restart at the depth horizon, and checkmate/stalemate
// disambiguation via an up-front in-check test (see DESIGN.md's
// king_was_in_check resolution — the cleaner alternative spec.md §9
// recommends over inferring it from accumulated Check returns).
func searchNode(
	b *board.Board,
	parentValue int,
	parentMinMax float64,
	havePMM bool,
	pv *ScoredMove,
	isMax bool,
	depth, depthLimit int,
	quiescence bool,
	budget Budget,
) (float64, ScoredMove, bool) {
	if budget.Expired() {
		return 0, ScoredMove{}, true
	}

	if depth == depthLimit {
		if quiescence {
			return Evaluate(parentValue, b), ScoredMove{}, false
		}
		return searchNode(b, parentValue, 0, false, nil, isMax, 0, quiescenceMaxDepth, true, budget)
	}

	var minOrMax float64
	var minMaxMultiplier int
	if isMax {
		minOrMax = math.Inf(-1)
		minMaxMultiplier = 1
	} else {
		minOrMax = math.Inf(1)
		minMaxMultiplier = -1
	}

	pmm := parentMinMax
	if !havePMM {
		if isMax {
			pmm = math.Inf(1)
		} else {
			pmm = math.Inf(-1)
		}
	}

	checkers := board.PotentialCheckers(b, b.ToMove)
	sideInCheck := board.InCheck(b, b.ToMove, checkers)
	moves := OrderMoves(b, pv)

	childrenSearched := 0
	var bestMove ScoredMove

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		id := b.PieceAt(b.ToMove, m.From)

		newBoard, captureValue, err := board.TakeTurn(b, id, m.From, m.To, quiescence, m.EPTarget, m.EPCapture, checkers)
		if err != nil {
			continue
		}
		childrenSearched++

		// Capture value is signed exactly once here, from this node's
		// min/max multiplier — see DESIGN.md for why this must not be
		// applied twice.
		signedCapture := captureValue * minMaxMultiplier

		branchValue, _, timedOut := searchNode(newBoard, parentValue+signedCapture, minOrMax, true, nil, !isMax, depth+1, depthLimit, quiescence, budget)
		if timedOut {
			return 0, ScoredMove{}, true
		}

		if (isMax && branchValue > minOrMax) || (!isMax && branchValue < minOrMax) {
			minOrMax = branchValue
			bestMove = m
		}

		if (isMax && minOrMax >= pmm) || (!isMax && minOrMax <= pmm) {
			break
		}
	}

	if childrenSearched == 0 {
		if quiescence {
			return Evaluate(parentValue, b), ScoredMove{}, false
		}
		if sideInCheck {
			return checkmateWeight * float64(-minMaxMultiplier), ScoredMove{}, false
		}
		return Evaluate(parentValue, b), ScoredMove{}, false
	}

	return minOrMax, bestMove, false
}
