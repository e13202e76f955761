package engine

import (
	"sort"

	"github.com/hailam/chessbot/internal/board"
)

// NonCaptureWeight biases quiet moves to the back of the ordering — capture
// candidates are searched first, maximizing alpha-beta cutoffs.
const NonCaptureWeight = -10

// pvScore is pushed onto the PV candidate once enumeration finishes, so it
// sorts to the front regardless of its actual capture value.
const pvScore = 127

// MaxCandidateMoves bounds how many candidate moves one side can have at a
// single search node.
const MaxCandidateMoves = 96

// ScoredMove is one candidate move plus its move-ordering score and the
// en-passant state that applies specifically to it (a piece's move
// bitboard can carry EP state belonging to a different destination).
type ScoredMove struct {
	From, To  board.Square
	Score     int
	EPTarget  *board.Square
	EPCapture *board.EnPassantCapture
}

// CandidateSeq is a fixed-capacity, append-only sequence of scored moves.
type CandidateSeq struct {
	items [MaxCandidateMoves]ScoredMove
	n     int
}

// Push appends m, panicking if the sequence is already at capacity.
func (c *CandidateSeq) Push(m ScoredMove) {
	if c.n == len(c.items) {
		panic("engine: CandidateSeq capacity exceeded")
	}
	c.items[c.n] = m
	c.n++
}

// Len returns the number of moves pushed so far.
func (c *CandidateSeq) Len() int { return c.n }

// At returns the i'th pushed move.
func (c *CandidateSeq) At(i int) ScoredMove { return c.items[i] }

// OrderMoves implements spec.md §4.7: enumerate every pseudo-legal move for
// the side to move, score each by MVV-LVA surrogate (or NonCaptureWeight
// for quiet moves), skip a candidate matching pv during enumeration and
// push it back at the end with the top score, then sort descending with
// ties broken by insertion order.
func OrderMoves(b *board.Board, pv *ScoredMove) CandidateSeq {
	side := b.ToMove
	enemy := side.Other()

	var out CandidateSeq
	for bit := 0; bit < 64; bit++ {
		sq := board.Square(bit)
		id := b.PieceAt(side, sq)
		if id == board.Empty {
			continue
		}
		pieceValue := board.PieceInfoTable[side][id].Value

		moveBB, epTarget, ep := board.GenerateMoves(b, sq, id, side)

		var dests board.DestSeq
		board.BitsOn(moveBB, &dests)

		for i := 0; i < dests.Len(); i++ {
			to := dests.At(i)

			if pv != nil && pv.From == sq && pv.To == to {
				continue
			}

			enemyID := b.PieceAt(enemy, to)
			score := NonCaptureWeight
			if enemyID != board.Empty {
				score = board.PieceInfoTable[enemy][enemyID].Value - pieceValue
			}

			moveEPTarget, moveEP := board.ResolveEPBits(epTarget, ep, to)
			out.Push(ScoredMove{From: sq, To: to, Score: score, EPTarget: moveEPTarget, EPCapture: moveEP})
		}
	}

	if pv != nil {
		seeded := *pv
		seeded.Score = pvScore
		out.Push(seeded)
	}

	items := out.items[:out.n]
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })

	return out
}
