package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the starting position in this decoder's near-standard
// notation (en-passant field "-" since none is set).
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN decodes a near-standard FEN string with one deviation: the
// en-passant field is a raw decimal square index (0..63) rather than an
// algebraic pair, per spec.md §6. Fields are space-separated: piece layout,
// side to move, castling rights, EP target, half-move clock, full-move
// number. The layout's ranks are separated by '/', each rank read
// left-to-right corresponding to decreasing file index (column 7 first).
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("board: ParseFEN: expected 6 fields, got %d", len(fields))
	}

	b := newEmptyBoard()
	if err := parsePiecePlacement(b, fields[0]); err != nil {
		return nil, fmt.Errorf("board: ParseFEN: %w", err)
	}

	switch fields[1] {
	case "w":
		b.ToMove = White
	case "b":
		b.ToMove = Black
	default:
		return nil, fmt.Errorf("board: ParseFEN: invalid side to move %q", fields[1])
	}

	parseCastlingRights(b, fields[2])

	if fields[3] == "-" {
		b.EnPassant = NoSquare
	} else {
		n, err := strconv.Atoi(fields[3])
		if err != nil || n < 0 || n > 63 {
			return nil, fmt.Errorf("board: ParseFEN: invalid en-passant target %q", fields[3])
		}
		b.EnPassant = Square(n)
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("board: ParseFEN: invalid half-move clock %q", fields[4])
	}
	b.HalfMoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("board: ParseFEN: invalid full-move number %q", fields[5])
	}
	b.FullMoveNumber = full

	return b, nil
}

// parsePiecePlacement walks the layout field exactly as the design this
// decoder was ported from does: each rank starts its bit counter at
// rank*8+7 and decrements per character, so the first character of a rank
// is file 7, the last is file 0.
func parsePiecePlacement(b *Board, layout string) error {
	rank := 0
	bit := 7

	for _, c := range layout {
		if c == '/' {
			continue
		}

		sq := Square(rank*8 + bit)

		if c == King.whiteCharRune() {
			b.KingSq[White] = sq
		} else if c == King.blackCharRune() {
			b.KingSq[Black] = sq
		}

		skip := 1
		if n, ok := digitValue(c); ok {
			skip = n
		} else if id, color, ok := pieceFromChar(c); ok {
			b.setPiece(color, sq, id)
			b.Material[color] += PieceInfoTable[color][id].Value
		} else {
			return fmt.Errorf("unrecognized FEN character %q", c)
		}

		for i := 0; i < skip; i++ {
			if bit == 0 {
				rank++
				bit = 7
			} else {
				bit--
			}
		}
	}

	return nil
}

func digitValue(c rune) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}

func pieceFromChar(c rune) (PieceType, Color, bool) {
	for id := Pawn; id <= King; id++ {
		if rune(id.whiteChar()) == c {
			return id, White, true
		}
		if rune(id.blackChar()) == c {
			return id, Black, true
		}
	}
	return Empty, White, false
}

func (pt PieceType) whiteCharRune() rune { return rune(pt.whiteChar()) }
func (pt PieceType) blackCharRune() rune { return rune(pt.blackChar()) }

func parseCastlingRights(b *Board, field string) {
	if field == "-" {
		return
	}
	for _, c := range field {
		switch c {
		case 'K':
			b.Castling.WhiteKingside = true
		case 'Q':
			b.Castling.WhiteQueenside = true
		case 'k':
			b.Castling.BlackKingside = true
		case 'q':
			b.Castling.BlackQueenside = true
		}
	}
}
