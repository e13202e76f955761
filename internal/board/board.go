package board

// Starting bitboards and material total, carried over as literal data from
// the design this spec was distilled from — one three-plane encoding per
// color, identical geometry to every other board value.
const (
	startingWhitePlane0 Bitboard = 0x34FF000000000000
	startingWhitePlane1 Bitboard = 0x6E00000000000000
	startingWhitePlane2 Bitboard = 0x9900000000000000

	startingBlackPlane0 Bitboard = 0xFF34
	startingBlackPlane1 Bitboard = 0x6E
	startingBlackPlane2 Bitboard = 0x99
)

// TeamMaterialValue is the material total (point units: P=1,N=3,B=3,R=5,Q=9)
// of one color's pieces at the start of a game.
const TeamMaterialValue = 39

// CastlingRights tracks the four independent castling privileges. Neither
// castling nor promotion moves are ever generated (see DESIGN.md) — these
// fields are decoded and carried through unchanged.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Board is the position value type: two per-color, three-plane piece
// encodings sharing one square geometry, side to move, en-passant target,
// castling rights, material totals and move clocks. It is cheap to copy and
// never mutated once returned — the search clones before every change.
type Board struct {
	Pieces    [2][3]Bitboard
	KingSq    [2]Square
	ToMove    Color
	EnPassant Square // NoSquare when absent
	Castling  CastlingRights
	Material  [2]int

	HalfMoveClock  int
	FullMoveNumber int
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	return &Board{
		Pieces: [2][3]Bitboard{
			White: {startingWhitePlane0, startingWhitePlane1, startingWhitePlane2},
			Black: {startingBlackPlane0, startingBlackPlane1, startingBlackPlane2},
		},
		KingSq:    [2]Square{White: 59, Black: 3},
		ToMove:    White,
		EnPassant: NoSquare,
		Castling:  CastlingRights{true, true, true, true},
		Material:  [2]int{White: TeamMaterialValue, Black: TeamMaterialValue},
		FullMoveNumber: 1,
	}
}

// newEmptyBoard returns a board with no pieces, used by the FEN decoder.
func newEmptyBoard() *Board {
	return &Board{
		KingSq:         [2]Square{NoSquare, NoSquare},
		ToMove:         White,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// PieceAt reads the 3-bit piece id at sq on color c's planes.
func (b *Board) PieceAt(c Color, sq Square) PieceType {
	return pieceIDFromPlanes(&b.Pieces[c], sq)
}

// pieceIDFromPlanes reads the 3-bit piece id at sq directly from a
// three-plane array, independent of any particular Board value — used both
// by Board.PieceAt and by the starting-position lookup move generation
// needs for the pawn double-step eligibility check.
func pieceIDFromPlanes(planes *[3]Bitboard, sq Square) PieceType {
	var id PieceType
	for i := 0; i < 3; i++ {
		if BitOn(planes[i], sq) {
			id |= PieceType(1 << uint(i))
		}
	}
	return id
}

// setPiece writes id at sq on color c's planes (sq is assumed empty there).
func (b *Board) setPiece(c Color, sq Square, id PieceType) {
	planes := &b.Pieces[c]
	for i := 0; i < 3; i++ {
		if id&(1<<uint(i)) != 0 {
			planes[i] |= sq.BB()
		}
	}
}

// removePiece clears whatever id sits at sq on color c's planes.
func (b *Board) removePiece(c Color, sq Square) {
	planes := &b.Pieces[c]
	mask := ^sq.BB()
	for i := 0; i < 3; i++ {
		planes[i] &= mask
	}
}

// Occupied returns the union of color c's three planes.
func (b *Board) Occupied(c Color) Bitboard {
	p := &b.Pieces[c]
	return p[0] | p[1] | p[2]
}

// Copy returns an independent deep-enough copy (Board holds no pointers
// into shared state, so a value copy already suffices; Copy exists so
// callers read intent explicitly, matching the teacher's Position.Copy).
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

func (b *Board) String() string {
	out := make([]byte, 0, 128)
	for rank := 7; rank >= 0; rank-- {
		for file := 7; file >= 0; file-- {
			sq := NewSquare(file, rank)
			id := b.PieceAt(White, sq)
			ch := byte('.')
			if id != Empty {
				ch = id.whiteChar()
			} else if bid := b.PieceAt(Black, sq); bid != Empty {
				ch = bid.blackChar()
			}
			out = append(out, ch, ' ')
		}
		out = append(out, '\n')
	}
	return string(out)
}
