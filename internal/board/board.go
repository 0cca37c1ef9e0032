// FILE: internal/board/board.go
package board

import (
	"fmt"
	"strings"

	"chessai/internal/core"
)

// Board is an immutable 8x8 snapshot. Every method has a value receiver and
// every transformation returns a new Board, so a Board can be shared freely.
type Board struct {
	squares [8][8]core.Piece
}

var backRank = [8]core.PieceType{
	core.Rook, core.Knight, core.Bishop, core.Queen,
	core.King, core.Bishop, core.Knight, core.Rook,
}

// New returns an empty board
func New() Board {
	return Board{}
}

// Initial returns the standard starting position
func Initial() Board {
	var b Board
	for c := 0; c < 8; c++ {
		b.squares[0][c] = core.NewPiece(backRank[c], core.ColorBlack)
		b.squares[1][c] = core.NewPiece(core.Pawn, core.ColorBlack)
		b.squares[6][c] = core.NewPiece(core.Pawn, core.ColorWhite)
		b.squares[7][c] = core.NewPiece(backRank[c], core.ColorWhite)
	}
	return b
}

// At returns the piece on sq. ok is false for empty or off-board squares.
func (b Board) At(sq core.Square) (core.Piece, bool) {
	if !sq.Valid() {
		return core.NoPiece, false
	}
	p := b.squares[sq.Row][sq.Col]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether sq is on the board and unoccupied
func (b Board) IsEmpty(sq core.Square) bool {
	return sq.Valid() && b.squares[sq.Row][sq.Col].IsEmpty()
}

// With returns a copy with p placed on sq
func (b Board) With(sq core.Square, p core.Piece) Board {
	if sq.Valid() {
		b.squares[sq.Row][sq.Col] = p
	}
	return b
}

// Without returns a copy with sq cleared
func (b Board) Without(sq core.Square) Board {
	return b.With(sq, core.NoPiece)
}

// Move returns a copy with the piece on from relocated to to, replacing
// whatever stood there
func (b Board) Move(from, to core.Square) Board {
	p, ok := b.At(from)
	if !ok || !to.Valid() {
		return b
	}
	return b.Without(from).With(to, p)
}

// King locates the first king of color in row-major order
func (b Board) King(color core.Color) (core.Square, bool) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b.squares[r][c].Is(core.King, color) {
				return core.Sq(r, c), true
			}
		}
	}
	return core.NoSquare, false
}

// Pieces lists the squares holding color's pieces in row-major order
func (b Board) Pieces(color core.Color) []core.Square {
	squares := make([]core.Square, 0, 16)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.squares[r][c]
			if !p.IsEmpty() && p.Color == color {
				squares = append(squares, core.Sq(r, c))
			}
		}
	}
	return squares
}

// ToASCII creates an ASCII representation of the board
func (b Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for f := 0; f < 8; f++ {
			piece := b.squares[r][f]
			if piece.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", piece.Letter()))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", 8-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
