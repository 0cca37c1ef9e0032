// FILE: internal/core/piece.go
package core

import (
	"fmt"
	"unicode"
)

type Color byte

const (
	ColorWhite Color = iota + 1
	ColorBlack
)

func (c Color) String() string {
	if c == ColorWhite {
		return "w"
	} else if c == ColorBlack {
		return "b"
	} else {
		return "-"
	}
}

// Name returns the capitalised color name
func (c Color) Name() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return "None"
	}
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// PawnDirection is the row delta of a forward pawn step. Row 0 is rank 8.
func PawnDirection(c Color) int {
	if c == ColorWhite {
		return -1
	}
	return 1
}

// HomeRow is the row of the color's back rank
func HomeRow(c Color) int {
	if c == ColorWhite {
		return 7
	}
	return 0
}

// PawnRow is the row the color's pawns start on
func PawnRow(c Color) int {
	return HomeRow(c) + PawnDirection(c)
}

// PromotionRow is the farthest row from the color's own side
func PromotionRow(c Color) int {
	return HomeRow(OppositeColor(c))
}

type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceLetters = [...]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Letter returns the lowercase FEN letter of the piece type
func (t PieceType) Letter() byte {
	if t < 0 || int(t) >= len(pieceLetters) {
		return '?'
	}
	return pieceLetters[t]
}

// IsPromotionChoice reports whether a pawn may be promoted to t
func (t PieceType) IsPromotionChoice() bool {
	return t == Queen || t == Rook || t == Bishop || t == Knight
}

// ParsePieceType reads a FEN letter in either case
func ParsePieceType(ch byte) (PieceType, error) {
	lower := byte(unicode.ToLower(rune(ch)))
	for t := Pawn; t <= King; t++ {
		if pieceLetters[t] == lower {
			return t, nil
		}
	}
	return NoPieceType, fmt.Errorf("unknown piece letter %q", ch)
}

// Piece is a colored piece. The zero value marks an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

var NoPiece = Piece{}

func NewPiece(t PieceType, c Color) Piece {
	return Piece{Type: t, Color: c}
}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

func (p Piece) Is(t PieceType, c Color) bool {
	return p.Type == t && p.Color == c
}

// Letter returns the FEN letter, uppercase for white
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return 0
	}
	l := p.Type.Letter()
	if p.Color == ColorWhite {
		return byte(unicode.ToUpper(rune(l)))
	}
	return l
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.Name() + " " + p.Type.String()
}

// PieceFromLetter parses a FEN piece letter
func PieceFromLetter(ch byte) (Piece, error) {
	t, err := ParsePieceType(ch)
	if err != nil {
		return NoPiece, err
	}
	c := ColorBlack
	if unicode.IsUpper(rune(ch)) {
		c = ColorWhite
	}
	return NewPiece(t, c), nil
}
