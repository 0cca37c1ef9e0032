// FILE: internal/core/square.go
package core

import "fmt"

// Square addresses the board by row and column, both in [0,7].
// Row 0 is rank 8, column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent optional square
var NoSquare = Square{Row: -1, Col: -1}

func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Offset returns the square shifted by the given deltas, which may be off board
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// Index returns the linear index 0..63
func (s Square) Index() int {
	return s.Row*8 + s.Col
}

// SquareAt is the inverse of Index
func SquareAt(index int) Square {
	return Square{Row: index / 8, Col: index % 8}
}

// String returns coordinate form, e.g. "e2", or "-" when invalid
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.Col, '8'-s.Row)
}

// ParseSquare reads coordinate form such as "e2"
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidMove, str)
	}
	if str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return NoSquare, fmt.Errorf("%w: square %q", ErrInvalidMove, str)
	}
	return Square{Row: int('8' - str[1]), Col: int(str[0] - 'a')}, nil
}

type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove reads a coordinate move such as "e2e4" or "e7e8q".
// The optional fifth character selects a promotion piece.
func ParseMove(str string) (Move, PieceType, error) {
	if len(str) < 4 || len(str) > 5 {
		return Move{}, NoPieceType, fmt.Errorf("%w: %q (expected e.g. e2e4 or e7e8q)", ErrInvalidMove, str)
	}

	from, err := ParseSquare(str[0:2])
	if err != nil {
		return Move{}, NoPieceType, err
	}
	to, err := ParseSquare(str[2:4])
	if err != nil {
		return Move{}, NoPieceType, err
	}

	promotion := NoPieceType
	if len(str) == 5 {
		switch str[4] {
		case 'q':
			promotion = Queen
		case 'r':
			promotion = Rook
		case 'b':
			promotion = Bishop
		case 'n':
			promotion = Knight
		default:
			return Move{}, NoPieceType, fmt.Errorf("%w: promotion piece %q", ErrInvalidMove, str[4])
		}
	}

	return Move{From: from, To: to}, promotion, nil
}
