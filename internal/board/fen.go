// FILE: internal/board/fen.go
package board

import (
	"fmt"
	"strconv"
	"strings"

	"chessai/internal/core"
)

const (
	StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// ParseFEN reads a six-field FEN record. The castling field is checked for
// syntax only: castling rights follow from king and rook placement.
func ParseFEN(fen string) (Board, core.Context, error) {
	var b Board
	ctx := core.NewContext(core.ColorWhite)

	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return b, ctx, fmt.Errorf("%w: expected 6 parts, got %d", core.ErrInvalidFEN, len(parts))
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return b, ctx, fmt.Errorf("%w: expected 8 ranks", core.ErrInvalidFEN)
	}

	for r := 0; r < 8; r++ {
		file := 0
		for i := 0; i < len(ranks[r]); i++ {
			ch := ranks[r][i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return b, ctx, fmt.Errorf("%w: too many pieces in rank %d", core.ErrInvalidFEN, 8-r)
			}
			p, err := core.PieceFromLetter(ch)
			if err != nil {
				return b, ctx, fmt.Errorf("%w: %v", core.ErrInvalidFEN, err)
			}
			b.squares[r][file] = p
			file++
		}
		if file != 8 {
			return b, ctx, fmt.Errorf("%w: rank %d has %d files", core.ErrInvalidFEN, 8-r, file)
		}
	}

	switch parts[1] {
	case "w":
		ctx.Turn = core.ColorWhite
	case "b":
		ctx.Turn = core.ColorBlack
	default:
		return b, ctx, fmt.Errorf("%w: turn must be 'w' or 'b'", core.ErrInvalidFEN)
	}

	if parts[2] != "-" && strings.Trim(parts[2], "KQkq") != "" {
		return b, ctx, fmt.Errorf("%w: castling field %q", core.ErrInvalidFEN, parts[2])
	}

	if parts[3] != "-" {
		ep, err := core.ParseSquare(parts[3])
		if err != nil {
			return b, ctx, fmt.Errorf("%w: en passant square %q", core.ErrInvalidFEN, parts[3])
		}
		ctx.EnPassant = ep
	}

	if _, err := strconv.Atoi(parts[4]); err != nil {
		return b, ctx, fmt.Errorf("%w: halfmove counter", core.ErrInvalidFEN)
	}
	if _, err := strconv.Atoi(parts[5]); err != nil {
		return b, ctx, fmt.Errorf("%w: fullmove counter", core.ErrInvalidFEN)
	}

	for _, color := range []core.Color{core.ColorWhite, core.ColorBlack} {
		if _, ok := b.King(color); !ok {
			return b, ctx, fmt.Errorf("%w: missing %s king", core.ErrInvalidFEN, strings.ToLower(color.Name()))
		}
	}

	return b, ctx, nil
}

// MustParseFEN is ParseFEN for positions known to be valid
func MustParseFEN(fen string) (Board, core.Context) {
	b, ctx, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b, ctx
}

// EncodeFEN writes b and ctx as FEN. The halfmove clock is always 0 since
// the fifty-move rule is not tracked.
func EncodeFEN(b Board, ctx core.Context, fullmove int) string {
	var sb strings.Builder

	for r := 0; r < 8; r++ {
		empty := 0
		for c := 0; c < 8; c++ {
			p := b.squares[r][c]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(ctx.Turn.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castlingField())
	sb.WriteByte(' ')
	sb.WriteString(ctx.EnPassant.String())

	if fullmove < 1 {
		fullmove = 1
	}
	sb.WriteString(fmt.Sprintf(" 0 %d", fullmove))

	return sb.String()
}

// castlingField derives the FEN castling field from piece placement
func (b Board) castlingField() string {
	var sb strings.Builder
	for _, color := range []core.Color{core.ColorWhite, core.ColorBlack} {
		row := core.HomeRow(color)
		king, _ := b.At(core.Sq(row, 4))
		if !king.Is(core.King, color) {
			continue
		}
		sides := []struct {
			col    int
			letter byte
		}{{7, 'k'}, {0, 'q'}}
		for _, side := range sides {
			rook, _ := b.At(core.Sq(row, side.col))
			if !rook.Is(core.Rook, color) {
				continue
			}
			letter := side.letter
			if color == core.ColorWhite {
				letter -= 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
