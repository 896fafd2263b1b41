package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareLabels(t *testing.T) {
	assert.Equal(t, "a1", Square(0).String())
	assert.Equal(t, "h8", Square(63).String())
	assert.Equal(t, "e4", NewSquare(4, 3).String())
	assert.Equal(t, "-", NoSquare.String())
	assert.Equal(t, "-", NoSquare.FileLabel())
	assert.Equal(t, "-", NoSquare.RankLabel())
	assert.Equal(t, NoSquare, NewSquare(8, 0))
	assert.Equal(t, NoSquare, NewSquare(0, -1))

	for sq := Square(0); sq < SquareN; sq++ {
		parsed, err := ParseSquare(sq.String())
		require.NoError(t, err)
		assert.Equal(t, sq, parsed)
		assert.Equal(t, sq.FileLabel()+sq.RankLabel(), sq.String())
	}
}

func TestParseSquareErrors(t *testing.T) {
	for _, s := range []string{"", "e", "e44", "i1", "a0", "a9", "E4"} {
		_, err := ParseSquare(s)
		assert.ErrorIs(t, err, ErrInvalidSquare, s)
	}
}

func TestParsePiece(t *testing.T) {
	tests := []struct {
		char byte
		want Piece
	}{
		{'P', NewPiece(White, Pawn)},
		{'n', NewPiece(Black, Knight)},
		{'B', NewPiece(White, Bishop)},
		{'r', NewPiece(Black, Rook)},
		{'Q', NewPiece(White, Queen)},
		{'k', NewPiece(Black, King)},
	}

	for _, tt := range tests {
		got, err := ParsePiece(tt.char)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.char, got.Char())
	}

	for _, c := range []byte{'x', 'Z', '1', '/', ' '} {
		_, err := ParsePiece(c)
		assert.ErrorIs(t, err, ErrInvalidPiece, string(c))
	}
}

func TestNoPiece(t *testing.T) {
	assert.True(t, NoPiece.IsEmpty())
	assert.Equal(t, byte(' '), NoPiece.Char())
	assert.False(t, NewPiece(Black, Pawn).IsEmpty())
	assert.False(t, None.IsPlaceable())
	assert.False(t, All.IsPlaceable())

	for _, kind := range []PieceKind{None, Knight, Bishop, Rook, Queen} {
		assert.True(t, kind.IsPromotion(), kind.String())
	}
	for _, kind := range []PieceKind{Pawn, King, All, PieceKind(99)} {
		assert.False(t, kind.IsPromotion(), kind.String())
	}
}

func TestParseUCI(t *testing.T) {
	start, target, promo, err := ParseUCI("e7e8q")
	require.NoError(t, err)
	assert.Equal(t, "e7", start.String())
	assert.Equal(t, "e8", target.String())
	assert.Equal(t, Queen, promo)
	assert.Equal(t, "e7e8q", UCI(start, target, promo))

	start, target, promo, err = ParseUCI("a2a4")
	require.NoError(t, err)
	assert.Equal(t, None, promo)
	assert.Equal(t, "a2a4", UCI(start, target, promo))

	for _, s := range []string{"", "a2", "a2a9", "a2a4k", "a2a4qq"} {
		_, _, _, err := ParseUCI(s)
		assert.ErrorIs(t, err, ErrInvalidMove, s)
	}
}

func TestMoveEquality(t *testing.T) {
	a := Move{Start: NewSquare(0, 1), Target: NewSquare(0, 3), Player: White, Kind: Pawn, CanCastle: true}
	b := a
	assert.True(t, a == b)

	b.EnPassant = true
	assert.False(t, a == b)

	assert.True(t, a.Touches(NewSquare(0, 1)))
	assert.True(t, a.Touches(NewSquare(0, 3)))
	assert.False(t, a.Touches(NewSquare(0, 2)))
	assert.False(t, a.Touches(NoSquare))
	assert.Equal(t, "a2a4", a.String())
}

func TestViewSquare(t *testing.T) {
	assert.Equal(t, "a8", ViewSquare(0, 0, White).String())
	assert.Equal(t, "h1", ViewSquare(7, 7, White).String())
	assert.Equal(t, "h1", ViewSquare(0, 0, Black).String())
	assert.Equal(t, "a8", ViewSquare(7, 7, Black).String())

	// Point reflection between the two perspectives.
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			assert.Equal(t, ViewSquare(file, rank, White), ViewSquare(7-file, 7-rank, Black))
		}
	}
}

func TestParsePlayer(t *testing.T) {
	p, err := ParsePlayer("Black")
	require.NoError(t, err)
	assert.Equal(t, Black, p)
	assert.Equal(t, White, p.Other())

	_, err = ParsePlayer("green")
	assert.ErrorIs(t, err, ErrInvalidPlayer)
}

func TestMoveResultString(t *testing.T) {
	assert.Equal(t, "checkmate", Checkmate.String())
	assert.Equal(t, "repetition warning", RepetitionWarning.String())
	assert.True(t, Stalemate.IsTerminal())
	assert.False(t, Check.IsTerminal())
}
