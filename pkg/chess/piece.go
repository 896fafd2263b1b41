// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chess

import (
	"errors"
	"fmt"
	"strings"
)

// Player represents one of the two sides of a chess game.
type Player uint8

const (
	White Player = iota
	Black
)

// PlayerN is the number of players.
const PlayerN = 2

var ErrInvalidPlayer = errors.New("chess: invalid player")

// ParsePlayer parses a player name. It accepts "white", "w", "black" and
// "b" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	default:
		return White, fmt.Errorf("parse player %q: %w", s, ErrInvalidPlayer)
	}
}

// Other returns the opponent of the player.
func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// PieceKind represents the type of a chess piece, irrespective of color.
// None and All are sentinels which never describe a placed piece.
type PieceKind uint8

const (
	None PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	All
)

var kindToString = [...]string{
	None:   "none",
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
	All:    "all",
}

// kindToChar holds the uppercase (white) notation character of every kind.
const kindToChar = " PNBRQK "

func (kind PieceKind) String() string {
	if int(kind) >= len(kindToString) {
		return "unknown"
	}

	return kindToString[kind]
}

// IsPlaceable reports whether the kind describes an actual chess piece.
func (kind PieceKind) IsPlaceable() bool {
	return kind > None && kind < All
}

// IsPromotion reports whether the kind is a valid promotion hint. None
// means no promotion was asked for.
func (kind PieceKind) IsPromotion() bool {
	return kind == None || (kind >= Knight && kind <= Queen)
}

// ParsePromotion parses a lowercase promotion letter ('n', 'b', 'r', 'q').
func ParsePromotion(c byte) (PieceKind, error) {
	switch c {
	case 'n':
		return Knight, nil
	case 'b':
		return Bishop, nil
	case 'r':
		return Rook, nil
	case 'q':
		return Queen, nil
	default:
		return None, fmt.Errorf("parse promotion %q: %w", c, ErrInvalidPiece)
	}
}

// Piece is a colored chess piece. The zero value is NoPiece.
type Piece struct {
	Color Player
	Kind  PieceKind
}

// NoPiece represents an empty square.
var NoPiece = Piece{}

var ErrInvalidPiece = errors.New("chess: invalid piece")

// NewPiece returns a piece of the given color and kind.
func NewPiece(color Player, kind PieceKind) Piece {
	return Piece{Color: color, Kind: kind}
}

// ParsePiece parses a single piece character in FEN notation. Uppercase
// characters are white pieces, lowercase characters are black pieces.
func ParsePiece(c byte) (Piece, error) {
	color := White
	upper := c
	if c >= 'a' && c <= 'z' {
		color = Black
		upper = c - 'a' + 'A'
	}

	for kind := Pawn; kind <= King; kind++ {
		if kindToChar[kind] == upper {
			return NewPiece(color, kind), nil
		}
	}

	return NoPiece, fmt.Errorf("parse piece %q: %w", c, ErrInvalidPiece)
}

// IsEmpty reports whether the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return !p.Kind.IsPlaceable()
}

// Char returns the FEN character of the piece, or ' ' for NoPiece.
func (p Piece) Char() byte {
	if p.IsEmpty() {
		return ' '
	}

	c := kindToChar[p.Kind]
	if p.Color == Black {
		c = c - 'A' + 'a'
	}

	return c
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}

	return p.Color.String() + " " + p.Kind.String()
}

// CastleSide is the side of the board a king castles towards.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

func (side CastleSide) String() string {
	if side == KingSide {
		return "king-side"
	}

	return "queen-side"
}
