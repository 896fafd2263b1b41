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

// Package chess contains the value types shared by the game, the engines
// and the board renderer: squares, players, pieces, move records and move
// results.
package chess

import (
	"errors"
	"fmt"
)

// Square represents a square on the chessboard, encoded as file + 8*rank
// with a1 = 0 and h8 = 63. NoSquare is the "none" sentinel.
type Square uint8

// NoSquare represents the absence of a square, for example when no
// en-passant capture is available.
const NoSquare Square = 64

// SquareN is the number of squares on a chessboard.
const SquareN = 64

// BoardSize is the number of files and ranks on a chessboard.
const BoardSize = 8

var ErrInvalidSquare = errors.New("chess: invalid square")

var squareToString = [SquareN]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// NewSquare returns the square on the given file and rank, both of which
// are zero based (file 0 is the a-file, rank 0 is the first rank).
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}

	return Square(rank*BoardSize + file)
}

// ParseSquare parses a square in algebraic notation, like "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("parse square %q: %w", s, ErrInvalidSquare)
	}

	file, rank := int(s[0])-'a', int(s[1])-'1'
	sq := NewSquare(file, rank)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("parse square %q: %w", s, ErrInvalidSquare)
	}

	return sq, nil
}

// IsValid reports whether the square is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// File returns the zero based file of the square.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the zero based rank of the square.
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// FileLabel returns the file letter of the square, 'a' to 'h'.
func (sq Square) FileLabel() string {
	if !sq.IsValid() {
		return "-"
	}

	return squareToString[sq][:1]
}

// RankLabel returns the rank number of the square, "1" to "8".
func (sq Square) RankLabel() string {
	if !sq.IsValid() {
		return "-"
	}

	return squareToString[sq][1:]
}

// String returns the algebraic label of the square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}

	return squareToString[sq]
}
