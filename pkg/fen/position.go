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

package fen

import (
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/chessgame/pkg/chess"
)

// Position is a FEN string split into its six fields.
type Position struct {
	Layout    string
	Turn      chess.Player
	Castling  string
	EnPassant chess.Square

	HalfMove, FullMove int
}

// Parse splits a FEN string into its fields and validates them. The
// board-layout field is checked by reconstructing its grid.
func Parse(position string) (Position, error) {
	fields := strings.Fields(position)
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("%w: %d fields in %q", ErrMalformedPosition, len(fields), position)
	}

	if _, err := ParseGrid(fields[0], chess.White); err != nil {
		return Position{}, err
	}

	pos := Position{Layout: fields[0], Castling: fields[2], EnPassant: chess.NoSquare}

	switch fields[1] {
	case "w":
		pos.Turn = chess.White
	case "b":
		pos.Turn = chess.Black
	default:
		return Position{}, fmt.Errorf("%w: side to move %q", ErrMalformedPosition, fields[1])
	}

	if strings.Trim(pos.Castling, "KQkq-") != "" {
		return Position{}, fmt.Errorf("%w: castling rights %q", ErrMalformedPosition, pos.Castling)
	}

	if fields[3] != "-" {
		sq, err := chess.ParseSquare(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("%w: en-passant square %q", ErrMalformedPosition, fields[3])
		}

		pos.EnPassant = sq
	}

	var err error
	if pos.HalfMove, err = strconv.Atoi(fields[4]); err != nil {
		return Position{}, fmt.Errorf("%w: half-move clock %q", ErrMalformedPosition, fields[4])
	}

	if pos.FullMove, err = strconv.Atoi(fields[5]); err != nil {
		return Position{}, fmt.Errorf("%w: full-move number %q", ErrMalformedPosition, fields[5])
	}

	return pos, nil
}

// CanCastle reports whether the castling rights field still allows the
// given player to castle towards side.
func (pos Position) CanCastle(player chess.Player, side chess.CastleSide) bool {
	right := byte('K')
	if side == chess.QueenSide {
		right = 'Q'
	}

	if player == chess.Black {
		right = right - 'A' + 'a'
	}

	return strings.IndexByte(pos.Castling, right) >= 0
}

// Grid reconstructs the position's board from White's perspective.
func (pos Position) Grid() Grid {
	// the layout was validated by Parse
	grid, _ := ParseGrid(pos.Layout, chess.White)
	return grid
}
