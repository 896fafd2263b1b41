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
)

// Move is the record of a successfully applied move. It is a snapshot of
// the board right after the move: the piece which ended up on the target
// square, whether the mover could still castle, and whether an en-passant
// capture became available. Two moves are equal iff all fields are equal.
type Move struct {
	Start, Target Square

	Player Player
	Kind   PieceKind

	CanCastle bool
	EnPassant bool
}

// String returns the move's start and target squares, like "e2e4".
func (move Move) String() string {
	return move.Start.String() + move.Target.String()
}

// Touches reports whether sq is the start or target square of the move.
func (move Move) Touches(sq Square) bool {
	return sq.IsValid() && (sq == move.Start || sq == move.Target)
}

var ErrInvalidMove = errors.New("chess: invalid move string")

// ParseUCI parses a move string of the form <start><target>[promotion],
// like "e2e4" or "e7e8q". The promotion is None if it is absent.
func ParseUCI(s string) (start, target Square, promotion PieceKind, err error) {
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, None, fmt.Errorf("parse move %q: %w", s, ErrInvalidMove)
	}

	if start, err = ParseSquare(s[:2]); err != nil {
		return NoSquare, NoSquare, None, fmt.Errorf("parse move %q: %w", s, ErrInvalidMove)
	}

	if target, err = ParseSquare(s[2:4]); err != nil {
		return NoSquare, NoSquare, None, fmt.Errorf("parse move %q: %w", s, ErrInvalidMove)
	}

	if len(s) == 5 {
		if promotion, err = ParsePromotion(s[4]); err != nil {
			return NoSquare, NoSquare, None, fmt.Errorf("parse move %q: %w", s, ErrInvalidMove)
		}
	}

	return start, target, promotion, nil
}

// UCI formats a move request back into the <start><target>[promotion] form.
func UCI(start, target Square, promotion PieceKind) string {
	s := start.String() + target.String()
	if promotion.IsPlaceable() {
		s += string(NewPiece(Black, promotion).Char())
	}

	return s
}
