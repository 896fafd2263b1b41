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

// Package game implements a single chess game session: a rules engine, the
// record of the moves played on it, and the rendering of its position.
package game

import (
	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/game/engines"
)

// RepetitionLimit is the number of earlier occurrences of an identical move
// record after which a move is flagged as a RepetitionWarning.
const RepetitionLimit = 2

// Classify derives the result of a move which the engine has already
// accepted. state must reflect the board after the move, and history must
// not contain the move yet.
//
// Repetition is detected on move records, not on positions: a move is
// flagged if the exact same record, snapshot flags included, was played at
// least RepetitionLimit times before.
func Classify(state engines.State, move chess.Move, history []chess.Move) chess.MoveResult {
	switch {
	case state.IsCheckmate():
		return chess.Checkmate
	case occurrences(move, history) >= RepetitionLimit:
		return chess.RepetitionWarning
	case state.IsInCheck():
		return chess.Check
	case state.IsStalemate():
		return chess.Stalemate
	default:
		return chess.Valid
	}
}

func occurrences(move chess.Move, history []chess.Move) int {
	n := 0
	for _, played := range history {
		if played == move {
			n++
		}
	}

	return n
}
