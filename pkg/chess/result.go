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

// MoveResult represents the outcome of a single move attempt.
type MoveResult int

const (
	Invalid           MoveResult = iota // The engine rejected the move
	Valid                               // Legal and nothing else to report
	Check                               // The side to move is in check
	Checkmate                           // The side to move is checkmated
	Stalemate                           // The side to move has no legal moves
	RepetitionWarning                   // The same move record was played twice before
)

// String returns a string representation of the given MoveResult.
func (result MoveResult) String() string {
	switch result {
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case RepetitionWarning:
		return "repetition warning"
	default:
		return "?"
	}
}

// IsTerminal reports whether the game cannot continue after the result.
func (result MoveResult) IsTerminal() bool {
	return result == Checkmate || result == Stalemate
}
