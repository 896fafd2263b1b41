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

package engines

import (
	"strings"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/board/move"
	messfen "laptudirm.com/x/mess/pkg/formats/fen"

	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/fen"
)

// MessEngine is an Engine backed by the mess move generator. Legality is
// decided by matching against the generated move list, and the castling,
// en-passant and placement queries are answered from the board's FEN.
type MessEngine struct {
	board *board.Board
	moves []move.Move

	position fen.Position
}

// NewMess initializes a mess board to the given FEN position.
func NewMess(position string) (*MessEngine, error) {
	if _, err := validate(position); err != nil {
		return nil, err
	}

	engine := &MessEngine{
		board: board.New(board.FEN(messfen.FromString(position))),
	}

	engine.update()
	return engine, nil
}

// update regenerates the move list and re-reads the position after the
// board has changed.
func (engine *MessEngine) update() {
	engine.moves = engine.board.GenerateMoves(false)

	// mess only ever exports well-formed positions
	engine.position, _ = fen.Parse(engine.FEN())
}

func (engine *MessEngine) ApplyMove(start, target chess.Square, promotion chess.PieceKind) bool {
	uci := chess.UCI(start, target, promotion)

	for _, mov := range engine.moves {
		str := mov.String()
		if strings.EqualFold(str, uci) || (promotion == chess.None && strings.EqualFold(str, uci+"q")) {
			engine.board.MakeMove(mov)
			engine.update()
			return true
		}
	}

	return false
}

func (engine *MessEngine) IsInCheck() bool {
	return engine.board.IsInCheck(engine.board.SideToMove)
}

func (engine *MessEngine) IsCheckmate() bool {
	return len(engine.moves) == 0 && engine.IsInCheck()
}

func (engine *MessEngine) IsStalemate() bool {
	return len(engine.moves) == 0 && !engine.IsInCheck()
}

func (engine *MessEngine) EnPassantSquare() chess.Square {
	return engine.position.EnPassant
}

func (engine *MessEngine) CanCastle(player chess.Player, side chess.CastleSide) bool {
	return engine.position.CanCastle(player, side)
}

func (engine *MessEngine) PieceAt(sq chess.Square) chess.Piece {
	return engine.position.Grid().At(sq)
}

func (engine *MessEngine) FEN() string {
	fen := [6]string(engine.board.FEN())
	return strings.Join(fen[:], " ")
}
