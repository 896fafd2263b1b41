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
	"fmt"

	notnil "github.com/notnil/chess"

	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/fen"
)

// NotnilEngine is an Engine backed by github.com/notnil/chess.
type NotnilEngine struct {
	game *notnil.Game
}

// NewNotnil initializes a notnil game to the given FEN position.
func NewNotnil(position string) (*NotnilEngine, error) {
	if _, err := validate(position); err != nil {
		return nil, err
	}

	opt, err := notnil.FEN(position)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fen.ErrMalformedPosition, err)
	}

	return &NotnilEngine{
		game: notnil.NewGame(opt, notnil.UseNotation(notnil.UCINotation{})),
	}, nil
}

func (engine *NotnilEngine) ApplyMove(start, target chess.Square, promotion chess.PieceKind) bool {
	uci := chess.UCI(start, target, promotion)
	if err := engine.game.MoveStr(uci); err != nil {
		return promotion == chess.None && engine.game.MoveStr(uci+"q") == nil
	}

	return true
}

func (engine *NotnilEngine) IsInCheck() bool {
	moves := engine.game.Moves()
	if len(moves) == 0 {
		// no move to carry the check tag, which only matters for
		// starting positions with the side to move already mated
		return engine.IsCheckmate()
	}

	return moves[len(moves)-1].HasTag(notnil.Check)
}

func (engine *NotnilEngine) IsCheckmate() bool {
	return engine.game.Position().Status() == notnil.Checkmate
}

func (engine *NotnilEngine) IsStalemate() bool {
	return engine.game.Position().Status() == notnil.Stalemate
}

func (engine *NotnilEngine) EnPassantSquare() chess.Square {
	sq := engine.game.Position().EnPassantSquare()
	if sq == notnil.NoSquare {
		return chess.NoSquare
	}

	return chess.Square(sq)
}

func (engine *NotnilEngine) CanCastle(player chess.Player, side chess.CastleSide) bool {
	notnilSide := notnil.KingSide
	if side == chess.QueenSide {
		notnilSide = notnil.QueenSide
	}

	return engine.game.Position().CastleRights().CanCastle(notnilColor(player), notnilSide)
}

func (engine *NotnilEngine) PieceAt(sq chess.Square) chess.Piece {
	if !sq.IsValid() {
		return chess.NoPiece
	}

	piece := engine.game.Position().Board().Piece(notnil.Square(sq))
	kind, found := notnilKinds[piece.Type()]
	if !found {
		return chess.NoPiece
	}

	color := chess.White
	if piece.Color() == notnil.Black {
		color = chess.Black
	}

	return chess.NewPiece(color, kind)
}

func (engine *NotnilEngine) FEN() string {
	return engine.game.Position().String()
}

var notnilKinds = map[notnil.PieceType]chess.PieceKind{
	notnil.Pawn:   chess.Pawn,
	notnil.Knight: chess.Knight,
	notnil.Bishop: chess.Bishop,
	notnil.Rook:   chess.Rook,
	notnil.Queen:  chess.Queen,
	notnil.King:   chess.King,
}

func notnilColor(player chess.Player) notnil.Color {
	if player == chess.Black {
		return notnil.Black
	}

	return notnil.White
}
