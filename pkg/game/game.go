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

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/chessgame/pkg/assets"
	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/fen"
	"laptudirm.com/x/chessgame/pkg/game/engines"
	"laptudirm.com/x/chessgame/pkg/render"
)

var ErrInvalidMoveString = errors.New("game: invalid move string")

// BoardRenderer rasterizes positions for a game.
type BoardRenderer interface {
	Render(position string, perspective chess.Player, lastMove *chess.Move) ([]byte, error)
	RenderSVG(position string, perspective chess.Player, lastMove *chess.Move) ([]byte, error)
}

// Game is a single chess game: a rules engine initialized to the starting
// position and the history of the moves successfully applied to it. A Game
// is not safe for concurrent use.
type Game struct {
	ID uuid.UUID

	engine  engines.Engine
	history []chess.Move

	renderer BoardRenderer
	logger   logrus.FieldLogger
}

type settings struct {
	engine   string
	position string
	renderer BoardRenderer
	logger   logrus.FieldLogger
}

// Option configures a Game created by New.
type Option func(*settings)

// WithEngine selects the rules engine by its registered name.
func WithEngine(name string) Option {
	return func(s *settings) { s.engine = name }
}

// WithFEN starts the game from the given position instead of the standard
// starting position.
func WithFEN(position string) Option {
	return func(s *settings) { s.position = position }
}

// WithRenderer replaces the renderer used for board images.
func WithRenderer(renderer BoardRenderer) Option {
	return func(s *settings) { s.renderer = renderer }
}

// WithLogger sets the sink for the game's diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *settings) { s.logger = logger }
}

// New creates a new game. Without options the game uses the default engine
// and the built-in assets, and starts from the standard starting position.
func New(options ...Option) (*Game, error) {
	s := settings{
		engine:   engines.Default,
		position: fen.StartPosition,
		logger:   logrus.StandardLogger(),
	}

	for _, option := range options {
		option(&s)
	}

	engine, err := engines.New(s.engine, s.position)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	if s.renderer == nil {
		if s.renderer, err = render.New(assets.Default(), render.WithLogger(s.logger)); err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
	}

	id := uuid.New()
	game := &Game{
		ID:       id,
		engine:   engine,
		renderer: s.renderer,
		logger:   s.logger.WithField("game", id.String()),
	}

	game.logger.WithFields(logrus.Fields{
		"engine":   s.engine,
		"position": s.position,
	}).Debug("game created")

	return game, nil
}

// FEN returns the current position of the game.
func (game *Game) FEN() string {
	return game.engine.FEN()
}

// ApplyMove tries to play the given move. Illegal moves leave the game
// untouched and are reported as Invalid. Every other result is recorded in
// the history after the move has been classified.
func (game *Game) ApplyMove(start, target chess.Square, promotion chess.PieceKind) chess.MoveResult {
	logger := game.logger.WithField("move", chess.UCI(start, target, promotion))

	if !promotion.IsPromotion() {
		logger.WithField("promotion", promotion.String()).Debug("invalid promotion")
		return chess.Invalid
	}

	if !game.engine.ApplyMove(start, target, promotion) {
		logger.Debug("illegal move")
		return chess.Invalid
	}

	move := game.snapshot(start, target)
	result := Classify(game.engine, move, game.history)
	game.history = append(game.history, move)

	logger.WithField("result", result.String()).Debug("move applied")
	return result
}

// ApplyUCI parses a move string like "e2e4" or "e7e8q" and applies it.
func (game *Game) ApplyUCI(s string) (chess.MoveResult, error) {
	start, target, promotion, err := chess.ParseUCI(s)
	if err != nil {
		return chess.Invalid, fmt.Errorf("%w: %v", ErrInvalidMoveString, err)
	}

	return game.ApplyMove(start, target, promotion), nil
}

// snapshot builds the record of a move the engine just accepted.
func (game *Game) snapshot(start, target chess.Square) chess.Move {
	piece := game.engine.PieceAt(target)

	return chess.Move{
		Start:  start,
		Target: target,

		Player: piece.Color,
		Kind:   piece.Kind,

		CanCastle: game.engine.CanCastle(piece.Color, chess.KingSide) ||
			game.engine.CanCastle(piece.Color, chess.QueenSide),
		EnPassant: game.engine.EnPassantSquare() != chess.NoSquare,
	}
}

// History returns a copy of the moves played so far, oldest first.
func (game *Game) History() []chess.Move {
	history := make([]chess.Move, len(game.history))
	copy(history, game.history)
	return history
}

// LastMove returns the most recently played move, if any.
func (game *Game) LastMove() (chess.Move, bool) {
	if len(game.history) == 0 {
		return chess.Move{}, false
	}

	return game.history[len(game.history)-1], true
}

// GenerateBoardImage renders the current position as a PNG image from the
// given perspective, highlighting the last move.
func (game *Game) GenerateBoardImage(perspective chess.Player) ([]byte, error) {
	return game.renderer.Render(game.FEN(), perspective, game.lastMove())
}

// GenerateBoardSVG is like GenerateBoardImage but produces an SVG document.
func (game *Game) GenerateBoardSVG(perspective chess.Player) ([]byte, error) {
	return game.renderer.RenderSVG(game.FEN(), perspective, game.lastMove())
}

func (game *Game) lastMove() *chess.Move {
	if move, ok := game.LastMove(); ok {
		return &move
	}

	return nil
}
