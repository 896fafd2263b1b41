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

// Package engines adapts third-party chess rules engines to the Engine
// interface consumed by the game.
package engines

import (
	"errors"
	"fmt"
	"sort"

	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/fen"
)

// State is the part of an engine the move classifier looks at. Every query
// reflects the board after the most recent successful ApplyMove.
type State interface {
	IsInCheck() bool
	IsCheckmate() bool
	IsStalemate() bool
}

// Engine is a chess rules engine owned by a single game.
type Engine interface {
	State

	// ApplyMove plays the given move if it is legal and reports whether it
	// was. A promotion of None on a promoting pawn move promotes to a queen.
	ApplyMove(start, target chess.Square, promotion chess.PieceKind) bool

	EnPassantSquare() chess.Square
	CanCastle(player chess.Player, side chess.CastleSide) bool
	PieceAt(sq chess.Square) chess.Piece

	// FEN exports the current position.
	FEN() string
}

// Default is the name of the engine used when none is configured.
const Default = "mess"

var ErrUnknownEngine = errors.New("engines: unknown engine")

var constructors = map[string]func(string) (Engine, error){
	"mess": func(position string) (Engine, error) {
		engine, err := NewMess(position)
		if err != nil {
			return nil, err
		}

		return engine, nil
	},

	"notnil": func(position string) (Engine, error) {
		engine, err := NewNotnil(position)
		if err != nil {
			return nil, err
		}

		return engine, nil
	},
}

// New initializes the named engine to the given FEN position.
func New(name, position string) (Engine, error) {
	constructor, found := constructors[name]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}

	return constructor(position)
}

// Names returns the names of all the available engines, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// validate checks a starting position before it is handed to an engine,
// since engines are free to misbehave on boards without both kings.
func validate(position string) (fen.Position, error) {
	pos, err := fen.Parse(position)
	if err != nil {
		return fen.Position{}, err
	}

	var kings [chess.PlayerN]int
	grid := pos.Grid()
	for _, row := range grid {
		for _, piece := range row {
			if piece.Kind == chess.King {
				kings[piece.Color]++
			}
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fen.Position{}, fmt.Errorf("%w: needs exactly one king per side", fen.ErrMalformedPosition)
	}

	return pos, nil
}
