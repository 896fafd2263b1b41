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

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/config"
	"laptudirm.com/x/chessgame/pkg/fen"
	"laptudirm.com/x/chessgame/pkg/game"
	"laptudirm.com/x/chessgame/pkg/render"
)

var resultColors = map[chess.MoveResult]*color.Color{
	chess.Invalid:           color.New(color.FgRed, color.Bold),
	chess.Valid:             color.New(color.FgGreen),
	chess.Check:             color.New(color.FgYellow),
	chess.Checkmate:         color.New(color.FgMagenta, color.Bold),
	chess.Stalemate:         color.New(color.FgCyan, color.Bold),
	chess.RepetitionWarning: color.New(color.FgHiYellow),
}

// printResult prints a single move and its result.
func printResult(w io.Writer, ply int, move string, result chess.MoveResult) {
	number := fmt.Sprintf("%d.", ply/2+1)
	if ply%2 == 1 {
		number += ".."
	}

	fmt.Fprintf(w, "%-6s %-6s %s\n", number, move, resultColors[result].Sprint(result))
}

// addGameFlags registers the flags used to set up a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read the moves from the given file, or stdin if it is \"-\"")
	cmd.Flags().StringP("engine", "e", "", "Rules engine to play the moves with")
	cmd.Flags().String("fen", fen.StartPosition, "Starting position of the game")
	cmd.Flags().StringP("perspective", "p", "", "Side to view the board from (white or black)")
}

// moveList collects the moves given as arguments and in the --file flag.
func moveList(cmd *cobra.Command, args []string) ([]string, error) {
	moves := append([]string{}, args...)

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		var fileMoves []string
		var err error
		if file == "-" {
			fileMoves, err = game.ReadMoveListFrom(cmd.InOrStdin())
		} else {
			fileMoves, err = game.ReadMoveList(file)
		}
		if err != nil {
			return nil, err
		}

		moves = append(moves, fileMoves...)
	}

	return moves, nil
}

// newGame creates a game from the configuration and the game flags.
func newGame(cmd *cobra.Command, settings config.Config) (*game.Game, error) {
	engine := settings.Engine
	if flag, _ := cmd.Flags().GetString("engine"); flag != "" {
		engine = flag
	}

	position, _ := cmd.Flags().GetString("fen")

	renderer, err := settings.Renderer(render.WithLogger(logrus.StandardLogger()))
	if err != nil {
		return nil, err
	}

	return game.New(
		game.WithEngine(engine),
		game.WithFEN(position),
		game.WithRenderer(renderer),
		game.WithLogger(logrus.StandardLogger()),
	)
}

// perspective returns the --perspective flag, or the configured one.
func perspective(cmd *cobra.Command, settings config.Config) (chess.Player, error) {
	if flag, _ := cmd.Flags().GetString("perspective"); flag != "" {
		return chess.ParsePlayer(flag)
	}

	return settings.Player()
}

// isSVG reports whether the output should be SVG, going by the explicit
// format or else the file extension.
func isSVG(format, out string) bool {
	if format != "" {
		return strings.EqualFold(format, "svg")
	}

	return strings.EqualFold(filepath.Ext(out), ".svg")
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Info("board written")
	return nil
}
