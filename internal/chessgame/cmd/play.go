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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/chessgame/pkg/chess"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [moves...]",
		Short: "Play a sequence of moves and report the result of each",
		Long: heredoc.Doc(`play applies the given moves, written like e2e4 or e7e8q,
			one after the other to a new game and prints the result of
			every move: valid, check, checkmate, stalemate, a repetition
			warning, or invalid.

			Moves may also be read from a file with --file, one or more
			per line. Lines may carry # comments and move numbers.

			Playing stops at the first illegal move or when the game is
			over. With --out the final position is rendered to the given
			file, as SVG if it ends in .svg and as PNG otherwise.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			moves, err := moveList(cmd, args)
			if err != nil {
				return err
			}

			g, err := newGame(cmd, settings)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for ply, move := range moves {
				result, err := g.ApplyUCI(move)
				if err != nil {
					return err
				}

				printResult(w, ply, move, result)

				if result == chess.Invalid {
					return fmt.Errorf("move %d: illegal move %s", ply+1, move)
				}

				if result.IsTerminal() {
					if rest := len(moves) - ply - 1; rest > 0 {
						logrus.Warnf("game over, ignoring the remaining %d moves", rest)
					}

					break
				}
			}

			fmt.Fprintf(w, "\n%s\n", g.FEN())

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return nil
			}

			player, err := perspective(cmd, settings)
			if err != nil {
				return err
			}

			var image []byte
			if isSVG("", out) {
				image, err = g.GenerateBoardSVG(player)
			} else {
				image, err = g.GenerateBoardImage(player)
			}

			if err != nil {
				return err
			}

			return writeFile(out, image)
		},
	}

	addGameFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "Render the final position to the given file")

	return cmd
}
