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
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/config"
	"laptudirm.com/x/chessgame/internal/util"
)

func Replay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [moves...]",
		Short: "Render every position of a game to a directory",
		Long: heredoc.Doc(`replay plays the given moves like play does and renders the
			position after every move to the directory given by --dir,
			as 000.png for the starting position, 001.png after the
			first move, and so on. The last move is highlighted.`),
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

			player, err := perspective(cmd, settings)
			if err != nil {
				return err
			}

			dir, _ := cmd.Flags().GetString("dir")
			if err := os.MkdirAll(dir, config.Permissions); err != nil {
				return err
			}

			frame := func(ply int) error {
				image, err := g.GenerateBoardImage(player)
				if err != nil {
					return err
				}

				path := filepath.Join(dir, fmt.Sprintf("%03d.png", ply))
				logrus.WithField("path", path).Debug("writing frame")
				return os.WriteFile(path, image, 0644)
			}

			var results []chess.MoveResult
			err = util.Spin(cmd.ErrOrStderr(), "rendering", len(moves)+1, func(progress *util.Progress) error {
				if err := frame(0); err != nil {
					return err
				}
				progress.Step()

				for ply, move := range moves {
					result, err := g.ApplyUCI(move)
					if err != nil {
						return err
					}

					results = append(results, result)
					if result == chess.Invalid {
						return fmt.Errorf("move %d: illegal move %s", ply+1, move)
					}

					if err := frame(ply + 1); err != nil {
						return err
					}
					progress.Step()

					if result.IsTerminal() {
						return nil
					}
				}

				return nil
			})

			w := cmd.OutOrStdout()
			for ply, result := range results {
				printResult(w, ply, moves[ply], result)
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(w, "\n%d frames written to %s\n", len(results)+1, dir)
			return nil
		},
	}

	addGameFlags(cmd)
	cmd.Flags().StringP("dir", "d", "replay", "Directory to write the frames to")

	return cmd
}
