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
	"laptudirm.com/x/chessgame/pkg/render"
)

func Render() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <fen>",
		Short: "Render a position as a board image",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`render draws the given FEN position as a board image with
			coordinate labels, optionally highlighting the start and
			target squares of a move given with --highlight.

			The image format is taken from --format, or else from the
			extension of the output file.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			player, err := perspective(cmd, settings)
			if err != nil {
				return err
			}

			var lastMove *chess.Move
			if highlight, _ := cmd.Flags().GetString("highlight"); highlight != "" {
				start, target, _, err := chess.ParseUCI(highlight)
				if err != nil {
					return err
				}

				lastMove = &chess.Move{Start: start, Target: target}
			}

			renderer, err := settings.Renderer(render.WithLogger(logrus.StandardLogger()))
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			format, _ := cmd.Flags().GetString("format")

			var image []byte
			switch {
			case format != "" && format != "png" && format != "svg":
				return fmt.Errorf("unknown image format %q", format)
			case isSVG(format, out):
				image, err = renderer.RenderSVG(args[0], player, lastMove)
			default:
				image, err = renderer.Render(args[0], player, lastMove)
			}

			if err != nil {
				return err
			}

			return writeFile(out, image)
		},
	}

	cmd.Flags().StringP("perspective", "p", "", "Side to view the board from (white or black)")
	cmd.Flags().String("highlight", "", "Move whose squares are highlighted, like e2e4")
	cmd.Flags().StringP("out", "o", "board.png", "File to write the image to")
	cmd.Flags().String("format", "", "Image format, png or svg")

	return cmd
}
