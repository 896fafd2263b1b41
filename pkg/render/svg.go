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

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"

	svg "github.com/ajstarks/svgo"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/chessgame/pkg/chess"
)

// RenderSVG draws the same board as Render as an SVG document. Sprites are
// embedded as PNG data URIs and labels are left to the viewer's sans-serif
// font, so the font asset is not needed.
func (r *Renderer) RenderSVG(position string, perspective chess.Player, lastMove *chess.Move) ([]byte, error) {
	board, err := r.Grid(position, perspective, lastMove)
	if err != nil {
		return nil, err
	}

	uris := make(map[string]string)
	for rank := range board {
		for _, cell := range board[rank] {
			if cell.Piece.IsEmpty() {
				continue
			}

			path := spritePath(cell)
			if _, found := uris[path]; found {
				continue
			}

			data, _, err := r.loadSprite(path)
			if err != nil {
				return nil, err
			}

			uris[path] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
		}
	}

	geometry := r.geometry

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(geometry.Width(), geometry.Height())
	canvas.Title(fmt.Sprintf("%s (%s)", position, perspective))
	canvas.Rect(0, 0, geometry.Width(), geometry.Height(), "fill:"+Hex(r.theme.Background))

	for rank := range board {
		for file, cell := range board[rank] {
			c := r.theme.Light
			switch {
			case cell.Highlighted:
				c = r.theme.Highlight
			case cell.Dark:
				c = r.theme.Dark
			}

			bounds := geometry.Cell(file, rank)
			canvas.Rect(bounds.Min.X, bounds.Min.Y, bounds.Dx(), bounds.Dy(), "fill:"+Hex(c))
		}
	}

	canvas.Gstyle(fmt.Sprintf(
		"font-family:sans-serif;font-size:%gpx;fill:%s;text-anchor:middle;dominant-baseline:central",
		geometry.FontSize, Hex(r.theme.Label),
	))
	for i := 0; i < chess.BoardSize; i++ {
		strip := geometry.RankLabel(i)
		canvas.Text(strip.Min.X+strip.Dx()/2, strip.Min.Y+strip.Dy()/2, chess.ViewSquare(0, i, perspective).RankLabel())

		strip = geometry.FileLabel(i)
		canvas.Text(strip.Min.X+strip.Dx()/2, strip.Min.Y+strip.Dy()/2, chess.ViewSquare(i, 0, perspective).FileLabel())
	}
	canvas.Gend()

	offset := (geometry.SquareSize - geometry.SpriteSize) / 2
	for rank := range board {
		for file, cell := range board[rank] {
			if cell.Piece.IsEmpty() {
				continue
			}

			at := geometry.Cell(file, rank).Min
			canvas.Image(at.X+offset, at.Y+offset, geometry.SpriteSize, geometry.SpriteSize, uris[spritePath(cell)])
		}
	}

	canvas.End()

	r.logger.WithFields(logrus.Fields{
		"position":    position,
		"perspective": perspective.String(),
		"bytes":       buf.Len(),
	}).Debug("svg board rendered")

	return buf.Bytes(), nil
}
