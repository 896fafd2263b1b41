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
	"errors"
	"fmt"
	"image"

	"laptudirm.com/x/chessgame/pkg/chess"
)

var ErrInvalidGeometry = errors.New("render: invalid geometry")

// Geometry holds the pixel dimensions of a rendered board. Labels are drawn
// in a strip LeftMargin pixels wide to the left of the board and a strip
// BottomMargin pixels high below it.
type Geometry struct {
	SquareSize   int     `yaml:"square-size"`
	SpriteSize   int     `yaml:"sprite-size"`
	LeftMargin   int     `yaml:"left-margin"`
	BottomMargin int     `yaml:"bottom-margin"`
	FontSize     float64 `yaml:"font-size"`
}

// DefaultGeometry produces a 500x500 pixel image.
var DefaultGeometry = Geometry{
	SquareSize:   60,
	SpriteSize:   48,
	LeftMargin:   20,
	BottomMargin: 20,
	FontSize:     12,
}

// Validate checks that sprites fit inside their squares and that label
// glyphs fit inside the margins. Font sizes are in pixels.
func (geometry Geometry) Validate() error {
	switch {
	case geometry.SquareSize <= 0:
		return fmt.Errorf("%w: square size %d", ErrInvalidGeometry, geometry.SquareSize)
	case geometry.SpriteSize <= 0 || geometry.SpriteSize > geometry.SquareSize:
		return fmt.Errorf("%w: sprite size %d with square size %d", ErrInvalidGeometry, geometry.SpriteSize, geometry.SquareSize)
	case geometry.LeftMargin <= 0 || geometry.BottomMargin <= 0:
		return fmt.Errorf("%w: margins %dx%d", ErrInvalidGeometry, geometry.LeftMargin, geometry.BottomMargin)
	case geometry.FontSize <= 0:
		return fmt.Errorf("%w: font size %g", ErrInvalidGeometry, geometry.FontSize)
	case geometry.FontSize > float64(geometry.LeftMargin) || geometry.FontSize > float64(geometry.BottomMargin):
		return fmt.Errorf("%w: font size %g does not fit margins %dx%d", ErrInvalidGeometry,
			geometry.FontSize, geometry.LeftMargin, geometry.BottomMargin)
	case geometry.FontSize > float64(geometry.SquareSize):
		return fmt.Errorf("%w: font size %g larger than square size %d", ErrInvalidGeometry, geometry.FontSize, geometry.SquareSize)
	}

	return nil
}

// Width returns the width of the rendered image.
func (geometry Geometry) Width() int {
	return geometry.LeftMargin + chess.BoardSize*geometry.SquareSize
}

// Height returns the height of the rendered image.
func (geometry Geometry) Height() int {
	return chess.BoardSize*geometry.SquareSize + geometry.BottomMargin
}

// Cell returns the pixel bounds of the given display cell, with file 0 the
// left column and rank 0 the top row.
func (geometry Geometry) Cell(file, rank int) image.Rectangle {
	origin := image.Pt(geometry.LeftMargin+file*geometry.SquareSize, rank*geometry.SquareSize)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(geometry.SquareSize, geometry.SquareSize))}
}

// RankLabel returns the pixel bounds of the label strip next to a row.
func (geometry Geometry) RankLabel(rank int) image.Rectangle {
	return image.Rect(0, rank*geometry.SquareSize, geometry.LeftMargin, (rank+1)*geometry.SquareSize)
}

// FileLabel returns the pixel bounds of the label strip below a column.
func (geometry Geometry) FileLabel(file int) image.Rectangle {
	cell := geometry.Cell(file, chess.BoardSize-1)
	return image.Rect(cell.Min.X, cell.Max.Y, cell.Max.X, cell.Max.Y+geometry.BottomMargin)
}
