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

// Package fen reconstructs board grids from FEN position strings and splits
// FEN strings into their fields.
package fen

import (
	"errors"
	"fmt"
	"strings"

	"laptudirm.com/x/chessgame/pkg/chess"
)

// StartPosition is the FEN string of the standard starting position.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// RankDelimiter separates the ranks of a board-layout field.
const RankDelimiter = '/'

var ErrMalformedPosition = errors.New("fen: malformed position")

// Grid is a board as it is displayed: Grid[rank][file] with rank 0 being
// the top row and file 0 the left column of the rendered image. Empty
// squares hold chess.NoPiece.
type Grid [chess.BoardSize][chess.BoardSize]chess.Piece

// ParseGrid reconstructs the grid from the board-layout field (the first
// field) of the given position string, oriented for perspective.
//
// For Black's perspective the layout's token stream is reversed before it
// is parsed, which reverses both the rank order and the file order of
// every rank.
func ParseGrid(position string, perspective chess.Player) (Grid, error) {
	layout := position
	if fields := strings.Fields(position); len(fields) > 0 {
		layout = fields[0]
	}

	if perspective == chess.Black {
		layout = reverse(layout)
	}

	var grid Grid
	ranks := strings.Split(layout, string(RankDelimiter))
	if len(ranks) != chess.BoardSize {
		return Grid{}, fmt.Errorf("%w: %d ranks in %q", ErrMalformedPosition, len(ranks), layout)
	}

	for rank, tokens := range ranks {
		if err := parseRank(&grid[rank], tokens); err != nil {
			return Grid{}, fmt.Errorf("%w: rank %d %q: %v", ErrMalformedPosition, rank+1, tokens, err)
		}
	}

	return grid, nil
}

// parseRank fills a single row of the grid from the rank's tokens.
func parseRank(row *[chess.BoardSize]chess.Piece, tokens string) error {
	file := 0
	for i := 0; i < len(tokens); i++ {
		c := tokens[i]

		switch {
		case c >= '0' && c <= '9':
			run := int(c - '0')
			if run < 1 || run > chess.BoardSize {
				return fmt.Errorf("run length %c out of range", c)
			}

			if file+run > chess.BoardSize {
				return errors.New("too many files")
			}

			for ; run > 0; run-- {
				row[file] = chess.NoPiece
				file++
			}

		default:
			piece, err := chess.ParsePiece(c)
			if err != nil {
				return err
			}

			if file >= chess.BoardSize {
				return errors.New("too many files")
			}

			row[file] = piece
			file++
		}
	}

	if file != chess.BoardSize {
		return fmt.Errorf("%d files", file)
	}

	return nil
}

// Layout serializes the grid back into a board-layout field. perspective
// has to be the one the grid was parsed with, so that parsing the returned
// layout with it reproduces the grid.
func (grid Grid) Layout(perspective chess.Player) string {
	var sb strings.Builder

	for rank := range grid {
		if rank > 0 {
			sb.WriteByte(RankDelimiter)
		}

		empty := 0
		for _, piece := range grid[rank] {
			if piece.IsEmpty() {
				empty++
				continue
			}

			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}

			sb.WriteByte(piece.Char())
		}

		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	if perspective == chess.Black {
		return reverse(sb.String())
	}

	return sb.String()
}

// At returns the piece on the given board square. The grid has to have been
// parsed from White's perspective.
func (grid Grid) At(sq chess.Square) chess.Piece {
	if !sq.IsValid() {
		return chess.NoPiece
	}

	return grid[chess.BoardSize-1-sq.Rank()][sq.File()]
}

// reverse reverses a layout token stream. Every token of a board-layout
// field is a single ASCII character, so reversing bytes is enough.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}
