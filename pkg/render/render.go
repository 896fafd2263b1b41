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

// Package render draws chess positions as board images with coordinate
// labels, last move highlighting and piece sprites.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"laptudirm.com/x/chessgame/pkg/assets"
	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/fen"
)

var (
	ErrAssetUnavailable = errors.New("render: asset unavailable")
	ErrEncodingFailure  = errors.New("render: encoding failure")
)

// Renderer turns FEN positions into board images.
type Renderer struct {
	loader assets.Loader

	geometry   Geometry
	theme      Theme
	fontPath   string
	newSurface SurfaceFactory

	logger logrus.FieldLogger
}

// Option configures a Renderer created by New.
type Option func(*Renderer)

func WithGeometry(geometry Geometry) Option {
	return func(r *Renderer) { r.geometry = geometry }
}

func WithTheme(theme Theme) Option {
	return func(r *Renderer) { r.theme = theme }
}

// WithFont sets the asset path of the label font, which may be any TrueType
// or OpenType font.
func WithFont(path string) Option {
	return func(r *Renderer) { r.fontPath = path }
}

func WithSurface(factory SurfaceFactory) Option {
	return func(r *Renderer) { r.newSurface = factory }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// New creates a Renderer which loads its font and sprites from loader.
func New(loader assets.Loader, options ...Option) (*Renderer, error) {
	r := &Renderer{
		loader:     loader,
		geometry:   DefaultGeometry,
		theme:      DefaultTheme,
		fontPath:   assets.FontPath,
		newSurface: NewRGBASurface,
		logger:     logrus.StandardLogger(),
	}

	for _, option := range options {
		option(r)
	}

	if err := r.geometry.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Geometry returns the renderer's geometry.
func (r *Renderer) Geometry() Geometry {
	return r.geometry
}

// Cell is a single square of a board as it is painted.
type Cell struct {
	Square chess.Square // The square shown in the cell
	Piece  chess.Piece

	Dark        bool // Dark square, whether or not highlighted
	Highlighted bool // Start or target square of the last move
}

// Class returns the name of the cell's base color class.
func (cell Cell) Class() string {
	if cell.Dark {
		return "dark"
	}

	return "light"
}

// Board is a position laid out for painting, Board[rank][file] with rank 0
// the top row and file 0 the left column.
type Board [chess.BoardSize][chess.BoardSize]Cell

// Grid lays out the position for the given perspective, without touching
// any assets.
func (r *Renderer) Grid(position string, perspective chess.Player, lastMove *chess.Move) (Board, error) {
	grid, err := fen.ParseGrid(position, perspective)
	if err != nil {
		return Board{}, err
	}

	var board Board
	for rank := range board {
		for file := range board[rank] {
			sq := chess.ViewSquare(file, rank, perspective)
			board[rank][file] = Cell{
				Square:      sq,
				Piece:       grid[rank][file],
				Dark:        rank%2 != file%2,
				Highlighted: lastMove != nil && lastMove.Touches(sq),
			}
		}
	}

	return board, nil
}

// Render draws the position from the given perspective and encodes it as a
// PNG image. lastMove, if not nil, is highlighted. Either the complete
// image is returned or an error: a missing or undecodable sprite or font
// fails with ErrAssetUnavailable, and serialization with ErrEncodingFailure.
func (r *Renderer) Render(position string, perspective chess.Player, lastMove *chess.Move) ([]byte, error) {
	board, err := r.Grid(position, perspective, lastMove)
	if err != nil {
		return nil, err
	}

	face, err := r.face()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	sprites, err := r.sprites(board)
	if err != nil {
		return nil, err
	}

	surface := r.newSurface(r.geometry.Width(), r.geometry.Height())
	r.paintBackground(surface)
	r.paintSquares(surface, board)
	r.paintLabels(surface, face, perspective)
	r.paintPieces(surface, board, sprites)

	var buf bytes.Buffer
	if err := surface.Encode(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}

	r.logger.WithFields(logrus.Fields{
		"position":    position,
		"perspective": perspective.String(),
		"bytes":       buf.Len(),
	}).Debug("board rendered")

	return buf.Bytes(), nil
}

func (r *Renderer) paintBackground(surface Surface) {
	fill(surface, image.Rect(0, 0, r.geometry.Width(), r.geometry.Height()), r.theme.Background)
}

func (r *Renderer) paintSquares(surface Surface, board Board) {
	for rank := range board {
		for file, cell := range board[rank] {
			c := r.theme.Light
			switch {
			case cell.Highlighted:
				c = r.theme.Highlight
			case cell.Dark:
				c = r.theme.Dark
			}

			fill(surface, r.geometry.Cell(file, rank), c)
		}
	}
}

func (r *Renderer) paintLabels(surface Surface, face font.Face, perspective chess.Player) {
	height := capHeight(face)

	for i := 0; i < chess.BoardSize; i++ {
		rankText := chess.ViewSquare(0, i, perspective).RankLabel()
		strip := r.geometry.RankLabel(i)
		x := strip.Min.X + (strip.Dx()-font.MeasureString(face, rankText).Round())/2
		y := strip.Min.Y + (strip.Dy()+height)/2
		surface.DrawText(rankText, x, y, face, r.theme.Label)

		fileText := chess.ViewSquare(i, 0, perspective).FileLabel()
		strip = r.geometry.FileLabel(i)
		x = strip.Min.X + (strip.Dx()-font.MeasureString(face, fileText).Round())/2
		y = strip.Min.Y + (strip.Dy()+height)/2
		surface.DrawText(fileText, x, y, face, r.theme.Label)
	}
}

func (r *Renderer) paintPieces(surface Surface, board Board, sprites map[string]image.Image) {
	for rank := range board {
		for file, cell := range board[rank] {
			if cell.Piece.IsEmpty() {
				continue
			}

			sprite := sprites[spritePath(cell)]
			offset := (r.geometry.SquareSize - r.geometry.SpriteSize) / 2
			surface.Paste(sprite, r.geometry.Cell(file, rank).Min.Add(image.Pt(offset, offset)))
		}
	}
}

// face loads the label font.
func (r *Renderer) face() (font.Face, error) {
	data, err := r.loader.Load(r.fontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %w", ErrAssetUnavailable, r.fontPath, err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrAssetUnavailable, r.fontPath, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    r.geometry.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrAssetUnavailable, r.fontPath, err)
	}

	return face, nil
}

// sprites loads and decodes every sprite the board needs, scaled to the
// sprite size, keyed by asset path.
func (r *Renderer) sprites(board Board) (map[string]image.Image, error) {
	sprites := make(map[string]image.Image)

	for rank := range board {
		for _, cell := range board[rank] {
			if cell.Piece.IsEmpty() {
				continue
			}

			path := spritePath(cell)
			if _, found := sprites[path]; found {
				continue
			}

			sprite, err := r.sprite(path)
			if err != nil {
				return nil, err
			}

			sprites[path] = sprite
		}
	}

	return sprites, nil
}

func (r *Renderer) sprite(path string) (image.Image, error) {
	_, img, err := r.loadSprite(path)
	if err != nil {
		return nil, err
	}

	size := r.geometry.SpriteSize
	if img.Bounds().Dx() == size && img.Bounds().Dy() == size {
		return img, nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled, nil
}

// loadSprite loads a sprite and checks that it decodes.
func (r *Renderer) loadSprite(path string) ([]byte, image.Image, error) {
	data, err := r.loader.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: sprite %s: %w", ErrAssetUnavailable, path, err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: sprite %s: %v", ErrAssetUnavailable, path, err)
	}

	return data, img, nil
}

func spritePath(cell Cell) string {
	return assets.SpritePath(cell.Piece.Color.String(), cell.Class(), cell.Piece.Kind.String())
}

func capHeight(face font.Face) int {
	metrics := face.Metrics()
	if metrics.CapHeight > 0 {
		return metrics.CapHeight.Round()
	}

	return metrics.Ascent.Round()
}

func fill(surface Surface, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			surface.Set(x, y, c)
		}
	}
}
