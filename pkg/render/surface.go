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
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is a canvas the board is painted on.
type Surface interface {
	// Set paints a single pixel.
	Set(x, y int, c color.Color)

	// DrawText draws a run of text with its baseline starting at (x, y).
	DrawText(text string, x, y int, face font.Face, c color.Color)

	// Paste composites img over the surface with its top left corner at at.
	Paste(img image.Image, at image.Point)

	// Encode serializes the surface.
	Encode(w io.Writer) error
}

// SurfaceFactory creates a blank surface of the given size.
type SurfaceFactory func(width, height int) Surface

// RGBASurface is an in-memory Surface which encodes to PNG.
type RGBASurface struct {
	img *image.RGBA
}

// NewRGBASurface creates a transparent RGBASurface.
func NewRGBASurface(width, height int) Surface {
	return &RGBASurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (surface *RGBASurface) Set(x, y int, c color.Color) {
	surface.img.Set(x, y, c)
}

func (surface *RGBASurface) DrawText(text string, x, y int, face font.Face, c color.Color) {
	drawer := font.Drawer{
		Dst:  surface.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}

	drawer.DrawString(text)
}

func (surface *RGBASurface) Paste(img image.Image, at image.Point) {
	bounds := img.Bounds()
	draw.Draw(surface.img, bounds.Sub(bounds.Min).Add(at), img, bounds.Min, draw.Over)
}

func (surface *RGBASurface) Encode(w io.Writer) error {
	return png.Encode(w, surface.img)
}

// Image returns the surface's backing image.
func (surface *RGBASurface) Image() *image.RGBA {
	return surface.img
}
