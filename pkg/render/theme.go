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
	"image/color"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("render: invalid color")

// Theme holds the colors of a rendered board.
type Theme struct {
	Light      color.RGBA
	Dark       color.RGBA
	Highlight  color.RGBA
	Background color.RGBA
	Label      color.RGBA
}

var DefaultTheme = Theme{
	Light:      color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	Dark:       color.RGBA{0xb5, 0x88, 0x63, 0xff},
	Highlight:  color.RGBA{0xcd, 0xd2, 0x6a, 0xff},
	Background: color.RGBA{0x31, 0x2e, 0x2b, 0xff},
	Label:      color.RGBA{0xe0, 0xe0, 0xe0, 0xff},
}

// HexTheme is a Theme written as "#rrggbb" or "#rrggbbaa" strings, the way
// it appears in configuration files. Empty fields keep the default color.
type HexTheme struct {
	Light      string `yaml:"light,omitempty"`
	Dark       string `yaml:"dark,omitempty"`
	Highlight  string `yaml:"highlight,omitempty"`
	Background string `yaml:"background,omitempty"`
	Label      string `yaml:"label,omitempty"`
}

// Theme parses the hex theme on top of DefaultTheme.
func (hex HexTheme) Theme() (Theme, error) {
	theme := DefaultTheme

	fields := []struct {
		hex   string
		color *color.RGBA
	}{
		{hex.Light, &theme.Light},
		{hex.Dark, &theme.Dark},
		{hex.Highlight, &theme.Highlight},
		{hex.Background, &theme.Background},
		{hex.Label, &theme.Label},
	}

	for _, field := range fields {
		if field.hex == "" {
			continue
		}

		c, err := ParseHexColor(field.hex)
		if err != nil {
			return Theme{}, err
		}

		*field.color = c
	}

	return theme, nil
}

// ParseHexColor parses a "#rrggbb" or "#rrggbbaa" color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "ff"
	}

	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats a color as "#rrggbb", or "#rrggbbaa" if it is translucent.
func Hex(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}

	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
