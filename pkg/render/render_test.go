package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"laptudirm.com/x/chessgame/pkg/assets"
	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/fen"
)

const empty = "8/8/8/8/8/8/8/8 w - - 0 1"

type text struct {
	text string
	x, y int
}

// recordingSurface wraps an RGBASurface and records the drawn text.
type recordingSurface struct {
	*RGBASurface

	texts  []text
	pastes []image.Point
	err    error
}

func (surface *recordingSurface) DrawText(s string, x, y int, face font.Face, c color.Color) {
	surface.texts = append(surface.texts, text{s, x, y})
	surface.RGBASurface.DrawText(s, x, y, face, c)
}

func (surface *recordingSurface) Paste(img image.Image, at image.Point) {
	surface.pastes = append(surface.pastes, at)
	surface.RGBASurface.Paste(img, at)
}

func (surface *recordingSurface) Encode(w io.Writer) error {
	if surface.err != nil {
		return surface.err
	}

	return surface.RGBASurface.Encode(w)
}

func newRecorder(t *testing.T, options ...Option) (*Renderer, *recordingSurface) {
	t.Helper()

	surface := &recordingSurface{}
	options = append(options, WithSurface(func(width, height int) Surface {
		surface.RGBASurface = NewRGBASurface(width, height).(*RGBASurface)
		return surface
	}))

	r, err := New(assets.Embedded(), options...)
	require.NoError(t, err)
	return r, surface
}

func move(t *testing.T, s string) *chess.Move {
	t.Helper()
	start, target, _, err := chess.ParseUCI(s)
	require.NoError(t, err)
	return &chess.Move{Start: start, Target: target}
}

func TestRenderPNG(t *testing.T) {
	r, err := New(assets.Embedded())
	require.NoError(t, err)

	data, err := r.Render(fen.StartPosition, chess.White, nil)
	require.NoError(t, err)

	config, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 500, config.Width)
	assert.Equal(t, 500, config.Height)
}

func TestGridHighlight(t *testing.T) {
	r, err := New(assets.Embedded())
	require.NoError(t, err)

	for _, perspective := range []chess.Player{chess.White, chess.Black} {
		for _, mov := range []string{"e2e4", "a1h8", "h1a8", "b7b8", "g1f3"} {
			last := move(t, mov)

			board, err := r.Grid(fen.StartPosition, perspective, last)
			require.NoError(t, err)

			highlighted := 0
			for rank := range board {
				for file, cell := range board[rank] {
					label := chess.ViewSquare(file, rank, perspective).String()
					want := label == last.Start.String() || label == last.Target.String()
					assert.Equal(t, want, cell.Highlighted, "%s %s %s", perspective, mov, label)

					if cell.Highlighted {
						highlighted++
					}
				}
			}

			assert.Equal(t, 2, highlighted)
		}
	}

	board, err := r.Grid(fen.StartPosition, chess.White, nil)
	require.NoError(t, err)
	for rank := range board {
		for _, cell := range board[rank] {
			assert.False(t, cell.Highlighted)
		}
	}
}

func TestGridPerspectiveSymmetry(t *testing.T) {
	r, err := New(assets.Embedded())
	require.NoError(t, err)

	white, err := r.Grid(fen.StartPosition, chess.White, nil)
	require.NoError(t, err)
	black, err := r.Grid(fen.StartPosition, chess.Black, nil)
	require.NoError(t, err)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			reflected := black[7-rank][7-file]
			assert.Equal(t, white[rank][file].Piece, reflected.Piece)
			assert.Equal(t, white[rank][file].Square, reflected.Square)
			assert.Equal(t, white[rank][file].Dark, reflected.Dark)
		}
	}

	assert.Equal(t, "a8", white[0][0].Square.String())
	assert.Equal(t, "h1", black[0][0].Square.String())
	assert.False(t, white[0][0].Dark, "a8 is a light square")
	assert.True(t, white[7][0].Dark, "a1 is a dark square")
	assert.Equal(t, chess.NewPiece(chess.Black, chess.Rook), white[0][0].Piece)
	assert.Equal(t, chess.NewPiece(chess.White, chess.Rook), black[0][0].Piece)
}

func TestRenderHighlightPixels(t *testing.T) {
	r, surface := newRecorder(t)

	_, err := r.Render(fen.StartPosition, chess.Black, move(t, "e2e4"))
	require.NoError(t, err)

	geometry := r.Geometry()
	img := surface.Image()
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			corner := geometry.Cell(file, rank).Min.Add(image.Pt(1, 1))
			got := img.RGBAAt(corner.X, corner.Y)

			sq := chess.ViewSquare(file, rank, chess.Black).String()
			switch {
			case sq == "e2" || sq == "e4":
				assert.Equal(t, DefaultTheme.Highlight, got, sq)
			case rank%2 != file%2:
				assert.Equal(t, DefaultTheme.Dark, got, sq)
			default:
				assert.Equal(t, DefaultTheme.Light, got, sq)
			}
		}
	}
}

func TestRenderLabels(t *testing.T) {
	tests := []struct {
		perspective chess.Player
		ranks       string
		files       string
	}{
		{chess.White, "87654321", "abcdefgh"},
		{chess.Black, "12345678", "hgfedcba"},
	}

	for _, tt := range tests {
		t.Run(tt.perspective.String(), func(t *testing.T) {
			r, surface := newRecorder(t)

			_, err := r.Render(empty, tt.perspective, nil)
			require.NoError(t, err)
			require.Len(t, surface.texts, 16)

			geometry := r.Geometry()

			var ranks, files strings.Builder
			for _, label := range surface.texts {
				switch {
				case label.x < geometry.LeftMargin:
					ranks.WriteString(label.text)
					assert.Less(t, label.y, 8*geometry.SquareSize, label.text)
				default:
					files.WriteString(label.text)
					assert.Greater(t, label.y, 8*geometry.SquareSize, label.text)
				}
			}

			assert.Equal(t, tt.ranks, ranks.String())
			assert.Equal(t, tt.files, files.String())
		})
	}
}

func TestRenderPastesCentered(t *testing.T) {
	r, surface := newRecorder(t)

	_, err := r.Render("4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, nil)
	require.NoError(t, err)

	assert.Equal(t, []image.Point{
		{X: 20 + 4*60 + 6, Y: 6},
		{X: 20 + 4*60 + 6, Y: 7*60 + 6},
	}, surface.pastes)
}

func TestRenderEmptyBoardLoadsNoSprites(t *testing.T) {
	var loaded []string
	loader := assets.LoaderFunc(func(path string) ([]byte, error) {
		loaded = append(loaded, path)
		return assets.Embedded().Load(path)
	})

	r, err := New(loader)
	require.NoError(t, err)

	_, err = r.Render(empty, chess.White, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{assets.FontPath}, loaded)
}

func TestRenderAssetFailures(t *testing.T) {
	tests := []struct {
		name     string
		loader   assets.Loader
		notFound bool
	}{
		{
			name: "missing sprite",
			loader: assets.LoaderFunc(func(path string) ([]byte, error) {
				if path == assets.SpritePath("black", "dark", "queen") {
					return nil, assets.ErrNotFound
				}
				return assets.Embedded().Load(path)
			}),
			notFound: true,
		},
		{
			name: "malformed sprite",
			loader: assets.LoaderFunc(func(path string) ([]byte, error) {
				if strings.HasSuffix(path, "/knight.png") {
					return []byte("not a png"), nil
				}
				return assets.Embedded().Load(path)
			}),
		},
		{
			name: "missing font",
			loader: assets.LoaderFunc(func(path string) ([]byte, error) {
				if path == assets.FontPath {
					return nil, assets.ErrNotFound
				}
				return assets.Embedded().Load(path)
			}),
			notFound: true,
		},
		{
			name: "malformed font",
			loader: assets.LoaderFunc(func(path string) ([]byte, error) {
				if path == assets.FontPath {
					return []byte("not a font"), nil
				}
				return assets.Embedded().Load(path)
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := false
			r, err := New(tt.loader, WithSurface(func(width, height int) Surface {
				encoded = true
				return NewRGBASurface(width, height)
			}))
			require.NoError(t, err)

			data, err := r.Render(fen.StartPosition, chess.White, nil)
			assert.ErrorIs(t, err, ErrAssetUnavailable)
			assert.Equal(t, tt.notFound, errors.Is(err, assets.ErrNotFound))
			assert.Nil(t, data)
			assert.False(t, encoded, "no surface is created before all assets load")
		})
	}
}

func TestRenderEncodingFailure(t *testing.T) {
	r, surface := newRecorder(t)
	surface.err = errors.New("disk full")

	data, err := r.Render(fen.StartPosition, chess.White, nil)
	assert.ErrorIs(t, err, ErrEncodingFailure)
	assert.NotErrorIs(t, err, ErrAssetUnavailable)
	assert.Nil(t, data)
}

func TestRenderMalformedPosition(t *testing.T) {
	r, err := New(assets.Embedded())
	require.NoError(t, err)

	_, err = r.Render("9/8/8/8/8/8/8/8 w - - 0 1", chess.White, nil)
	assert.ErrorIs(t, err, fen.ErrMalformedPosition)

	_, err = r.RenderSVG("8/8/8/8/8/8/8 w - - 0 1", chess.White, nil)
	assert.ErrorIs(t, err, fen.ErrMalformedPosition)
}

func TestRenderScalesSprites(t *testing.T) {
	geometry := DefaultGeometry
	geometry.SquareSize = 40
	geometry.SpriteSize = 32

	r, surface := newRecorder(t, WithGeometry(geometry))

	_, err := r.Render("4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20+8*40, 8*40+20), surface.Image().Bounds())
	assert.Equal(t, image.Pt(20+4*40+4, 4), surface.pastes[0])
}

func TestRenderSVG(t *testing.T) {
	r, err := New(assets.Embedded())
	require.NoError(t, err)

	data, err := r.RenderSVG(fen.StartPosition, chess.White, move(t, "e2e4"))
	require.NoError(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `width="500" height="500"`)
	assert.Equal(t, 32, strings.Count(doc, "<image "))
	assert.Equal(t, 32, strings.Count(doc, "data:image/png;base64,"))
	assert.Equal(t, 2, strings.Count(doc, "fill:"+Hex(DefaultTheme.Highlight)))
	assert.Equal(t, 16, strings.Count(doc, "<text "))

	broken := assets.LoaderFunc(func(path string) ([]byte, error) {
		if strings.HasPrefix(path, "pieces/") {
			return nil, assets.ErrNotFound
		}
		return assets.Embedded().Load(path)
	})

	r, err = New(broken)
	require.NoError(t, err)

	_, err = r.RenderSVG(fen.StartPosition, chess.White, nil)
	assert.ErrorIs(t, err, ErrAssetUnavailable)
}

func TestGeometryValidate(t *testing.T) {
	require.NoError(t, DefaultGeometry.Validate())
	assert.Equal(t, 500, DefaultGeometry.Width())
	assert.Equal(t, 500, DefaultGeometry.Height())

	broken := []func(*Geometry){
		func(g *Geometry) { g.SquareSize = 0 },
		func(g *Geometry) { g.SpriteSize = 61 },
		func(g *Geometry) { g.SpriteSize = 0 },
		func(g *Geometry) { g.LeftMargin = 0 },
		func(g *Geometry) { g.FontSize = 0 },
		func(g *Geometry) { g.FontSize = 24 },
		func(g *Geometry) { g.BottomMargin = 10 },
	}

	for i, breakGeometry := range broken {
		geometry := DefaultGeometry
		breakGeometry(&geometry)
		assert.ErrorIs(t, geometry.Validate(), ErrInvalidGeometry, i)

		_, err := New(assets.Embedded(), WithGeometry(geometry))
		assert.ErrorIs(t, err, ErrInvalidGeometry, i)
	}
}

func TestGeometryLayout(t *testing.T) {
	g := DefaultGeometry

	assert.Equal(t, image.Rect(20, 0, 80, 60), g.Cell(0, 0))
	assert.Equal(t, image.Rect(440, 420, 500, 480), g.Cell(7, 7))
	assert.Equal(t, image.Rect(0, 60, 20, 120), g.RankLabel(1))
	assert.Equal(t, image.Rect(80, 480, 140, 500), g.FileLabel(1))

	for i := 0; i < 8; i++ {
		assert.False(t, g.RankLabel(i).Overlaps(g.Cell(0, i)))
		assert.False(t, g.FileLabel(i).Overlaps(g.Cell(i, 7)))
	}
}

func TestTheme(t *testing.T) {
	c, err := ParseHexColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0xff}, c)
	assert.Equal(t, "#102030", Hex(c))

	c, err = ParseHexColor("10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0x40}, c)
	assert.Equal(t, "#10203040", Hex(c))

	for _, s := range []string{"", "#12345", "#gggggg", "#1234567890"} {
		_, err := ParseHexColor(s)
		assert.ErrorIs(t, err, ErrInvalidColor, s)
	}

	theme, err := HexTheme{Highlight: "#ff0000"}.Theme()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, theme.Highlight)
	assert.Equal(t, DefaultTheme.Light, theme.Light)

	_, err = HexTheme{Dark: "dark brown"}.Theme()
	assert.ErrorIs(t, err, ErrInvalidColor)
}
