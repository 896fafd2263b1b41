package assets

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestEmbeddedSprites(t *testing.T) {
	loader := Embedded()

	for _, color := range []string{"white", "black"} {
		for _, square := range []string{"light", "dark"} {
			for _, kind := range []string{"pawn", "knight", "bishop", "rook", "queen", "king"} {
				name := SpritePath(color, square, kind)

				data, err := loader.Load(name)
				require.NoError(t, err, name)

				img, err := png.Decode(bytes.NewReader(data))
				require.NoError(t, err, name)
				assert.Equal(t, 48, img.Bounds().Dx(), name)
				assert.Equal(t, 48, img.Bounds().Dy(), name)
			}
		}
	}
}

func TestEmbeddedFont(t *testing.T) {
	data, err := Embedded().Load(FontPath)
	require.NoError(t, err)
	assert.Equal(t, goregular.TTF, data)
}

func TestEmbeddedMissing(t *testing.T) {
	_, err := Embedded().Load("pieces/white/light/archbishop.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSpritePath(t *testing.T) {
	assert.Equal(t, "pieces/black/dark/queen.png", SpritePath("black", "dark", "queen"))
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pieces", "white", "light"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pieces", "white", "light", "king.png"), []byte("king"), 0o644))

	loader := Dir(root)

	data, err := loader.Load("pieces/white/light/king.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("king"), data)

	_, err = loader.Load("pieces/white/light/queen.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = loader.Load("../../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChain(t *testing.T) {
	override := LoaderFunc(func(name string) ([]byte, error) {
		if name == FontPath {
			return []byte("custom font"), nil
		}
		return nil, ErrNotFound
	})

	loader := Chain(override, Embedded())

	data, err := loader.Load(FontPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("custom font"), data)

	_, err = loader.Load(SpritePath("white", "dark", "rook"))
	assert.NoError(t, err)

	_, err = loader.Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	broken := errors.New("disk on fire")
	_, err = Chain(LoaderFunc(func(string) ([]byte, error) { return nil, broken }), Embedded()).Load(FontPath)
	assert.ErrorIs(t, err, broken)
}

func TestCache(t *testing.T) {
	var mu sync.Mutex
	calls := map[string]int{}

	loader := Cache(LoaderFunc(func(name string) ([]byte, error) {
		mu.Lock()
		defer mu.Unlock()

		calls[name]++
		if name == "missing" {
			return nil, ErrNotFound
		}
		return []byte(name), nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := loader.Load("a")
			assert.NoError(t, err)
			assert.Equal(t, []byte("a"), data)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls["a"])
	assert.Equal(t, 1, loader.Len())

	for i := 0; i < 2; i++ {
		_, err := loader.Load("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, 2, calls["missing"])
	assert.Equal(t, 1, loader.Len())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
