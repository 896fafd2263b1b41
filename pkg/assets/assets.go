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

// Package assets provides the font and piece sprite bytes used by the board
// renderer. Asset paths are slash separated, like "pieces/white/dark/king.png".
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// FontPath is the path of the built-in label font.
const FontPath = "fonts/goregular.ttf"

var ErrNotFound = errors.New("assets: not found")

// Loader retrieves asset bytes by path.
type Loader interface {
	Load(path string) ([]byte, error)
}

// LoaderFunc adapts an ordinary function into a Loader.
type LoaderFunc func(path string) ([]byte, error)

func (fn LoaderFunc) Load(path string) ([]byte, error) {
	return fn(path)
}

// SpritePath returns the path of the sprite of a piece of the given color
// and kind, drawn for a square of the given class ("light" or "dark").
func SpritePath(color, square, kind string) string {
	return path.Join("pieces", color, square, kind+".png")
}

//go:embed pieces
var sprites embed.FS

// Embedded returns a Loader serving the built-in piece sprites and the Go
// Regular font.
func Embedded() Loader {
	return LoaderFunc(func(name string) ([]byte, error) {
		if name == FontPath {
			return goregular.TTF, nil
		}

		data, err := fs.ReadFile(sprites, name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, ErrNotFound)
		}

		return data, nil
	})
}

// Dir returns a Loader serving assets from a directory tree.
func Dir(root string) Loader {
	return LoaderFunc(func(name string) ([]byte, error) {
		// rooting the path first keeps it inside root
		clean := path.Clean("/" + name)

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(clean)))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w: %v", name, ErrNotFound, err)
		}

		return data, nil
	})
}

// Chain returns a Loader which tries each of the given loaders in order and
// returns the first hit. Errors other than ErrNotFound stop the search.
func Chain(loaders ...Loader) Loader {
	return LoaderFunc(func(name string) ([]byte, error) {
		for _, loader := range loaders {
			data, err := loader.Load(name)
			switch {
			case err == nil:
				return data, nil
			case !errors.Is(err, ErrNotFound):
				return nil, err
			}
		}

		return nil, fmt.Errorf("load %s: %w", name, ErrNotFound)
	})
}

// CachedLoader memoizes the assets served by another Loader. It is safe for
// concurrent use. Failed loads are not cached.
type CachedLoader struct {
	loader Loader

	mu    sync.Mutex
	cache map[string][]byte
}

// Cache wraps loader in a CachedLoader.
func Cache(loader Loader) *CachedLoader {
	return &CachedLoader{
		loader: loader,
		cache:  make(map[string][]byte),
	}
}

func (c *CachedLoader) Load(name string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if data, found := c.cache[name]; found {
		return data, nil
	}

	data, err := c.loader.Load(name)
	if err != nil {
		return nil, err
	}

	c.cache[name] = data
	return data, nil
}

// Len returns the number of cached assets.
func (c *CachedLoader) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

var (
	defaultOnce   sync.Once
	defaultLoader *CachedLoader
)

// Default returns the process-wide cached loader of the built-in assets.
func Default() Loader {
	defaultOnce.Do(func() {
		defaultLoader = Cache(Embedded())
	})

	return defaultLoader
}
