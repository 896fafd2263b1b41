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

// Package config loads the chessgame configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/chessgame/pkg/assets"
	"laptudirm.com/x/chessgame/pkg/chess"
	"laptudirm.com/x/chessgame/pkg/game/engines"
	"laptudirm.com/x/chessgame/pkg/render"
)

const Permissions = 0755

var (
	Directory string = filepath.Join(xdg.ConfigHome, "chessgame")
	File      string = filepath.Join(Directory, "config.yaml")

	AssetsDirectory string = filepath.Join(xdg.DataHome, "chessgame", "assets")
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the contents of the configuration file. Command line flags
// override the values read from it.
type Config struct {
	Engine      string `yaml:"engine"`
	Perspective string `yaml:"perspective"`

	// Assets is a directory whose files override the built-in sprites and
	// font, laid out like pieces/white/dark/king.png and fonts/goregular.ttf.
	Assets string `yaml:"assets"`
	Font   string `yaml:"font"`

	Geometry render.Geometry `yaml:"geometry"`
	Theme    render.HexTheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Engine:      engines.Default,
		Perspective: chess.White.String(),
		Assets:      AssetsDirectory,
		Font:        assets.FontPath,
		Geometry:    render.DefaultGeometry,
	}
}

// Load reads the configuration file at path on top of the defaults. A
// missing file is created with the default configuration.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, config.Dump(path)
	}

	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Dump writes the configuration to path, creating its directory.
func (config Config) Dump(path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), Permissions); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks every field of the configuration.
func (config Config) Validate() error {
	if !slices.Contains(engines.Names(), config.Engine) {
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidConfig, config.Engine)
	}

	if _, err := config.Player(); err != nil {
		return err
	}

	if err := config.Geometry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if _, err := config.Theme.Theme(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Player returns the configured perspective.
func (config Config) Player() (chess.Player, error) {
	player, err := chess.ParsePlayer(config.Perspective)
	if err != nil {
		return chess.White, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return player, nil
}

// Loader returns the asset loader for the configuration: the assets
// directory, falling back to the built-in assets.
func (config Config) Loader() assets.Loader {
	if config.Assets == "" {
		return assets.Default()
	}

	return assets.Cache(assets.Chain(assets.Dir(config.Assets), assets.Default()))
}

// Renderer creates a board renderer for the configuration.
func (config Config) Renderer(options ...render.Option) (*render.Renderer, error) {
	theme, err := config.Theme.Theme()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	font := config.Font
	if font == "" {
		font = assets.FontPath
	}

	options = append([]render.Option{
		render.WithGeometry(config.Geometry),
		render.WithTheme(theme),
		render.WithFont(font),
	}, options...)

	return render.New(config.Loader(), options...)
}
