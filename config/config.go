// Package config loads editor-core settings from TOML. Hosts embedding the
// core point it at a config file (or any io.Reader) and build buffers and
// editor states from the result; a missing file yields the defaults.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Umair-Engn/fresh/buffer"
	"github.com/Umair-Engn/fresh/editor"
)

// Config holds the settings the editing core consumes.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Editing  Editing  `toml:"editing"`
}

// Viewport is the initial viewport geometry handed to EditorState. The
// core stores it opaquely for rendering collaborators.
type Viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Editing holds buffer behavior settings.
type Editing struct {
	// BoundaryCheck rejects edits at offsets inside multi-byte sequences.
	BoundaryCheck bool `toml:"boundary_check"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 80, Height: 24},
	}
}

// Load reads configuration from a TOML file. A missing file is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, data)
}

// LoadReader reads configuration from an io.Reader.
func LoadReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return parse("<reader>", data)
}

func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", source, err)
	}

	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.Viewport.Width <= 0 {
		return fmt.Errorf("viewport width must be positive, got %d", c.Viewport.Width)
	}
	if c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport height must be positive, got %d", c.Viewport.Height)
	}
	return nil
}

// BufferOptions translates the configuration into buffer options.
func (c Config) BufferOptions() []buffer.Option {
	var opts []buffer.Option
	if c.Editing.BoundaryCheck {
		opts = append(opts, buffer.WithBoundaryCheck())
	}
	return opts
}

// NewEditorState builds an editor state over the given initial text using
// the configured buffer options and viewport.
func (c Config) NewEditorState(text string) *editor.EditorState {
	buf := buffer.FromString(text, c.BufferOptions()...)
	return editor.New(buf, c.Viewport.Width, c.Viewport.Height)
}
