// Package config loads background configuration from YAML files, .env
// files and the process environment.
//
// A configuration file holds the options of gaussbg.Config at the top level,
// the surface backend name under "surface" and the layer specs under
// "layers":
//
//	surface: image
//	blurMethod: stackboxblur
//	blurRadius: 24
//	fpsCap: 30
//	layers:
//	  - orbs: 4
//	    radius: 40
//	    maxVelocity: 1
//	    color: "#4400ffcc"
//	    columns: 2
//
// Unknown keys are rejected. Options missing from the file keep their
// defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/gogpu/gaussbg"
	"github.com/gogpu/gaussbg/surface"
)

// ErrInvalid is returned for a configuration that cannot be decoded.
var ErrInvalid = errors.New("config: invalid")

// File is the decoded form of a configuration file.
type File struct {
	gaussbg.Config `yaml:",inline"`

	Layers []gaussbg.LayerSpec `yaml:"layers"`

	// Surface names the surface backend hosts draw on, see surface.New.
	Surface string `yaml:"surface"`
}

// Default returns the default configuration with DefaultLayers.
func Default() File {
	return File{
		Config:  gaussbg.DefaultConfig(),
		Layers:  DefaultLayers(),
		Surface: surface.ImageBackend,
	}
}

// DefaultLayers returns a three-layer set used when no layers are
// configured.
func DefaultLayers() []gaussbg.LayerSpec {
	return []gaussbg.LayerSpec{
		{Orbs: 4, Radius: 40, MaxVelocity: 1.5, Color: "#5c2d91cc", Columns: 4},
		{Orbs: 3, Radius: 55, MaxVelocity: 1, Color: "#e3008c99", Columns: 3},
		{Orbs: 2, Radius: 70, MaxVelocity: 0.5, Color: "#0078d4ff"},
	}
}

// Decode reads a configuration from r on top of the defaults.
// Layers given in r replace DefaultLayers entirely.
func Decode(r io.Reader) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}

	// The strict pass rejects unknown keys and reads the layers. An inline
	// struct is decoded from its zero value, so the options are decoded
	// onto the defaults in a second pass.
	var f File
	if err := decodeStrict(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	f.Config = gaussbg.DefaultConfig()

	// A null document zeroes the target, so only a mapping with keys is
	// applied.
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if len(keys) > 0 {
		if err := yaml.Unmarshal(data, &f.Config); err != nil {
			return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	if f.Layers == nil {
		f.Layers = DefaultLayers()
	}
	if f.Surface == "" {
		f.Surface = surface.ImageBackend
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func decodeStrict(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.DisallowUnknownField())
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Load reads the configuration file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate checks the options, the surface backend and every layer spec.
func (f File) Validate() error {
	if err := f.Config.Validate(); err != nil {
		return err
	}
	if !surface.Registered(f.Surface) {
		return fmt.Errorf("%w: unknown surface backend %q", ErrInvalid, f.Surface)
	}
	for i, l := range f.Layers {
		if l.Orbs < 0 || l.Columns < 0 || l.Rows < 0 {
			return fmt.Errorf("%w: layer %d has a negative count", ErrInvalid, i)
		}
		if _, err := gaussbg.ParseColor(l.Color); err != nil {
			return fmt.Errorf("%w: layer %d: %v", ErrInvalid, i, err)
		}
	}
	return nil
}
