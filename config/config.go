// SPDX-License-Identifier: MIT
// Package: siroap/config
//
// config.go - run configuration, defaults and validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/siroap/photonic"
)

// ErrInvalid indicates a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config describes one mesh run.
type Config struct {
	Mesh      MeshConfig       `yaml:"mesh"`
	BTU       BTUConfig        `yaml:"btu"`
	States    map[string][]any `yaml:"states"`
	Sources   []int            `yaml:"sources" validate:"dive,min=0"`
	Detectors []int            `yaml:"detectors" validate:"dive,min=0"`
	Sweep     SweepConfig      `yaml:"sweep"`
	Log       LogConfig        `yaml:"log"`
}

// MeshConfig holds the lattice dimensions.
type MeshConfig struct {
	Rows int `yaml:"rows" validate:"min=1,max=64"`
	Cols int `yaml:"cols" validate:"min=1,max=64"`
}

// BTUConfig holds the physics shared by every cell.
type BTUConfig struct {
	Neff      float64 `yaml:"neff" validate:"gt=0"`
	Ng        float64 `yaml:"ng" validate:"gt=0"`
	WL0       float64 `yaml:"wl0" validate:"gt=0"`
	Length    float64 `yaml:"length" validate:"gte=0"`
	Loss      float64 `yaml:"loss" validate:"gte=0"`
	Trainable bool    `yaml:"trainable"`
}

// SweepConfig selects the solve points.
//
// Without OffsetGHz it is an inclusive wavelength sweep from Start to Stop
// in meters. With OffsetGHz = [lo, hi] it is a frequency sweep of Points
// offsets from lo to hi GHz around Center: "wl0" is c/wl0, "fc" is
// c/(ng·wl0), the reference frequency of the mesh design sweeps.
type SweepConfig struct {
	Start     float64   `yaml:"start" validate:"gt=0"`
	Stop      float64   `yaml:"stop" validate:"gtefield=Start"`
	Points    int       `yaml:"points" validate:"min=1,max=100000"`
	Center    string    `yaml:"center" validate:"oneof=wl0 fc"`
	OffsetGHz []float64 `yaml:"offset_ghz" validate:"omitempty,len=2"`
}

// Frequency reports whether the sweep runs over frequency offsets.
func (s SweepConfig) Frequency() bool { return len(s.OffsetGHz) == 2 }

// LogConfig selects the log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the reference run: a 1x1 mesh of default BTUs, no
// states, source 0, detector 1, a single wavelength at 1550 nm.
func Default() Config {
	p := photonic.DefaultBTUParams()
	return Config{
		Mesh: MeshConfig{Rows: 1, Cols: 1},
		BTU: BTUConfig{
			Neff: p.Neff, Ng: p.Ng, WL0: p.WL0,
			Length: p.Length, Loss: p.Loss, Trainable: true,
		},
		Sources:   []int{0},
		Detectors: []int{1},
		Sweep:     SweepConfig{Start: p.WL0, Stop: p.WL0, Points: 1, Center: "wl0"},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads and validates the YAML file at path over Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML over Default and validates the result. An empty
// document yields Default.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks struct tags and the boundary index range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("Validate: %s: %w", describe(err), ErrInvalid)
	}
	if c.Sweep.Frequency() && c.Sweep.OffsetGHz[1] < c.Sweep.OffsetGHz[0] {
		return fmt.Errorf("Validate: Sweep.OffsetGHz: %v is not ascending: %w", c.Sweep.OffsetGHz, ErrInvalid)
	}
	n := 4 * (c.Mesh.Rows + c.Mesh.Cols)
	for _, idx := range append(append([]int(nil), c.Sources...), c.Detectors...) {
		if idx >= n {
			return fmt.Errorf("Validate: boundary index %d not in [0,%d): %w", idx, n, ErrInvalid)
		}
	}
	return nil
}

// describe renders the first validation failure as "Field: reason".
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s: must be at least %s, got %v", field, e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s: must not exceed %s, got %v", field, e.Param(), e.Value())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s, got %v", field, e.Param(), e.Value())
	case "gtefield":
		return fmt.Sprintf("%s: must be >= %s, got %v", field, e.Param(), e.Value())
	case "len":
		return fmt.Sprintf("%s: must have %s elements, got %v", field, e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s], got %v", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s: failed %s", field, e.Tag())
	}
}

// Params returns the BTU physics as photonic parameters.
func (c Config) Params() photonic.Params {
	return photonic.Params{
		Length: c.BTU.Length, Loss: c.BTU.Loss,
		Neff: c.BTU.Neff, Ng: c.BTU.Ng, WL0: c.BTU.WL0,
	}
}

// Factory returns a mesh cell factory producing BTUs with the configured
// physics in the cross state.
func (c Config) Factory() (func() *photonic.BTU, error) {
	p := c.Params()
	ph := photonic.PhaseState{Trainable: c.BTU.Trainable}
	if _, err := photonic.NewBTU(p, ph); err != nil {
		return nil, fmt.Errorf("Factory: %w", err)
	}
	return func() *photonic.BTU {
		b, _ := photonic.NewBTU(p, ph) // validated above
		return b
	}, nil
}

// Wavelengths expands the sweep into solve wavelengths.
func (c Config) Wavelengths() ([]float64, error) {
	wls, _, err := c.SweepPoints()
	return wls, err
}

// CenterFrequency returns the frequency the offset sweep is centered on.
func (c Config) CenterFrequency() float64 {
	if c.Sweep.Center == "fc" {
		return photonic.GroupFrequency(c.Params())
	}
	return photonic.CarrierFrequency(c.BTU.WL0)
}

// SweepPoints expands the sweep. offsetsGHz is nil for wavelength sweeps
// and otherwise holds the offset of each wavelength from CenterFrequency.
func (c Config) SweepPoints() (wls, offsetsGHz []float64, err error) {
	if !c.Sweep.Frequency() {
		wls, err = photonic.Wavelengths(c.Sweep.Start, c.Sweep.Stop, c.Sweep.Points)
		return wls, nil, err
	}
	lo, hi := c.Sweep.OffsetGHz[0]*photonic.GHz, c.Sweep.OffsetGHz[1]*photonic.GHz
	wls, offsets, err := photonic.FrequencySweep(c.CenterFrequency(), lo, hi, c.Sweep.Points)
	if err != nil {
		return nil, nil, fmt.Errorf("SweepPoints: %w", err)
	}
	floats.Scale(1/photonic.GHz, offsets)
	return wls, offsets, nil
}

// SlogLevel maps Log.Level onto slog.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
