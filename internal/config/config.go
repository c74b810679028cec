// Package config loads runner settings from an optional YAML file.
//
// File format:
//
//	inputs: ./inputs
//	mode: example        # example | real
//	database: advent.db  # optional; enables run history
//	day2:
//	  strategy: adjacent # adjacent | all_pairs
//
// Unknown keys are rejected. After decoding, the values are checked against
// an embedded CUE schema, so a bad mode or strategy is reported with the
// offending field.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/advent/internal/day2"
	"github.com/roach88/advent/internal/input"
	"github.com/roach88/advent/internal/solution"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "advent.yaml"

//go:embed schema.cue
var schemaCUE string

// Config is the decoded file.
type Config struct {
	Inputs   string `yaml:"inputs" json:"inputs"`
	Mode     string `yaml:"mode" json:"mode"`
	Database string `yaml:"database,omitempty" json:"database,omitempty"`
	Day2     Day2   `yaml:"day2" json:"day2"`
}

// Day2 holds settings for the box-ID matcher.
type Day2 struct {
	Strategy string `yaml:"strategy" json:"strategy"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Inputs: input.DefaultDir,
		Mode:   input.Example.String(),
		Day2:   Day2{Strategy: day2.Adjacent.String()},
	}
}

// Load reads path over the defaults. If path is DefaultPath and the file
// does not exist, the defaults are returned unchanged; any other missing
// path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg against the embedded CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// ModeValue returns the parsed fixture mode.
func (c Config) ModeValue() (input.Mode, error) {
	return input.ParseMode(c.Mode)
}

// SolverOptions returns the per-run solver settings.
func (c Config) SolverOptions() (solution.Options, error) {
	s, err := day2.ParseStrategy(c.Day2.Strategy)
	if err != nil {
		return solution.Options{}, err
	}
	return solution.Options{Strategy: s}, nil
}

// formatCUEError keeps the first CUE error, which names the failing field.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	return errors.New(errs[0].Error())
}
