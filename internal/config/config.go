// Package config holds the settings of the kcover command and reads them from
// an optional YAML file. Flags given on the command line override the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kcover/reach"
)

// Defaults used when neither a config file nor a flag sets a value.
const (
	DefaultRadius int64 = 32
	DefaultInput        = "graph.txt"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the solve command configuration.
type Config struct {
	// Input is the graph file path.
	Input string `yaml:"input"`
	// Radius is the coverage radius; must be >= 0.
	Radius int64 `yaml:"radius"`
	// Workers is the number of concurrent reachability searches; must be >= 1.
	Workers int `yaml:"workers"`
	// Strategy names the search strategy ("worklist" or "heap").
	Strategy string `yaml:"strategy"`
	// Verify re-checks the returned centers cover every vertex.
	Verify bool `yaml:"verify"`
	// Assign prints the nearest center of every vertex.
	Assign bool `yaml:"assign"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:    DefaultInput,
		Radius:   DefaultRadius,
		Workers:  1,
		Strategy: reach.StrategyWorklist.String(),
	}
}

// Read loads path on top of Default and validates the result.
func Read(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode reads a YAML document on top of Default. Unknown keys are rejected
// and an empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input must not be empty", ErrInvalidConfig)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius %d is negative", ErrInvalidConfig, c.Radius)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := reach.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// SearchStrategy returns the parsed Strategy. Call Validate first.
func (c Config) SearchStrategy() reach.Strategy {
	s, _ := reach.ParseStrategy(c.Strategy)

	return s
}
