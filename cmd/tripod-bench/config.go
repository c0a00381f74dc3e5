package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// benchConfig controls a benchmark run. It may be read from a TOML file and
// is then overridden by command line flags.
type benchConfig struct {
	Sizes      []int  `toml:"sizes"`      // numbers of elements to test with
	Rounds     int    `toml:"rounds"`     // split/append round trips per size
	Seed       uint64 `toml:"seed"`       // for the random number generator
	TraceLevel string `toml:"tracelevel"` // Error, Info or Debug
	Outline    bool   `toml:"outline"`    // print outlines of small trees
}

func defaultConfig() benchConfig {
	return benchConfig{
		Sizes:      []int{1000, 10000, 100000},
		Rounds:     1000,
		Seed:       1,
		TraceLevel: "Error",
	}
}

// loadConfig reads a TOML configuration file on top of the defaults. An
// empty path yields the defaults.
func loadConfig(path string) (benchConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (cfg benchConfig) validate() error {
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("no tree sizes configured")
	}
	for _, n := range cfg.Sizes {
		if n <= 0 {
			return fmt.Errorf("invalid tree size %d", n)
		}
	}
	if cfg.Rounds < 0 {
		return fmt.Errorf("invalid number of rounds %d", cfg.Rounds)
	}
	return nil
}

// parseSizes parses a comma separated list of tree sizes.
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid tree size %q", f)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
