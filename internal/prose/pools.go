// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prose

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed pools.yaml
var builtinPools []byte

// topicPlaceholder is replaced with the lowercased topic in intro and
// evaluation templates.
const topicPlaceholder = "{topic}"

// Pools holds the ordered template pools. Entries are selected by index, so
// order is part of the output format.
type Pools struct {
	Intro      []string `yaml:"intro"`
	Middle     []string `yaml:"middle"`
	Closing    []string `yaml:"closing"`
	Problem    []string `yaml:"problem"`
	Evaluation []string `yaml:"evaluation"`
}

var (
	defaultPools    *Pools
	defaultPoolsErr error
	loadDefaultOnce sync.Once
)

// DefaultPools returns the built-in pools, parsed once per process. Callers
// must not modify the returned slices.
func DefaultPools() (*Pools, error) {
	loadDefaultOnce.Do(func() {
		defaultPools, defaultPoolsErr = ParsePools(builtinPools)
	})
	return defaultPools, defaultPoolsErr
}

// LoadPools reads replacement pools from a YAML file with the same shape as
// the built-in set.
func LoadPools(path string) (*Pools, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading templates: %w", err)
	}
	p, err := ParsePools(data)
	if err != nil {
		return nil, fmt.Errorf("templates %s: %w", path, err)
	}
	return p, nil
}

// ParsePools decodes and validates a pools document.
func ParsePools(data []byte) (*Pools, error) {
	var p Pools
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that every pool has at least one non-empty template.
func (p *Pools) Validate() error {
	for _, pool := range []struct {
		name    string
		entries []string
	}{
		{"intro", p.Intro},
		{"middle", p.Middle},
		{"closing", p.Closing},
		{"problem", p.Problem},
		{"evaluation", p.Evaluation},
	} {
		if len(pool.entries) == 0 {
			return fmt.Errorf("template pool %q is empty", pool.name)
		}
		for i, e := range pool.entries {
			if e == "" {
				return fmt.Errorf("template pool %q: entry %d is empty", pool.name, i)
			}
		}
	}
	return nil
}
