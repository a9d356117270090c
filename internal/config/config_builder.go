package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	layers []*Options
	err    error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		layers: make([]*Options, 0, 2),
	}
}

// build merges the layers in order; non-zero fields of later layers override
// earlier ones.
func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building options: %w", b.err)
	}

	opts := new(Options)
	for _, layer := range b.layers {
		if err := mergo.Merge(opts, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	return opts, nil
}

func (b *optionsBuilder) withDefaults() *optionsBuilder {
	b.layers = append(b.layers, DefaultOptions())
	return b
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envOpts)
	return b
}

// fillLogOptions copies fields of src into the empty fields of dst.
func fillLogOptions(dst, src LogOptions) (LogOptions, error) {
	if err := mergo.Merge(&dst, src); err != nil {
		return dst, fmt.Errorf("error merging log options: %w", err)
	}
	return dst, nil
}
