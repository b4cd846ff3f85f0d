package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the optional TOML configuration file. Boolean fields
// are pointers so an absent key never overrides a default or a flag.
type fileConfig struct {
	BaseIRI string `toml:"base_iri"`
	Format  string `toml:"format"`
	Output  string `toml:"output"`

	IncludePrivate           *bool `toml:"include_private"`
	IncludeInternal          *bool `toml:"include_internal"`
	IncludeCompilerGenerated *bool `toml:"include_compiler_generated"`
	IncludeExternalTypes     *bool `toml:"include_external_types"`
	IncludeAttributes        *bool `toml:"include_attributes"`
	XRefs                    *bool `toml:"xrefs"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
