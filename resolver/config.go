// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package resolver

import (
	"io/ioutil"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// fileConfig is the on-disk shape of the routing table.  The YAML file
// is decoded generically first and then mapped onto this struct, so
// unrelated top-level keys in a shared configuration file are ignored.
type fileConfig struct {
	Routes Templates `mapstructure:"routes"`
}

// Parse builds a Resolver from YAML configuration bytes of the form
//
//     routes:
//       order:
//         self: /orders/{id}
//         items: /orders/{id}/items
func Parse(data []byte) (*Resolver, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var config fileConfig
	if err := mapstructure.Decode(raw, &config); err != nil {
		return nil, err
	}
	return New(config.Routes)
}

// Load reads a YAML routing-table file and builds a Resolver from it.
// This happens once at process startup; the result never changes.
func Load(filename string) (*Resolver, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
