// Package sor renders decoded SOR (Telcordia SR-4731 version 2) OTDR trace
// files as JSON or YAML.
package sor

import (
	"sor-reader/sor/dmap"
)

type (
	Format  string
	Options struct {
		Format Format
		// Indent is the number of spaces per nesting level; 0 renders JSON
		// on a single line.
		Indent int
		// Debug renders the ordered block list instead of the name-keyed map.
		Debug bool
	}
)

const (
	FormatJSON = Format("json")
	FormatYAML = Format("yaml")
)

func DefaultOptions() Options {
	return Options{
		Format: FormatJSON,
		Indent: 2,
	}
}

func IsSORFile(bs []byte) bool {
	return dmap.IsSupportedVersion(bs)
}
