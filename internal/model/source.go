// Package model defines the data structures shared by the portable builder.
package model

import "strings"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// BaseName returns the final component of a path. Both '/' and '\' are
// treated as separators so Windows paths found inside scene files resolve
// the same way on every host.
func BaseName(p string) string {
	p = strings.TrimRight(p, `/\`)

	idx := strings.LastIndexAny(p, `/\`)
	if idx < 0 {
		return p
	}

	return p[idx+1:]
}
