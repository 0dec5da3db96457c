package domain

import (
	"regexp"
	"strings"

	"obsportable.dev/pkg/obsportable/internal/adapter"
	m "obsportable.dev/pkg/obsportable/internal/model"
)

var driveLetterPattern = regexp.MustCompile(`^[A-Za-z]:\\`)

const uncPrefix = `\\`

// PathClassifier decides whether a document value names a file that has to
// be migrated into the assets directory.
type PathClassifier interface {
	Classify(value string) bool
	ClassifyNode(node m.Node) bool
}

type pathClassifier struct {
	fs adapter.FSAdapter
}

// NewPathClassifier constructs a PathClassifier that checks the given
// filesystem.
func NewPathClassifier(fs adapter.FSAdapter) PathClassifier {
	return &pathClassifier{fs: fs}
}

// Classify reports whether value is a migratable path. Shapes are tried in
// order:
//   - drive letter (`C:\...`): anything that exists, directories included
//   - UNC (`\\server\...`): an existing regular file
//   - anything else: an existing regular file
//
// Stat failures of any kind yield false.
func (c *pathClassifier) Classify(value string) bool {
	if value == "" {
		return false
	}

	switch {
	case driveLetterPattern.MatchString(value):
		return c.exists(value)
	case strings.HasPrefix(value, uncPrefix):
		return c.isRegularFile(value)
	}

	return c.isRegularFile(value)
}

// ClassifyNode applies Classify to string nodes; every other node is false.
func (c *pathClassifier) ClassifyNode(node m.Node) bool {
	s, ok := node.(m.String)
	if !ok {
		return false
	}

	return c.Classify(string(s))
}

func (c *pathClassifier) exists(value string) bool {
	_, err := c.fs.Stat(m.Path(value))
	return err == nil
}

func (c *pathClassifier) isRegularFile(value string) bool {
	info, err := c.fs.Stat(m.Path(value))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
