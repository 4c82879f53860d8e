// Package names supplies the candidate names shown by the list screen.
package names

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Repository supplies an immutable ordered sequence of names.
type Repository interface {
	// Names returns the names in display order. The slice is a copy.
	Names() []string
}

// defaultNames is the built-in list used when no names file is configured.
var defaultNames = []string{
	"Kennedy",
	"John",
	"Mathew",
	"Sampson",
	"Anita",
	"Bright",
	"Freeman",
	"Camela",
	"Peter",
}

// Static is an in-memory Repository.
type Static struct {
	names []string
}

// NewStatic creates a repository holding a copy of names.
func NewStatic(names ...string) *Static {
	cp := make([]string, len(names))
	copy(cp, names)
	return &Static{names: cp}
}

// Default returns a repository with the built-in name list.
func Default() *Static {
	return NewStatic(defaultNames...)
}

// Names returns a copy of the stored names.
func (s *Static) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of names.
func (s *Static) Len() int {
	return len(s.names)
}

type file struct {
	Names []string `toml:"names"`
}

// Load reads a TOML file with a top-level "names" array.
// A file without the key produces an empty repository.
func Load(path string) (*Static, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("names file %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to decode names file %s: %w", path, err)
	}
	return NewStatic(f.Names...), nil
}

// Resolve picks the repository for a run: inline names win, then the names
// file at path, then the built-in list.
func Resolve(inline []string, path string) (*Static, error) {
	switch {
	case len(inline) > 0:
		return NewStatic(inline...), nil
	case path != "":
		return Load(path)
	default:
		return Default(), nil
	}
}
