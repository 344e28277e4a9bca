package output

import (
	"fmt"
	"io"
	"slices"
)

// Constructor creates an Output that renders reports onto w.
type Constructor func(w io.Writer) Output

var registry = map[string]Constructor{}

// Register adds an output constructor under the given format name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the constructor for the given format name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return ctor, nil
}

// Formats returns the names of all registered formats, sorted.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
