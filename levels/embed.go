package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.properties
var LevelsFS embed.FS

// DefaultMap is the map a session starts on when none is named.
const DefaultMap = "map-1.properties"

// LoadFromFS parses an embedded map.
func LoadFromFS(name string) (Description, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return ParseBytes(data), nil
}

// LoadFile parses a map from disk. A name without a directory is looked up in
// the working directory, then in levels/, then among the embedded maps.
func LoadFile(name string) (Description, error) {
	data, err := os.ReadFile(name)
	if err == nil {
		return ParseBytes(data), nil
	}
	if !os.IsNotExist(err) || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	if data, err := os.ReadFile(filepath.Join("levels", name)); err == nil {
		return ParseBytes(data), nil
	}
	return LoadFromFS(name)
}

// List returns the embedded map names in campaign order.
func List() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".properties" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
