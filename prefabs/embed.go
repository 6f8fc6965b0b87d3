package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is where on-disk overrides of the embedded prefabs live.
const Dir = "prefabs"

// Source says where a prefab was read from.
type Source string

const (
	SourceDisk     Source = "disk"
	SourceEmbedded Source = "embedded"
	SourceMissing  Source = "missing"
)

// Load returns the on-disk prefab when present, else the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// Origin reports which copy Load would read for name.
func Origin(name string) Source {
	clean := cleanPrefabPath(name)
	if info, err := os.Stat(diskPrefabPath(clean)); err == nil && !info.IsDir() {
		return SourceDisk
	}
	if Known(clean) {
		return SourceEmbedded
	}
	return SourceMissing
}

// Known reports whether name is one of the embedded prefabs. Only those can
// be overridden or hot reloaded.
func Known(name string) bool {
	_, err := fs.Stat(PrefabsFS, cleanPrefabPath(filepath.Base(name)))
	return err == nil
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
