package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskDir is checked before the embedded copies so edited files win.
const DiskDir = "prefabs"

const scriptsDir = "scripts"

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Load returns a spec file by name.
func Load(name string) ([]byte, error) {
	return read(specPath(name))
}

// LoadScript returns a script from the scripts directory by name.
func LoadScript(name string) ([]byte, error) {
	return read(scriptPath(name))
}

func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(rel)
}

// specPath maps "ships.yaml" or "prefabs/ships.yaml" to the embedded name.
func specPath(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), DiskDir+"/")
}

// scriptPath keeps only the base name, so any prefix resolves to scripts/.
func scriptPath(name string) string {
	if name == "" {
		return ""
	}
	return path.Join(scriptsDir, path.Base(filepath.ToSlash(name)))
}
