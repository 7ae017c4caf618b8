package domainsgen

import (
	"os"
	"path/filepath"
)

// Write replaces the file at path with the artifact source, creating parent
// directories as needed, and returns the number of domains written.
func Write(a Artifact, path string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, outputError("create output dir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, a.Source, 0o644); err != nil {
		return 0, outputError("write generated file", path, err)
	}
	return a.Count(), nil
}
