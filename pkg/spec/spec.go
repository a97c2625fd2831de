package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a generation spec from a YAML file.
func Load(path string) (*GenerationSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var s GenerationSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &s, nil
}

// LoadProject loads a generation spec from a project directory.
// It looks for scene.yaml in the given directory.
func LoadProject(projectDir string) (*GenerationSpec, error) {
	specPath := filepath.Join(projectDir, "scene.yaml")
	return Load(specPath)
}
