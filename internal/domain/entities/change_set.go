package entities

import (
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DependencyGroup names a batch of dependencies updated as one unit.
type DependencyGroup struct {
	Name string `yaml:"name"`
}

// ChangedFile is one manifest touched by an update. Directory overrides the
// directory derived from the path when set.
type ChangedFile struct {
	Path      string `yaml:"path"`
	Directory string `yaml:"directory,omitempty"`
}

// Dir returns the directory the file lives in, normalized to a leading
// slash, with "/" meaning the repository root.
func (f ChangedFile) Dir() string {
	if f.Directory != "" {
		return f.Directory
	}
	dir := path.Dir(strings.TrimPrefix(f.Path, "/"))
	if dir == "." {
		return "/"
	}
	return "/" + dir
}

// Nested reports whether the file lives below the repository root.
func (f ChangedFile) Nested() bool {
	return strings.Contains(strings.TrimPrefix(f.Path, "/"), "/")
}

// ChangeSet is one dependency update: the changed dependencies, the manifest
// files they were changed in, and optional grouping, advisory, and metadata
// context.
type ChangeSet struct {
	Dependencies    []Dependency                  `yaml:"dependencies"`
	Files           []ChangedFile                 `yaml:"files,omitempty"`
	Group           *DependencyGroup              `yaml:"group,omitempty"`
	Vulnerabilities VulnerabilityIndex            `yaml:"vulnerabilities,omitempty"`
	PackageManager  string                        `yaml:"package_manager,omitempty"`
	Metadata        map[string]DependencyMetadata `yaml:"metadata,omitempty"`
}

// Validate checks the change set holds the minimum input for rendering.
func (s ChangeSet) Validate() error {
	if len(s.Dependencies) == 0 {
		return NewContractError("change set must contain at least one dependency")
	}
	return nil
}

// UniqueDependencies returns the dependencies deduplicated by name, keeping
// the first occurrence of each.
func (s ChangeSet) UniqueDependencies() []Dependency {
	seen := make(map[string]bool, len(s.Dependencies))
	unique := make([]Dependency, 0, len(s.Dependencies))
	for _, dep := range s.Dependencies {
		if seen[dep.Name] {
			continue
		}
		seen[dep.Name] = true
		unique = append(unique, dep)
	}
	return unique
}

// Directory returns the directory of the first changed file, or "/" when no
// files are recorded.
func (s ChangeSet) Directory() string {
	if len(s.Files) == 0 {
		return "/"
	}
	return s.Files[0].Dir()
}

// LoadChangeSet reads and parses a change set file.
func LoadChangeSet(path string) (ChangeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChangeSet{}, fmt.Errorf("failed to read change set file %q: %w", path, err)
	}

	var set ChangeSet
	if unmarshalErr := yaml.Unmarshal(data, &set); unmarshalErr != nil {
		return ChangeSet{}, fmt.Errorf("failed to parse change set file: %w", unmarshalErr)
	}

	if validateErr := set.Validate(); validateErr != nil {
		return ChangeSet{}, validateErr
	}

	return set, nil
}
