//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/msgforge/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ChangeSetBuilder helps create test change sets with a fluent interface.
type ChangeSetBuilder struct {
	*testkit.BaseBuilder
	dependencies    []entities.Dependency
	files           []entities.ChangedFile
	group           *entities.DependencyGroup
	vulnerabilities entities.VulnerabilityIndex
	metadata        map[string]entities.DependencyMetadata
	packageManager  string
}

// NewChangeSetBuilder creates a new change set builder with sensible defaults.
func NewChangeSetBuilder() *ChangeSetBuilder {
	return &ChangeSetBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		dependencies:   []entities.Dependency{NewDependencyBuilder().BuildDependency()},
		files:          []entities.ChangedFile{{Path: "/go.mod"}},
		packageManager: "go_modules",
	}
}

// WithDependencies replaces the dependency list.
func (b *ChangeSetBuilder) WithDependencies(dependencies ...entities.Dependency) *ChangeSetBuilder {
	b.dependencies = dependencies
	return b
}

// WithFiles replaces the changed file list.
func (b *ChangeSetBuilder) WithFiles(files ...entities.ChangedFile) *ChangeSetBuilder {
	b.files = files
	return b
}

// WithGroup marks the change set as a grouped update.
func (b *ChangeSetBuilder) WithGroup(name string) *ChangeSetBuilder {
	b.group = &entities.DependencyGroup{Name: name}
	return b
}

// WithVulnerabilities sets the fixed vulnerabilities per dependency name.
func (b *ChangeSetBuilder) WithVulnerabilities(index entities.VulnerabilityIndex) *ChangeSetBuilder {
	b.vulnerabilities = index
	return b
}

// WithMetadata sets inline dependency metadata per dependency name.
func (b *ChangeSetBuilder) WithMetadata(metadata map[string]entities.DependencyMetadata) *ChangeSetBuilder {
	b.metadata = metadata
	return b
}

// WithPackageManager sets the package manager identifier.
func (b *ChangeSetBuilder) WithPackageManager(manager string) *ChangeSetBuilder {
	b.packageManager = manager
	return b
}

// Build creates the change set (satisfies testkit.Builder interface).
func (b *ChangeSetBuilder) Build() interface{} {
	return b.BuildChangeSet()
}

// BuildChangeSet creates the change set with a concrete return type.
func (b *ChangeSetBuilder) BuildChangeSet() entities.ChangeSet {
	return entities.ChangeSet{
		Dependencies:    b.dependencies,
		Files:           b.files,
		Group:           b.group,
		Vulnerabilities: b.vulnerabilities,
		Metadata:        b.metadata,
		PackageManager:  b.packageManager,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ChangeSetBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.dependencies = []entities.Dependency{NewDependencyBuilder().BuildDependency()}
	b.files = []entities.ChangedFile{{Path: "/go.mod"}}
	b.group = nil
	b.vulnerabilities = nil
	b.metadata = nil
	b.packageManager = "go_modules"
	return b
}

// Clone creates a deep copy of the ChangeSetBuilder.
func (b *ChangeSetBuilder) Clone() testkit.Builder {
	clone := &ChangeSetBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		dependencies:   append([]entities.Dependency(nil), b.dependencies...),
		files:          append([]entities.ChangedFile(nil), b.files...),
		group:          b.group,
		packageManager: b.packageManager,
	}
	if b.group != nil {
		group := *b.group
		clone.group = &group
	}
	if b.vulnerabilities != nil {
		clone.vulnerabilities = make(entities.VulnerabilityIndex, len(b.vulnerabilities))
		for name, vulns := range b.vulnerabilities {
			clone.vulnerabilities[name] = append([]entities.Vulnerability(nil), vulns...)
		}
	}
	if b.metadata != nil {
		clone.metadata = make(map[string]entities.DependencyMetadata, len(b.metadata))
		for name, meta := range b.metadata {
			clone.metadata[name] = meta
		}
	}
	return clone
}
