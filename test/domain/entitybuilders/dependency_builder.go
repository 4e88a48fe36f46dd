//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/msgforge/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name            string
	previousVersion string
	version         string
	previousRef     string
	newRef          string
	sourceURL       string
	requirements    []entities.Requirement
	previousReqs    []entities.Requirement
	removed         bool
	topLevel        bool
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder:     testkit.NewBaseBuilder(),
		name:            "test-dependency",
		previousVersion: "1.0.0",
		version:         "2.0.0",
		sourceURL:       "https://github.com/test/dep",
		topLevel:        true,
	}
}

// WithName sets the dependency name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithPreviousVersion sets the version before the update.
func (b *DependencyBuilder) WithPreviousVersion(version string) *DependencyBuilder {
	b.previousVersion = version
	return b
}

// WithVersion sets the version after the update.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// WithRefs sets the git refs the versions resolve to.
func (b *DependencyBuilder) WithRefs(previousRef, newRef string) *DependencyBuilder {
	b.previousRef = previousRef
	b.newRef = newRef
	return b
}

// WithSourceURL sets the source repository URL.
func (b *DependencyBuilder) WithSourceURL(sourceURL string) *DependencyBuilder {
	b.sourceURL = sourceURL
	return b
}

// WithRequirements sets the requirements after the update.
func (b *DependencyBuilder) WithRequirements(requirements ...entities.Requirement) *DependencyBuilder {
	b.requirements = requirements
	return b
}

// WithPreviousRequirements sets the requirements before the update.
func (b *DependencyBuilder) WithPreviousRequirements(requirements ...entities.Requirement) *DependencyBuilder {
	b.previousReqs = requirements
	return b
}

// WithRemoved marks the dependency as removed by the update.
func (b *DependencyBuilder) WithRemoved() *DependencyBuilder {
	b.removed = true
	return b
}

// WithTransitive marks the dependency as a transitive one.
func (b *DependencyBuilder) WithTransitive() *DependencyBuilder {
	b.topLevel = false
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		Name:                 b.name,
		PreviousVersion:      b.previousVersion,
		Version:              b.version,
		PreviousRef:          b.previousRef,
		NewRef:               b.newRef,
		SourceURL:            b.sourceURL,
		Requirements:         b.requirements,
		PreviousRequirements: b.previousReqs,
		Removed:              b.removed,
		TopLevel:             b.topLevel,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-dependency"
	b.previousVersion = "1.0.0"
	b.version = "2.0.0"
	b.previousRef = ""
	b.newRef = ""
	b.sourceURL = "https://github.com/test/dep"
	b.requirements = nil
	b.previousReqs = nil
	b.removed = false
	b.topLevel = true
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:            b.name,
		previousVersion: b.previousVersion,
		version:         b.version,
		previousRef:     b.previousRef,
		newRef:          b.newRef,
		sourceURL:       b.sourceURL,
		requirements:    append([]entities.Requirement(nil), b.requirements...),
		previousReqs:    append([]entities.Requirement(nil), b.previousReqs...),
		removed:         b.removed,
		topLevel:        b.topLevel,
	}
}
