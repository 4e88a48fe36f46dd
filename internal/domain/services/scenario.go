package services

import (
	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// Scenario is the shape of one dependency update. Exactly one scenario is
// selected per change set, and every rendered artifact (title, body, commit
// message) is derived from the same selection.
type Scenario int

const (
	// ScenarioSingle is an update of exactly one dependency.
	ScenarioSingle Scenario = iota
	// ScenarioMultidependency is an update of several dependencies with no
	// special structure.
	ScenarioMultidependency
	// ScenarioGrouped is an update batched under a named dependency group.
	ScenarioGrouped
	// ScenarioProperty is an update driven by a shared version property.
	ScenarioProperty
	// ScenarioDependencySet is an update driven by a named dependency set.
	ScenarioDependencySet
	// ScenarioTransitiveRemoved is an update that removes at least one
	// transitive dependency.
	ScenarioTransitiveRemoved
	// ScenarioTransitiveMixed is an update mixing top-level and transitive
	// dependencies.
	ScenarioTransitiveMixed
)

// String returns the scenario identifier used in logs and reports.
func (s Scenario) String() string {
	switch s {
	case ScenarioSingle:
		return "single"
	case ScenarioMultidependency:
		return "multidependency"
	case ScenarioGrouped:
		return "grouped"
	case ScenarioProperty:
		return "multidependency_property"
	case ScenarioDependencySet:
		return "dependency_set"
	case ScenarioTransitiveRemoved:
		return "transitive_removed"
	case ScenarioTransitiveMixed:
		return "transitive_mixed"
	default:
		return "unknown"
	}
}

// ClassifyChangeSet selects the scenario for a change set. The priority
// order is fixed: grouped wins over everything, the property and
// dependency-set shapes win over the transitive ones, and single applies
// only to one-dependency sets.
func ClassifyChangeSet(set entities.ChangeSet) (Scenario, error) {
	if err := set.Validate(); err != nil {
		return ScenarioSingle, err
	}
	return classifyChangeSet(set), nil
}

func classifyChangeSet(set entities.ChangeSet) Scenario {
	switch {
	case set.Group != nil:
		return ScenarioGrouped
	case len(set.Dependencies) > 1 && hasRequirementKey(set.Dependencies[0], entities.MetadataKeyPropertyName):
		return ScenarioProperty
	case len(set.Dependencies) > 1 && hasRequirementKey(set.Dependencies[0], entities.MetadataKeyDependencySet):
		return ScenarioDependencySet
	case len(set.Dependencies) > 1 && anyRemoved(set.Dependencies):
		return ScenarioTransitiveRemoved
	case len(set.Dependencies) > 1 && mixesTopLevelAndTransitive(set.Dependencies):
		return ScenarioTransitiveMixed
	case len(set.Dependencies) > 1:
		return ScenarioMultidependency
	default:
		return ScenarioSingle
	}
}

// ValidateChangeSet runs the contract checks the renderers rely on, so
// violations surface before any rendering starts.
func ValidateChangeSet(set entities.ChangeSet) error {
	scenario, err := ClassifyChangeSet(set)
	if err != nil {
		return err
	}

	switch scenario {
	case ScenarioProperty:
		if _, propertyErr := propertyName(set); propertyErr != nil {
			return propertyErr
		}
	case ScenarioDependencySet:
		if _, setErr := dependencySetName(set); setErr != nil {
			return setErr
		}
	case ScenarioSingle:
		if IsLibrary(set) {
			if _, reqErr := newLibraryRequirement(set.Dependencies[0]); reqErr != nil {
				return reqErr
			}
		}
	case ScenarioGrouped, ScenarioMultidependency, ScenarioTransitiveRemoved, ScenarioTransitiveMixed:
	}

	return nil
}

// propertyName returns the shared version property driving the update.
func propertyName(set entities.ChangeSet) (string, error) {
	name, ok := set.Dependencies[0].RequirementMetadata(entities.MetadataKeyPropertyName)
	if !ok {
		return "", entities.NewContractError("no requirement with a property name")
	}
	return name, nil
}

// dependencySetName returns the named dependency set driving the update.
func dependencySetName(set entities.ChangeSet) (string, error) {
	name, ok := set.Dependencies[0].RequirementMetadata(entities.MetadataKeyDependencySet)
	if !ok {
		return "", entities.NewContractError("no requirement with a dependency set")
	}
	return name, nil
}

func hasRequirementKey(dep entities.Dependency, key string) bool {
	_, ok := dep.RequirementMetadata(key)
	return ok
}

func anyRemoved(deps []entities.Dependency) bool {
	for _, dep := range deps {
		if dep.Removed {
			return true
		}
	}
	return false
}

func mixesTopLevelAndTransitive(deps []entities.Dependency) bool {
	var topLevel, transitive bool
	for _, dep := range deps {
		if dep.TopLevel {
			topLevel = true
		} else {
			transitive = true
		}
	}
	return topLevel && transitive
}
