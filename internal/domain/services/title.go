package services

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// PRName renders the pull request title: the scenario-specific name with the
// configured prefix and capitalization applied.
func (it *MessageComposer) PRName(ctx context.Context) (string, error) {
	if err := it.changeSet.Validate(); err != nil {
		return "", err
	}

	name, err := it.baseName(ctx)
	if err != nil {
		return "", err
	}

	policy := it.currentPrefixPolicy(ctx)
	if policy.CapitalizeFirstWord {
		name = capitalizeFirstWord(name)
	}
	return policy.Prefix + name, nil
}

func (it *MessageComposer) baseName(ctx context.Context) (string, error) {
	scenario, err := it.Scenario()
	if err != nil {
		return "", err
	}

	if scenario == ScenarioGrouped {
		return it.groupName(), nil
	}
	if IsLibrary(it.changeSet) {
		return it.libraryName()
	}
	return it.applicationName(scenario)
}

// groupName renders "bump the <group> group with <n> update(s)", with the
// directory suffix between the group word and the count.
func (it *MessageComposer) groupName() string {
	count := len(it.changeSet.UniqueDependencies())
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return fmt.Sprintf(
		"bump the %s group%s with %d update%s",
		it.changeSet.Group.Name, it.directorySuffix(), count, plural,
	)
}

// libraryName renders the requirement-range wording used for library
// updates.
func (it *MessageComposer) libraryName() (string, error) {
	deps := it.changeSet.Dependencies
	if len(deps) == 1 {
		newRequirement, err := newLibraryRequirement(deps[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"update %s requirement %sto %s%s",
			deps[0].HumanName(),
			fromVersionMsg(oldLibraryRequirement(deps[0])),
			newRequirement,
			it.directorySuffix(),
		), nil
	}

	return fmt.Sprintf(
		"update requirements for %s%s",
		joinWithAnd(it.uniqueNames()), it.directorySuffix(),
	), nil
}

// applicationName renders the version-bump wording used for application
// updates.
func (it *MessageComposer) applicationName(scenario Scenario) (string, error) {
	deps := it.changeSet.Dependencies

	switch scenario {
	case ScenarioSingle:
		return fmt.Sprintf(
			"bump %s %sto %s%s",
			deps[0].HumanName(),
			fromVersionMsg(previousVersion(deps[0])),
			newVersion(deps[0]),
			it.directorySuffix(),
		), nil
	case ScenarioProperty:
		property, err := propertyName(it.changeSet)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"bump %s %sto %s%s",
			property,
			fromVersionMsg(previousVersion(deps[0])),
			newVersion(deps[0]),
			it.directorySuffix(),
		), nil
	case ScenarioDependencySet:
		setName, err := dependencySetName(it.changeSet)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"bump %s dependency set %sto %s%s",
			setName,
			fromVersionMsg(previousVersion(deps[0])),
			newVersion(deps[0]),
			it.directorySuffix(),
		), nil
	case ScenarioGrouped, ScenarioMultidependency, ScenarioTransitiveRemoved, ScenarioTransitiveMixed:
	}

	return fmt.Sprintf(
		"bump %s%s",
		joinWithAnd(it.uniqueNames()), it.directorySuffix(),
	), nil
}

// directorySuffix renders " in <dir>" when the update happened below the
// repository root.
func (it *MessageComposer) directorySuffix() string {
	dir := it.changeSet.Directory()
	if dir == "/" {
		return ""
	}
	return " in " + dir
}

func (it *MessageComposer) uniqueNames() []string {
	unique := it.changeSet.UniqueDependencies()
	names := make([]string, 0, len(unique))
	for _, dep := range unique {
		names = append(names, dep.Name)
	}
	return names
}

func capitalizeFirstWord(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(first)) + name[size:]
}
