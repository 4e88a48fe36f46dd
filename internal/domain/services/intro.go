package services

import (
	"context"
	"fmt"
)

// messageIntro renders the scenario-specific opening paragraph shared by the
// pull request body and the commit message details.
func (it *MessageComposer) messageIntro(ctx context.Context) (string, error) {
	scenario, err := it.Scenario()
	if err != nil {
		return "", err
	}

	switch scenario {
	case ScenarioGrouped:
		return it.groupIntro(ctx)
	case ScenarioProperty:
		return it.propertyIntro()
	case ScenarioDependencySet:
		return it.dependencySetIntro()
	case ScenarioTransitiveRemoved:
		return it.transitiveRemovedIntro(ctx)
	case ScenarioTransitiveMixed:
		return it.transitiveMixedIntro(ctx)
	case ScenarioMultidependency:
		if IsLibrary(it.changeSet) {
			return it.requirementsIntro(ctx)
		}
		return it.multidependencyIntro(ctx)
	case ScenarioSingle:
	}

	if IsLibrary(it.changeSet) {
		return it.requirementsIntro(ctx)
	}
	return it.bumpIntro(ctx)
}

// requirementsIntro opens library updates, single and multi alike.
func (it *MessageComposer) requirementsIntro(ctx context.Context) (string, error) {
	links, err := it.dependencyLinks(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Updates the requirements on %s to permit the latest version.",
		joinWithAnd(links),
	), nil
}

// bumpIntro opens a single application update, flagging ref-to-release
// switches and fixed vulnerabilities.
func (it *MessageComposer) bumpIntro(ctx context.Context) (string, error) {
	dep := it.changeSet.Dependencies[0]
	link, err := it.dependencyLink(ctx, dep)
	if err != nil {
		return "", err
	}

	intro := fmt.Sprintf(
		"Bumps %s %sto %s.",
		link, fromVersionMsg(previousVersion(dep)), newVersion(dep),
	)
	if switchingFromRefToRelease(dep) {
		intro += " This release includes the previously tagged commit."
	}
	intro += securityNotice(it.changeSet.Vulnerabilities.CountFor(dep.Name))
	return intro, nil
}

func (it *MessageComposer) propertyIntro() (string, error) {
	property, err := propertyName(it.changeSet)
	if err != nil {
		return "", err
	}
	dep := it.changeSet.Dependencies[0]
	return fmt.Sprintf(
		"Bumps `%s` %sto %s.",
		property, fromVersionMsg(previousVersion(dep)), newVersion(dep),
	), nil
}

func (it *MessageComposer) dependencySetIntro() (string, error) {
	setName, err := dependencySetName(it.changeSet)
	if err != nil {
		return "", err
	}
	dep := it.changeSet.Dependencies[0]
	return fmt.Sprintf(
		"Bumps `%s` dependency set %sto %s.",
		setName, fromVersionMsg(previousVersion(dep)), newVersion(dep),
	), nil
}

func (it *MessageComposer) multidependencyIntro(ctx context.Context) (string, error) {
	links, err := it.dependencyLinks(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Bumps %s. These dependencies needed to be updated together.",
		joinWithAnd(links),
	), nil
}

func (it *MessageComposer) transitiveMixedIntro(ctx context.Context) (string, error) {
	links, err := it.dependencyLinks(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Bumps %s to %s and updates ancestor %s."+
			" These dependencies need to be updated together.",
		links[0], newVersion(it.changeSet.Dependencies[0]), ancestorListing(links),
	), nil
}

func (it *MessageComposer) transitiveRemovedIntro(ctx context.Context) (string, error) {
	links, err := it.dependencyLinks(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Removes %s. It's no longer used after updating ancestor %s."+
			" These dependencies need to be updated together.",
		links[0], ancestorListing(links),
	), nil
}

func (it *MessageComposer) groupIntro(ctx context.Context) (string, error) {
	links, err := it.dependencyLinks(ctx)
	if err != nil {
		return "", err
	}

	plural := ""
	if len(links) > 1 {
		plural = "s"
	}
	return fmt.Sprintf(
		"Bumps the %s group%s with %d update%s: %s.",
		it.changeSet.Group.Name, it.directorySuffix(), len(links), plural,
		joinWithAnd(links),
	), nil
}

// ancestorListing renders the ancestor half of a transitive intro, plural
// when more than two dependencies are involved.
func ancestorListing(links []string) string {
	word := "dependency"
	if len(links) > 2 {
		word = "dependencies"
	}
	return word + " " + joinWithAnd(links[1:])
}

// securityNotice renders the bolded vulnerability note, singular for exactly
// one fixed advisory.
func securityNotice(count int) string {
	switch {
	case count == 1:
		return " **This update includes a security fix.**"
	case count > 1:
		return " **This update includes security fixes.**"
	default:
		return ""
	}
}
