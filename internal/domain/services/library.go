package services

import (
	"regexp"
	"strings"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// packageSpecPattern matches a package-spec manifest sitting at the
// repository root.
var packageSpecPattern = regexp.MustCompile(`^[^/]*\.gemspec$`)

// IsLibrary reports whether the change set updates a library rather than an
// application: either a package-spec manifest was changed at the root, or a
// dependency has no resolvable previous version.
func IsLibrary(set entities.ChangeSet) bool {
	for _, file := range set.Files {
		if packageSpecPattern.MatchString(strings.TrimPrefix(file.Path, "/")) {
			return true
		}
	}
	for _, dep := range set.Dependencies {
		if dep.PreviousVersion == "" {
			return true
		}
	}
	return false
}

// newLibraryRequirement returns the updated requirement range of a library
// dependency. The package-spec requirement wins when present; otherwise
// exactly one updated requirement must exist.
func newLibraryRequirement(dep entities.Dependency) (string, error) {
	updated := dep.UpdatedRequirements()
	for _, req := range updated {
		if packageSpecPattern.MatchString(req.File) {
			return req.Requirement, nil
		}
	}
	if len(updated) == 1 {
		return updated[0].Requirement, nil
	}
	return "", entities.NewContractError(
		"cannot resolve a single updated requirement out of %d", len(updated),
	)
}

// oldLibraryRequirement returns the previous requirement range of a library
// dependency, or an empty string when it cannot be determined.
func oldLibraryRequirement(dep entities.Dependency) string {
	dropped := dep.DroppedRequirements()
	for _, req := range dropped {
		if packageSpecPattern.MatchString(req.File) {
			return req.Requirement
		}
	}
	if len(dropped) == 1 {
		return dropped[0].Requirement
	}
	return ""
}
