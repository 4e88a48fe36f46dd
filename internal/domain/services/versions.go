package services

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

const shortSHALength = 7

// commitSHAPattern matches a full 40-character git commit SHA used in place
// of a version string.
var commitSHAPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// previousVersion returns the display form of the old version: an empty
// string when there is none, the ref when a SHA-pinned dependency moved
// refs, or a backticked short SHA for an unchanged ref pin.
func previousVersion(dep entities.Dependency) string {
	if dep.PreviousVersion == "" {
		return ""
	}
	return humanizeVersion(dep.PreviousVersion, dep.PreviousRef, dep.RefChanged())
}

// newVersion returns the display form of the new version, with the same
// SHA and ref handling as previousVersion.
func newVersion(dep entities.Dependency) string {
	return humanizeVersion(dep.Version, dep.NewRef, dep.RefChanged())
}

func humanizeVersion(version, ref string, refChanged bool) string {
	if commitSHAPattern.MatchString(version) {
		if refChanged && ref != "" {
			return ref
		}
		return "`" + version[:shortSHALength] + "`"
	}
	return version
}

// fromVersionMsg renders the "from <old> " fragment, empty when there is no
// old version. The trailing space keeps call sites free of conditionals.
func fromVersionMsg(previous string) string {
	if previous == "" {
		return ""
	}
	return "from " + previous + " "
}

// switchingFromRefToRelease reports whether the dependency moves from a
// commit pin to a released version.
func switchingFromRefToRelease(dep entities.Dependency) bool {
	pinned := commitSHAPattern.MatchString(dep.PreviousVersion) ||
		(dep.PreviousVersion == "" && dep.PreviousRef != "")
	return pinned && semver.IsValid(normalizeVersion(dep.Version))
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
