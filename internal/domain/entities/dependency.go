package entities

const (
	// MetadataKeyPropertyName marks a requirement that tracks a shared
	// version property instead of a literal version.
	MetadataKeyPropertyName = "property_name"
	// MetadataKeyDependencySet marks a requirement that belongs to a named
	// set of dependencies updated as one unit.
	MetadataKeyDependencySet = "dependency_set"
)

// Requirement is a single version constraint on a dependency, owned by one
// manifest file.
type Requirement struct {
	File        string            `yaml:"file"`
	Requirement string            `yaml:"requirement,omitempty"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// Equal reports whether two requirements carry the same file, constraint,
// and metadata.
func (r Requirement) Equal(other Requirement) bool {
	if r.File != other.File || r.Requirement != other.Requirement {
		return false
	}
	if len(r.Metadata) != len(other.Metadata) {
		return false
	}
	for key, value := range r.Metadata {
		if otherValue, ok := other.Metadata[key]; !ok || otherValue != value {
			return false
		}
	}
	return true
}

// Dependency describes one changed dependency of an update. Previous and
// new versions are display strings; an empty string means "absent". A
// removed dependency has no new version, and a dependency pinned to a ref
// without a semantic version uses ref strings in place of versions.
type Dependency struct {
	Name                 string        `yaml:"name"`
	DisplayName          string        `yaml:"display_name,omitempty"`
	PreviousVersion      string        `yaml:"previous_version,omitempty"`
	Version              string        `yaml:"version,omitempty"`
	PreviousRef          string        `yaml:"previous_ref,omitempty"`
	NewRef               string        `yaml:"new_ref,omitempty"`
	Requirements         []Requirement `yaml:"requirements,omitempty"`
	PreviousRequirements []Requirement `yaml:"previous_requirements,omitempty"`
	Removed              bool          `yaml:"removed,omitempty"`
	TopLevel             bool          `yaml:"top_level,omitempty"`
	PackageManager       string        `yaml:"package_manager,omitempty"`
	SourceURL            string        `yaml:"source_url,omitempty"`
}

// HumanName returns the display name, falling back to the raw name.
func (d Dependency) HumanName() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Name
}

// RefChanged reports whether the pinned ref moved with this update.
func (d Dependency) RefChanged() bool {
	return d.PreviousRef != d.NewRef
}

// RequirementMetadata returns the value of the given metadata key from the
// first requirement carrying a non-empty entry for it. The second return
// reports whether such an entry exists.
func (d Dependency) RequirementMetadata(key string) (string, bool) {
	for _, req := range d.Requirements {
		if value := req.Metadata[key]; value != "" {
			return value, true
		}
	}
	return "", false
}

// UpdatedRequirements returns the requirements present on the new side only.
func (d Dependency) UpdatedRequirements() []Requirement {
	return diffRequirements(d.Requirements, d.PreviousRequirements)
}

// DroppedRequirements returns the requirements present on the old side only.
func (d Dependency) DroppedRequirements() []Requirement {
	return diffRequirements(d.PreviousRequirements, d.Requirements)
}

// diffRequirements returns the entries of a with no equal entry in b.
func diffRequirements(a, b []Requirement) []Requirement {
	var diff []Requirement
	for _, candidate := range a {
		found := false
		for _, existing := range b {
			if candidate.Equal(existing) {
				found = true
				break
			}
		}
		if !found {
			diff = append(diff, candidate)
		}
	}
	return diff
}
