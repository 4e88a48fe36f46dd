package entities

// Vulnerability is one security advisory fixed by an update.
type Vulnerability struct {
	ID       string `yaml:"id,omitempty"`
	Severity string `yaml:"severity,omitempty"`
	URL      string `yaml:"url,omitempty"`
}

// VulnerabilityIndex maps dependency names to the advisories their update fixes.
type VulnerabilityIndex map[string][]Vulnerability

// CountFor returns the number of fixed advisories recorded for a dependency.
func (v VulnerabilityIndex) CountFor(name string) int {
	return len(v[name])
}

// FixesAny reports whether the index records at least one fixed advisory.
func (v VulnerabilityIndex) FixesAny() bool {
	for _, list := range v {
		if len(list) > 0 {
			return true
		}
	}
	return false
}
