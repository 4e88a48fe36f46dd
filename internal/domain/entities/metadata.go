package entities

// DependencyMetadata carries the discovered project links for one dependency.
// Empty fields mean the link could not be resolved.
type DependencyMetadata struct {
	SourceURL       string `yaml:"source_url,omitempty"`
	HomepageURL     string `yaml:"homepage_url,omitempty"`
	ReleaseNotesURL string `yaml:"release_notes_url,omitempty"`
	ChangelogURL    string `yaml:"changelog_url,omitempty"`
	UpgradeGuideURL string `yaml:"upgrade_guide_url,omitempty"`
	CommitsURL      string `yaml:"commits_url,omitempty"`
}
