package gitlab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

const (
	finderName  = "gitlab"
	perPage     = 100
	defaultHost = "gitlab.com"
)

var errClientNotInitialized = errors.New("gitlab client not initialized")

// changelogNames and upgradeGuideNames are the root files recognized as
// changelog and upgrade guide, checked case-insensitively.
var (
	changelogNames    = []string{"CHANGELOG.md", "CHANGES.md", "HISTORY.md", "NEWS.md"}
	upgradeGuideNames = []string{"UPGRADING.md", "UPGRADE.md", "MIGRATING.md"}
)

// GitLabMetadataRepository implements repositories.MetadataRepository for GitLab.
type GitLabMetadataRepository struct {
	client *gl.Client
	host   string
}

var _ repositories.MetadataRepository = (*GitLabMetadataRepository)(nil)

// NewMetadataRepository creates a new GitLab metadata finder with the given
// token. A base URL points the finder at a self-hosted instance.
func NewMetadataRepository(token, baseURL string) repositories.MetadataRepository {
	var opts []gl.ClientOptionFunc
	host := defaultHost
	if baseURL != "" {
		opts = append(opts, gl.WithBaseURL(baseURL))
		host = strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
		host = strings.SplitN(host, "/", 2)[0]
	}

	client, err := gl.NewClient(token, opts...)
	if err != nil {
		// Return a finder that will fail on use rather than panicking at construction
		return &GitLabMetadataRepository{client: nil, host: host}
	}
	return &GitLabMetadataRepository{
		client: client,
		host:   host,
	}
}

func (p *GitLabMetadataRepository) Name() string { return finderName }

func (p *GitLabMetadataRepository) MatchesURL(rawURL string) bool {
	return strings.Contains(rawURL, p.host)
}

// Lookup resolves the project links of a GitLab-hosted dependency. Failures
// past the project fetch only log and leave the link absent.
func (p *GitLabMetadataRepository) Lookup(
	ctx context.Context,
	dependency entities.Dependency,
) (entities.DependencyMetadata, error) {
	if p.client == nil {
		return entities.DependencyMetadata{}, errClientNotInitialized
	}

	pid, ok := p.parseProjectPath(dependency.SourceURL)
	if !ok {
		return entities.DependencyMetadata{}, fmt.Errorf(
			"source URL %q is not a GitLab project", dependency.SourceURL,
		)
	}

	project, _, err := p.client.Projects.GetProject(
		pid, &gl.GetProjectOptions{}, gl.WithContext(ctx),
	)
	if err != nil {
		return entities.DependencyMetadata{}, fmt.Errorf(
			"failed to fetch project %q: %w", pid, err,
		)
	}

	meta := entities.DependencyMetadata{
		SourceURL: project.WebURL,
	}

	defaultBranch := "main"
	if project.DefaultBranch != "" {
		defaultBranch = project.DefaultBranch
	}

	p.fillContentURLs(ctx, pid, project.WebURL, defaultBranch, dependency, &meta)
	p.fillReleaseURL(ctx, pid, project.WebURL, &meta)
	p.fillCommitsURL(ctx, pid, project.WebURL, dependency, &meta)

	return meta, nil
}

// parseProjectPath extracts the full project path (including subgroups) from
// a source URL.
func (p *GitLabMetadataRepository) parseProjectPath(rawURL string) (string, bool) {
	idx := strings.Index(rawURL, p.host)
	if idx < 0 {
		return "", false
	}

	path := strings.Trim(rawURL[idx+len(p.host):], ":/")
	if i := strings.IndexAny(path, "#?"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, ".git")

	if path == "" {
		return "", false
	}
	return path, true
}

// fillContentURLs scans the project root for a changelog and, on major
// version bumps, an upgrade guide.
func (p *GitLabMetadataRepository) fillContentURLs(
	ctx context.Context,
	pid any,
	webURL, defaultBranch string,
	dependency entities.Dependency,
	meta *entities.DependencyMetadata,
) {
	opts := &gl.ListTreeOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
	}

	nodes, _, err := p.client.Repositories.ListTree(pid, opts, gl.WithContext(ctx))
	if err != nil {
		logger.Debugf("Failed to list tree of %v: %v", pid, err)
		return
	}

	for _, node := range nodes {
		if node.Type != "blob" {
			continue
		}
		if meta.ChangelogURL == "" && matchesAnyName(node.Path, changelogNames) {
			meta.ChangelogURL = fmt.Sprintf("%s/-/blob/%s/%s", webURL, defaultBranch, node.Path)
		}
		if meta.UpgradeGuideURL == "" && isMajorBump(dependency) &&
			matchesAnyName(node.Path, upgradeGuideNames) {
			meta.UpgradeGuideURL = fmt.Sprintf("%s/-/blob/%s/%s", webURL, defaultBranch, node.Path)
		}
	}
}

// fillReleaseURL points the release notes at the latest published release.
func (p *GitLabMetadataRepository) fillReleaseURL(
	ctx context.Context,
	pid any,
	webURL string,
	meta *entities.DependencyMetadata,
) {
	releases, _, err := p.client.Releases.ListReleases(
		pid,
		&gl.ListReleasesOptions{ListOptions: gl.ListOptions{PerPage: 1}},
		gl.WithContext(ctx),
	)
	if err != nil || len(releases) == 0 {
		logger.Debugf("No release found for %v: %v", pid, err)
		return
	}
	meta.ReleaseNotesURL = fmt.Sprintf("%s/-/releases/%s", webURL, releases[0].TagName)
}

// fillCommitsURL builds the commit range link: a tag-to-tag compare when
// both versions have tags, the new tag's history when only it has one, and
// the plain commit list otherwise.
func (p *GitLabMetadataRepository) fillCommitsURL(
	ctx context.Context,
	pid any,
	webURL string,
	dependency entities.Dependency,
	meta *entities.DependencyMetadata,
) {
	tags, err := p.listTags(ctx, pid)
	if err != nil {
		logger.Debugf("Failed to list tags for %v: %v", pid, err)
		return
	}

	oldTag := tagForVersion(tags, dependency.PreviousVersion)
	newTag := tagForVersion(tags, dependency.Version)

	switch {
	case oldTag != "" && newTag != "":
		meta.CommitsURL = fmt.Sprintf("%s/-/compare/%s...%s", webURL, oldTag, newTag)
	case newTag != "":
		meta.CommitsURL = fmt.Sprintf("%s/-/commits/%s", webURL, newTag)
	default:
		meta.CommitsURL = webURL + "/-/commits"
	}
}

// listTags returns all tag names of the project.
func (p *GitLabMetadataRepository) listTags(ctx context.Context, pid any) ([]string, error) {
	var allTags []string
	opts := &gl.ListTagsOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
	}

	for {
		tags, resp, err := p.client.Tags.ListTags(pid, opts, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list tags: %w", err)
		}

		for _, tag := range tags {
			allTags = append(allTags, tag.Name)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allTags, nil
}

// --- version helpers ---

func matchesAnyName(name string, candidates []string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(name, candidate) {
			return true
		}
	}
	return false
}

func tagForVersion(tags []string, version string) string {
	if version == "" {
		return ""
	}
	for _, tag := range tags {
		if tag == version || tag == "v"+version {
			return tag
		}
	}
	return ""
}

func isMajorBump(dependency entities.Dependency) bool {
	oldVersion := normalizeVersion(dependency.PreviousVersion)
	newVersion := normalizeVersion(dependency.Version)
	if !semver.IsValid(oldVersion) || !semver.IsValid(newVersion) {
		return false
	}
	return semver.Major(oldVersion) != semver.Major(newVersion)
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
