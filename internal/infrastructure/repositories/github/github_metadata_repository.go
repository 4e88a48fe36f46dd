package github

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

const (
	finderName  = "github"
	perPage     = 100
	defaultHost = "github.com"
)

// changelogNames and upgradeGuideNames are the root files recognized as
// changelog and upgrade guide, checked case-insensitively.
var (
	changelogNames    = []string{"CHANGELOG.md", "CHANGES.md", "HISTORY.md", "NEWS.md"}
	upgradeGuideNames = []string{"UPGRADING.md", "UPGRADE.md", "MIGRATING.md"}
)

// GitHubMetadataRepository implements repositories.MetadataRepository for GitHub.
type GitHubMetadataRepository struct {
	client        *gh.Client
	host          string
	sourcePattern *regexp.Regexp
}

var _ repositories.MetadataRepository = (*GitHubMetadataRepository)(nil)

// NewMetadataRepository creates a new GitHub metadata finder with the given
// token. A base URL points the finder at a GitHub Enterprise instance.
func NewMetadataRepository(token, baseURL string) repositories.MetadataRepository {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	host := defaultHost
	if baseURL != "" {
		enterprise, err := client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			logger.Warnf("Failed to configure GitHub Enterprise URL %q: %v", baseURL, err)
		} else {
			client = enterprise
			if parsed, parseErr := url.Parse(baseURL); parseErr == nil && parsed.Host != "" {
				host = parsed.Host
			}
		}
	}

	return &GitHubMetadataRepository{
		client:        client,
		host:          host,
		sourcePattern: regexp.MustCompile(regexp.QuoteMeta(host) + `[:/]([^/]+)/([^/\s#?]+)`),
	}
}

func (p *GitHubMetadataRepository) Name() string { return finderName }

func (p *GitHubMetadataRepository) MatchesURL(rawURL string) bool {
	return strings.Contains(rawURL, p.host)
}

// Lookup resolves the project links of a GitHub-hosted dependency. Failures
// past the repository fetch only log and leave the link absent.
func (p *GitHubMetadataRepository) Lookup(
	ctx context.Context,
	dependency entities.Dependency,
) (entities.DependencyMetadata, error) {
	owner, repo, ok := p.parseSourceURL(dependency.SourceURL)
	if !ok {
		return entities.DependencyMetadata{}, fmt.Errorf(
			"source URL %q is not a GitHub repository", dependency.SourceURL,
		)
	}

	repository, _, err := p.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return entities.DependencyMetadata{}, fmt.Errorf(
			"failed to fetch repository %s/%s: %w", owner, repo, err,
		)
	}

	meta := entities.DependencyMetadata{
		SourceURL:   repository.GetHTMLURL(),
		HomepageURL: repository.GetHomepage(),
	}

	p.fillContentURLs(ctx, owner, repo, dependency, &meta)
	p.fillReleaseURL(ctx, owner, repo, &meta)
	p.fillCommitsURL(ctx, owner, repo, dependency, &meta)

	return meta, nil
}

// parseSourceURL extracts owner and repository from a source URL.
func (p *GitHubMetadataRepository) parseSourceURL(rawURL string) (string, string, bool) {
	match := p.sourcePattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", "", false
	}
	return match[1], strings.TrimSuffix(match[2], ".git"), true
}

// fillContentURLs scans the repository root for a changelog and, on major
// version bumps, an upgrade guide.
func (p *GitHubMetadataRepository) fillContentURLs(
	ctx context.Context,
	owner, repo string,
	dependency entities.Dependency,
	meta *entities.DependencyMetadata,
) {
	_, rootContents, _, err := p.client.Repositories.GetContents(
		ctx, owner, repo, "",
		&gh.RepositoryContentGetOptions{},
	)
	if err != nil {
		logger.Debugf("Failed to list root contents of %s/%s: %v", owner, repo, err)
		return
	}

	for _, content := range rootContents {
		name := content.GetName()
		if meta.ChangelogURL == "" && matchesAnyName(name, changelogNames) {
			meta.ChangelogURL = content.GetHTMLURL()
		}
		if meta.UpgradeGuideURL == "" && isMajorBump(dependency) &&
			matchesAnyName(name, upgradeGuideNames) {
			meta.UpgradeGuideURL = content.GetHTMLURL()
		}
	}
}

// fillReleaseURL points the release notes at the latest published release.
func (p *GitHubMetadataRepository) fillReleaseURL(
	ctx context.Context,
	owner, repo string,
	meta *entities.DependencyMetadata,
) {
	release, _, err := p.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		logger.Debugf("No release found for %s/%s: %v", owner, repo, err)
		return
	}
	meta.ReleaseNotesURL = release.GetHTMLURL()
}

// fillCommitsURL builds the commit range link: a tag-to-tag compare when
// both versions have tags, the new tag's history when only it has one, and
// the plain commit list otherwise.
func (p *GitHubMetadataRepository) fillCommitsURL(
	ctx context.Context,
	owner, repo string,
	dependency entities.Dependency,
	meta *entities.DependencyMetadata,
) {
	tags, err := p.listTags(ctx, owner, repo)
	if err != nil {
		logger.Debugf("Failed to list tags for %s/%s: %v", owner, repo, err)
		return
	}

	oldTag := tagForVersion(tags, dependency.PreviousVersion)
	newTag := tagForVersion(tags, dependency.Version)

	switch {
	case oldTag != "" && newTag != "":
		meta.CommitsURL = fmt.Sprintf("%s/compare/%s...%s", meta.SourceURL, oldTag, newTag)
	case newTag != "":
		meta.CommitsURL = fmt.Sprintf("%s/commits/%s", meta.SourceURL, newTag)
	default:
		meta.CommitsURL = meta.SourceURL + "/commits"
	}
}

// listTags returns all tag names of the repository.
func (p *GitHubMetadataRepository) listTags(
	ctx context.Context,
	owner, repo string,
) ([]string, error) {
	var allTags []string
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		tags, resp, err := p.client.Repositories.ListTags(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list tags for %s/%s: %w", owner, repo, err)
		}

		for _, tag := range tags {
			allTags = append(allTags, tag.GetName())
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
