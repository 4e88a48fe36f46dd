package azuredevops

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

const (
	finderName  = "azuredevops"
	defaultHost = "dev.azure.com"
)

// Well-known documentation file names looked up in repository roots.
var (
	changelogNames    = []string{"CHANGELOG.md", "CHANGES.md", "HISTORY.md", "NEWS.md"}
	upgradeGuideNames = []string{"UPGRADING.md", "UPGRADE.md", "MIGRATING.md"}
)

// AzureDevOpsMetadataRepository finds dependency metadata in Azure DevOps
// Git repositories. Clients are created per organization because the REST
// API is organization scoped.
type AzureDevOpsMetadataRepository struct {
	token         string
	host          string
	clients       map[string]*Client
	sourcePattern *regexp.Regexp
}

var _ repositories.MetadataRepository = (*AzureDevOpsMetadataRepository)(nil)

// NewMetadataRepository creates an Azure DevOps metadata finder. The base
// URL overrides the default dev.azure.com host for on-premises servers.
func NewMetadataRepository(token, baseURL string) repositories.MetadataRepository {
	host := defaultHost
	if baseURL != "" {
		if parsed, err := url.Parse(baseURL); err == nil && parsed.Host != "" {
			host = parsed.Host
		} else {
			logger.Warnf("Failed to parse Azure DevOps base URL %q: %v", baseURL, err)
		}
	}

	return &AzureDevOpsMetadataRepository{
		token:   token,
		host:    host,
		clients: make(map[string]*Client),
		sourcePattern: regexp.MustCompile(
			regexp.QuoteMeta(host) + `/([^/]+)/([^/]+)/_git/([^/\s#?]+)`,
		),
	}
}

func (p *AzureDevOpsMetadataRepository) Name() string { return finderName }

func (p *AzureDevOpsMetadataRepository) MatchesURL(rawURL string) bool {
	return strings.Contains(rawURL, p.host)
}

// Lookup resolves the repository page and its documentation, tag and commit
// links for the given dependency.
func (p *AzureDevOpsMetadataRepository) Lookup(
	ctx context.Context,
	dependency entities.Dependency,
) (entities.DependencyMetadata, error) {
	org, project, repo, ok := p.parseSourceURL(dependency.SourceURL)
	if !ok {
		return entities.DependencyMetadata{}, fmt.Errorf(
			"source URL %q is not an Azure DevOps repository", dependency.SourceURL,
		)
	}

	client := p.clientFor(org)

	repository, err := client.GetRepository(ctx, project, repo)
	if err != nil {
		return entities.DependencyMetadata{}, fmt.Errorf(
			"failed to fetch repository %s/%s: %w", project, repo, err,
		)
	}

	webURL := repository.RemoteURL
	if webURL == "" {
		webURL = dependency.SourceURL
	}

	meta := entities.DependencyMetadata{SourceURL: webURL}

	p.fillContentURLs(ctx, client, project, repo, dependency, &meta)
	p.fillCommitsURL(ctx, client, project, repo, dependency, &meta)

	return meta, nil
}

// clientFor returns the cached client for an organization, creating it on
// first use.
func (p *AzureDevOpsMetadataRepository) clientFor(org string) *Client {
	if client, found := p.clients[org]; found {
		return client
	}
	client := NewClient("https://"+p.host+"/"+org, p.token)
	p.clients[org] = client
	return client
}

// parseSourceURL extracts organization, project and repository from a
// source URL.
func (p *AzureDevOpsMetadataRepository) parseSourceURL(rawURL string) (string, string, string, bool) {
	match := p.sourcePattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", "", "", false
	}
	return match[1], match[2], match[3], true
}

// fillContentURLs scans the repository root for a changelog and, on major
// version bumps, an upgrade guide.
func (p *AzureDevOpsMetadataRepository) fillContentURLs(
	ctx context.Context,
	client *Client,
	project, repo string,
	dependency entities.Dependency,
	meta *entities.DependencyMetadata,
) {
	items, err := client.GetRepositoryItems(ctx, project, repo, "/")
	if err != nil {
		logger.Debugf("Failed to list root items of %s/%s: %v", project, repo, err)
		return
	}

	for _, item := range items {
		if item.GitObjectType != "blob" {
			continue
		}
		name := strings.TrimPrefix(item.Path, "/")
		if meta.ChangelogURL == "" && matchesAnyName(name, changelogNames) {
			meta.ChangelogURL = fileURL(meta.SourceURL, item.Path)
		}
		if meta.UpgradeGuideURL == "" && isMajorBump(dependency) &&
			matchesAnyName(name, upgradeGuideNames) {
			meta.UpgradeGuideURL = fileURL(meta.SourceURL, item.Path)
		}
	}
}

// fillCommitsURL builds the commit range link: a tag-to-tag compare when
// both versions have tags, the new tag's history when only it has one, and
// the plain commit list otherwise.
func (p *AzureDevOpsMetadataRepository) fillCommitsURL(
	ctx context.Context,
	client *Client,
	project, repo string,
	dependency entities.Dependency,
	meta *entities.DependencyMetadata,
) {
	tags, err := client.GetTags(ctx, project, repo)
	if err != nil {
		logger.Debugf("Failed to list tags for %s/%s: %v", project, repo, err)
		return
	}

	oldTag := tagForVersion(tags, dependency.PreviousVersion)
	newTag := tagForVersion(tags, dependency.Version)

	switch {
	case oldTag != "" && newTag != "":
		meta.CommitsURL = fmt.Sprintf(
			"%s/branchCompare?baseVersion=GT%s&targetVersion=GT%s",
			meta.SourceURL, url.QueryEscape(oldTag), url.QueryEscape(newTag),
		)
	case newTag != "":
		meta.CommitsURL = fmt.Sprintf(
			"%s/commits?itemVersion=GT%s", meta.SourceURL, url.QueryEscape(newTag),
		)
	default:
		meta.CommitsURL = meta.SourceURL + "/commits"
	}
}

func fileURL(repoURL, path string) string {
	return repoURL + "?path=" + url.QueryEscape(path)
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
