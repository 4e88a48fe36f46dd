package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
	"github.com/rios0rios0/msgforge/internal/domain/services"
	infraRepos "github.com/rios0rios0/msgforge/internal/infrastructure/repositories"
)

// Compose is the interface for the compose command (message generation).
type Compose interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts ComposeOptions,
	) (*ComposeResult, error)
}

// ComposeOptions holds runtime options for a single compose run.
type ComposeOptions struct {
	ChangeSetPath string
	RepoDir       string // If set, derive a pull request input from this local repository
	ChangelogFile string // If set, record the update in this changelog file
	Verbose       bool
}

// ComposeResult is the outcome of one compose run.
type ComposeResult struct {
	Scenario string                     `yaml:"scenario"`
	Message  entities.Message           `yaml:"message"`
	PRInput  *entities.PullRequestInput `yaml:"pull_request,omitempty"`
}

// ComposeCommand orchestrates the message generation flow:
// load change set -> classify -> render title, body, and commit message.
type ComposeCommand struct {
	metadataRegistry *infraRepos.MetadataRegistry
	prefixRegistry   *infraRepos.PrefixRegistry
	contextRepo      repositories.RepoContextRepository
}

// NewComposeCommand creates a new ComposeCommand with the given registries.
func NewComposeCommand(
	metadataRegistry *infraRepos.MetadataRegistry,
	prefixRegistry *infraRepos.PrefixRegistry,
	contextRepo repositories.RepoContextRepository,
) *ComposeCommand {
	return &ComposeCommand{
		metadataRegistry: metadataRegistry,
		prefixRegistry:   prefixRegistry,
		contextRepo:      contextRepo,
	}
}

// Execute renders the update message for one change set.
func (it *ComposeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ComposeOptions,
) (*ComposeResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	set, err := entities.LoadChangeSet(opts.ChangeSetPath)
	if err != nil {
		return nil, err
	}

	scenario, err := services.ClassifyChangeSet(set)
	if err != nil {
		return nil, err
	}

	logger.Infof(
		"[compose] Classified update as %q (%d dependencies)",
		scenario, len(set.Dependencies),
	)

	prefixer, err := it.prefixRegistry.Get(settings.Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to configure the title prefix: %w", err)
	}

	metadata := it.metadataRegistry.ResolverFor(settings, set)

	composer := services.NewMessageComposer(set, settings.Message, prefixer, metadata)
	message, err := composer.Message(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render the update message: %w", err)
	}

	result := &ComposeResult{
		Scenario: scenario.String(),
		Message:  message,
		PRInput:  nil,
	}

	if opts.ChangelogFile != "" {
		if changelogErr := it.updateChangelog(opts.ChangelogFile, composer); changelogErr != nil {
			return nil, changelogErr
		}
	}

	if opts.RepoDir != "" {
		result.PRInput = it.derivePRInput(set, settings, message, opts.RepoDir)
	}

	return result, nil
}

// updateChangelog records the update in a Keep-a-Changelog file.
func (it *ComposeCommand) updateChangelog(
	path string,
	composer *services.MessageComposer,
) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read changelog file %q: %w", path, err)
	}

	updated := entities.InsertChangelogEntries(string(content), composer.ChangelogEntries())
	if updated == string(content) {
		logger.Warnf("[compose] Changelog %q has no Unreleased section, skipping", path)
		return nil
	}

	if writeErr := os.WriteFile(path, []byte(updated), 0o644); writeErr != nil {
		return fmt.Errorf("failed to write changelog file %q: %w", path, writeErr)
	}

	logger.Infof("[compose] Recorded the update in %q", path)
	return nil
}

// derivePRInput assembles the forge input for the rendered message from the
// state of a local repository. Failures degrade to no input, the message
// itself is already rendered.
func (it *ComposeCommand) derivePRInput(
	set entities.ChangeSet,
	settings *entities.Settings,
	message entities.Message,
	repoDir string,
) *entities.PullRequestInput {
	repoContext, err := it.contextRepo.Resolve(repoDir)
	if err != nil {
		logger.Warnf("[compose] failed to resolve the repository context: %v", err)
		return nil
	}

	return entities.NewPullRequestInput(
		message,
		"refs/heads/"+updateBranchName(set),
		"refs/heads/"+repoContext.Branch,
		settings.AutoComplete,
	)
}

// updateBranchName derives a stable branch name for the update from the
// package manager and the group or first dependency.
func updateBranchName(set entities.ChangeSet) string {
	manager := set.PackageManager
	if manager == "" {
		manager = "deps"
	}

	var slug string
	if set.Group != nil {
		slug = set.Group.Name
	} else {
		dep := set.Dependencies[0]
		slug = dep.Name
		if dep.Version != "" {
			slug += "-" + dep.Version
		}
	}
	slug = strings.ReplaceAll(slug, "/", "-")

	return "msgforge/" + manager + "/" + slug
}
