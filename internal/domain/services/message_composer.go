package services

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

// truncationMarker closes a body cut down to the configured maximum length.
const truncationMarker = "...\n\n_Description has been truncated_"

type cachedMetadata struct {
	meta entities.DependencyMetadata
	err  error
}

// MessageComposer renders the title, body, and commit message describing one
// dependency update. The scenario is classified once, and metadata lookups
// are cached per dependency name, so repeated renders of the same composer
// return identical strings. A composer is not safe for concurrent use.
type MessageComposer struct {
	changeSet entities.ChangeSet
	options   entities.MessageOptions
	prefixer  repositories.PrefixRepository
	metadata  repositories.MetadataRepository

	scenario      *Scenario
	prefixPolicy  *entities.PrefixPolicy
	metadataCache map[string]cachedMetadata
}

// NewMessageComposer creates a composer for one change set. The prefixer and
// metadata collaborators may be nil, which disables the title prefix and the
// link enrichment respectively.
func NewMessageComposer(
	set entities.ChangeSet,
	options entities.MessageOptions,
	prefixer repositories.PrefixRepository,
	metadata repositories.MetadataRepository,
) *MessageComposer {
	return &MessageComposer{
		changeSet:     set,
		options:       options,
		prefixer:      prefixer,
		metadata:      metadata,
		metadataCache: make(map[string]cachedMetadata),
	}
}

// Message renders all three artifacts of the update.
func (it *MessageComposer) Message(ctx context.Context) (entities.Message, error) {
	title, err := it.PRName(ctx)
	if err != nil {
		return entities.Message{}, err
	}

	body, err := it.PRBody(ctx)
	if err != nil {
		return entities.Message{}, err
	}

	commitMessage, err := it.CommitMessage(ctx)
	if err != nil {
		return entities.Message{}, err
	}

	return entities.Message{
		Title:         title,
		Body:          body,
		CommitMessage: commitMessage,
	}, nil
}

// Scenario returns the classification of the change set, computed once per
// composer so every artifact renders from the same selection.
func (it *MessageComposer) Scenario() (Scenario, error) {
	if it.scenario != nil {
		return *it.scenario, nil
	}
	scenario, err := ClassifyChangeSet(it.changeSet)
	if err != nil {
		return scenario, err
	}
	it.scenario = &scenario
	return scenario, nil
}

// PRBody renders the pull request description: header, scenario intro, the
// per-dependency metadata cascades, and footer. Contract violations
// propagate; enrichment failures degrade to header and footer only.
func (it *MessageComposer) PRBody(ctx context.Context) (string, error) {
	if err := it.changeSet.Validate(); err != nil {
		return "", err
	}

	body, err := it.assembleBody(ctx)
	if err != nil {
		if entities.IsContractError(err) {
			return "", err
		}
		logger.Errorf("[composer] failed to assemble the pull request body: %v", err)
		body = it.suffixedHeader() + it.prefixedFooter()
	}

	return it.truncateBody(body), nil
}

func (it *MessageComposer) assembleBody(ctx context.Context) (string, error) {
	intro, err := it.messageIntro(ctx)
	if err != nil {
		return "", err
	}

	cascades, err := it.metadataCascades(ctx)
	if err != nil {
		return "", err
	}

	return it.suffixedHeader() + intro + cascades + it.prefixedFooter(), nil
}

// CommitMessage renders the commit message: subject, detail paragraph with
// metadata links, and the trailer block. Detail assembly failures degrade to
// the bare subject plus trailers.
func (it *MessageComposer) CommitMessage(ctx context.Context) (string, error) {
	subject, err := it.CommitSubject(ctx)
	if err != nil {
		return "", err
	}

	details, err := it.assembleCommitDetails(ctx)
	if err != nil {
		if entities.IsContractError(err) {
			return "", err
		}
		logger.Errorf("[composer] failed to assemble the commit details: %v", err)
		details = ""
	}

	message := subject
	if details != "" {
		message += "\n\n" + details
	}
	if trailers := buildTrailers(it.options.Commit); trailers != "" {
		message += "\n\n" + trailers
	}
	return message, nil
}

func (it *MessageComposer) assembleCommitDetails(ctx context.Context) (string, error) {
	intro, err := it.messageIntro(ctx)
	if err != nil {
		return "", err
	}

	links, err := it.metadataLinks(ctx)
	if err != nil {
		return "", err
	}

	return intro + links, nil
}

// lookupMetadata resolves the links for one dependency, caching both results
// and failures for the lifetime of the composer.
func (it *MessageComposer) lookupMetadata(
	ctx context.Context,
	dep entities.Dependency,
) (entities.DependencyMetadata, error) {
	if cached, ok := it.metadataCache[dep.Name]; ok {
		return cached.meta, cached.err
	}

	var entry cachedMetadata
	if it.metadata != nil {
		entry.meta, entry.err = it.metadata.Lookup(ctx, dep)
	}
	it.metadataCache[dep.Name] = entry
	return entry.meta, entry.err
}

// currentPrefixPolicy resolves the title prefix once per composer. A failing
// prefixer is logged and degrades to no prefix, never to an error.
func (it *MessageComposer) currentPrefixPolicy(ctx context.Context) entities.PrefixPolicy {
	if it.prefixPolicy != nil {
		return *it.prefixPolicy
	}

	var policy entities.PrefixPolicy
	if it.prefixer != nil {
		resolved, err := it.prefixer.Prefix(ctx, it.changeSet)
		if err != nil {
			logger.Warnf("[composer] failed to compute the title prefix: %v", err)
		} else {
			policy = resolved
		}
	}
	it.prefixPolicy = &policy
	return policy
}

func (it *MessageComposer) suffixedHeader() string {
	if it.options.Header == "" {
		return ""
	}
	return it.options.Header + "\n\n"
}

func (it *MessageComposer) prefixedFooter() string {
	if it.options.Footer == "" {
		return ""
	}
	return "\n\n" + it.options.Footer
}

// truncateBody cuts the body down to the configured maximum rune count,
// closing it with the truncation marker. A zero maximum disables truncation.
func (it *MessageComposer) truncateBody(body string) string {
	limit := it.options.MaxBodyLength
	if limit <= 0 {
		return body
	}

	runes := []rune(body)
	if len(runes) <= limit {
		return body
	}

	keep := limit - len([]rune(truncationMarker))
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + truncationMarker
}
