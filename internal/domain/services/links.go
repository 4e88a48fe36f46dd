package services

import (
	"context"
	"strings"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// dependencyLink renders one dependency as a markdown link, preferring the
// source URL, then the homepage, then the bare display name.
func (it *MessageComposer) dependencyLink(
	ctx context.Context,
	dep entities.Dependency,
) (string, error) {
	meta, err := it.lookupMetadata(ctx, dep)
	if err != nil {
		return "", err
	}

	if meta.SourceURL != "" {
		return "[" + dep.HumanName() + "](" + meta.SourceURL + ")", nil
	}
	if meta.HomepageURL != "" {
		return "[" + dep.HumanName() + "](" + meta.HomepageURL + ")", nil
	}
	return dep.HumanName(), nil
}

// dependencyLinks renders the links for every distinct dependency in the
// change set, preserving the caller-supplied order.
func (it *MessageComposer) dependencyLinks(ctx context.Context) ([]string, error) {
	unique := it.changeSet.UniqueDependencies()
	links := make([]string, 0, len(unique))
	for _, dep := range unique {
		link, err := it.dependencyLink(ctx, dep)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

// joinWithAnd joins a list for prose: two items with a bare "and", three or
// more comma-separated with "and" before the last.
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
