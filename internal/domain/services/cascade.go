package services

import (
	"context"
	"fmt"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// metadataCascades renders the per-dependency sections of the pull request
// body. A single-dependency update gets its link block right under the
// intro; multi-dependency updates get one change line, security notice, and
// link block per dependency, in set order.
func (it *MessageComposer) metadataCascades(ctx context.Context) (string, error) {
	deps := it.changeSet.Dependencies
	if len(deps) == 1 {
		return it.linksBlock(ctx, deps[0])
	}

	var cascades string
	for _, dep := range deps {
		block, err := it.linksBlock(ctx, dep)
		if err != nil {
			return "", err
		}
		cascades += "\n\n" + changeLine(dep) +
			securityNotice(it.changeSet.Vulnerabilities.CountFor(dep.Name)) +
			block
	}
	return cascades, nil
}

// metadataLinks renders the commit-message counterpart of the cascades:
// the same change lines and link blocks, without security notices.
func (it *MessageComposer) metadataLinks(ctx context.Context) (string, error) {
	deps := it.changeSet.Dependencies
	if len(deps) == 1 {
		return it.linksBlock(ctx, deps[0])
	}

	var links string
	for _, dep := range deps {
		block, err := it.linksBlock(ctx, dep)
		if err != nil {
			return "", err
		}
		links += "\n\n" + changeLine(dep) + block
	}
	return links, nil
}

// changeLine renders the one-line version change of a dependency.
func changeLine(dep entities.Dependency) string {
	if dep.Removed {
		return fmt.Sprintf("Removes `%s`", dep.HumanName())
	}
	return fmt.Sprintf(
		"Updates `%s` %sto %s",
		dep.HumanName(), fromVersionMsg(previousVersion(dep)), newVersion(dep),
	)
}

// linksBlock renders the metadata links of one dependency as markdown
// bullets, each only when present, in fixed order.
func (it *MessageComposer) linksBlock(
	ctx context.Context,
	dep entities.Dependency,
) (string, error) {
	meta, err := it.lookupMetadata(ctx, dep)
	if err != nil {
		return "", err
	}

	var block string
	if meta.ReleaseNotesURL != "" {
		block += "\n- [Release notes](" + meta.ReleaseNotesURL + ")"
	}
	if meta.ChangelogURL != "" {
		block += "\n- [Changelog](" + meta.ChangelogURL + ")"
	}
	if meta.UpgradeGuideURL != "" {
		block += "\n- [Upgrade guide](" + meta.UpgradeGuideURL + ")"
	}
	if meta.CommitsURL != "" {
		block += "\n- [Commits](" + meta.CommitsURL + ")"
	}
	return block, nil
}
