package prefix

import (
	"context"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
	"github.com/rios0rios0/msgforge/internal/domain/repositories"
)

const (
	upgradeEmoji  = "⬆️"
	securityEmoji = "🔒"
)

// GitmojiPrefixRepository prefixes titles with the gitmoji for dependency
// upgrades, adding the lock emoji when the update fixes a vulnerability.
type GitmojiPrefixRepository struct {
	config entities.PrefixConfig
}

var _ repositories.PrefixRepository = (*GitmojiPrefixRepository)(nil)

func NewGitmojiPrefixRepository(config entities.PrefixConfig) repositories.PrefixRepository {
	return &GitmojiPrefixRepository{config: config}
}

func (p *GitmojiPrefixRepository) Name() string { return entities.PrefixStyleGitmoji }

func (p *GitmojiPrefixRepository) Prefix(
	_ context.Context,
	set entities.ChangeSet,
) (entities.PrefixPolicy, error) {
	emoji := p.config.Value
	if emoji == "" {
		emoji = upgradeEmoji
	}
	if set.Vulnerabilities.FixesAny() {
		emoji = securityEmoji + " " + emoji
	}
	return entities.PrefixPolicy{
		Prefix:              emoji + " ",
		CapitalizeFirstWord: p.config.Capitalize,
	}, nil
}
