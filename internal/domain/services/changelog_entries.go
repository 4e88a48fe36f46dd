package services

import (
	"fmt"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// ChangelogEntries derives Keep-a-Changelog bullets from the change set, one
// per distinct dependency, filed under Security when the update fixes an
// advisory for it and under Changed otherwise.
func (it *MessageComposer) ChangelogEntries() []entities.ChangelogEntry {
	unique := it.changeSet.UniqueDependencies()
	entries := make([]entities.ChangelogEntry, 0, len(unique))

	for _, dep := range unique {
		subheading := entities.ChangelogSectionChanged
		if it.changeSet.Vulnerabilities.CountFor(dep.Name) > 0 {
			subheading = entities.ChangelogSectionSecurity
		}

		text := fmt.Sprintf(
			"bumped `%s` %sto %s",
			dep.HumanName(), fromVersionMsg(previousVersion(dep)), newVersion(dep),
		)
		if dep.Removed {
			text = fmt.Sprintf("removed `%s`", dep.HumanName())
		}

		entries = append(entries, entities.ChangelogEntry{
			Subheading: subheading,
			Text:       text,
		})
	}

	return entries
}
