package entities

import "strings"

const (
	// ChangelogSectionChanged is the subsection for routine version bumps.
	ChangelogSectionChanged = "### Changed"
	// ChangelogSectionSecurity is the subsection for security fixes.
	ChangelogSectionSecurity = "### Security"

	unreleasedHeading = "## [Unreleased]"
	h2Prefix          = "## ["
	bulletPrefix      = "- "
)

// ChangelogEntry is one bullet destined for a subsection of the Unreleased
// block in a Keep-a-Changelog formatted file.
type ChangelogEntry struct {
	Subheading string
	Text       string
}

// InsertChangelogEntries inserts bullet entries into the "## [Unreleased]"
// section of a Keep-a-Changelog formatted string, grouped under their
// subheadings in first-seen order.
//
// Behaviour:
//   - If "## [Unreleased]" is missing, the content is returned unchanged.
//   - If a subheading already exists under Unreleased, the entries are
//     appended after the last bullet line in that subsection.
//   - If a subheading does not exist, a new subsection is created right
//     after the "## [Unreleased]" line.
func InsertChangelogEntries(content string, entries []ChangelogEntry) string {
	if len(entries) == 0 {
		return content
	}

	grouped := make(map[string][]string)
	order := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, seen := grouped[entry.Subheading]; !seen {
			order = append(order, entry.Subheading)
		}
		text := entry.Text
		if !strings.HasPrefix(text, bulletPrefix) {
			text = bulletPrefix + text
		}
		grouped[entry.Subheading] = append(grouped[entry.Subheading], text)
	}

	for _, subheading := range order {
		content = insertUnderSubheading(content, subheading, grouped[subheading])
	}
	return content
}

// insertUnderSubheading inserts bullet lines into one subsection of the
// Unreleased block, creating the subsection when it is missing.
func insertUnderSubheading(content, subheading string, bulletLines []string) string {
	lines := strings.Split(content, "\n")

	unreleasedIdx := findUnreleasedIndex(lines)
	if unreleasedIdx < 0 {
		return content // no Unreleased section
	}

	// Find the boundary of the Unreleased section (next ## [ heading or EOF).
	nextH2Idx := findNextH2Index(lines, unreleasedIdx)

	// Look for the subsection inside the Unreleased region.
	subheadingIdx := findSubheadingIndex(lines, subheading, unreleasedIdx, nextH2Idx)

	if subheadingIdx >= 0 {
		insertAfter := findLastBullet(lines, subheadingIdx, nextH2Idx)
		lines = insertLines(lines, insertAfter+1, bulletLines)
	} else {
		// Subsection missing, create one right after ## [Unreleased].
		block := []string{"", subheading, ""}
		block = append(block, bulletLines...)
		lines = insertLines(lines, unreleasedIdx+1, block)
	}

	return strings.Join(lines, "\n")
}

// findUnreleasedIndex returns the line index of the "## [Unreleased]"
// heading, or -1 if not found.
func findUnreleasedIndex(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == unreleasedHeading {
			return i
		}
	}
	return -1
}

// findNextH2Index returns the line index of the next "## [" heading after
// startIdx, or len(lines) if there is none.
func findNextH2Index(lines []string, startIdx int) int {
	for i := startIdx + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), h2Prefix) {
			return i
		}
	}
	return len(lines)
}

// findSubheadingIndex returns the line index of the given subsection heading
// between startIdx and endIdx, or -1 if not found.
func findSubheadingIndex(lines []string, subheading string, startIdx, endIdx int) int {
	for i := startIdx + 1; i < endIdx; i++ {
		if strings.TrimSpace(lines[i]) == subheading {
			return i
		}
	}
	return -1
}

// findLastBullet returns the index of the last bullet line in the
// subsection starting at subheadingIdx.
func findLastBullet(lines []string, subheadingIdx, endIdx int) int {
	insertAfter := subheadingIdx
	for i := subheadingIdx + 1; i < endIdx; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue // skip blank lines between bullets
		}
		if strings.HasPrefix(trimmed, bulletPrefix) {
			insertAfter = i
			continue
		}
		// Hit a different subsection heading or non-bullet content.
		break
	}
	return insertAfter
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
