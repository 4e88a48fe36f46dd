package services

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxSubjectLength is the conventional commit subject limit.
const maxSubjectLength = 72

// fromToPattern matches the " from <old> to <new>" fragment stripped from
// over-length commit subjects.
var fromToPattern = regexp.MustCompile(` from \S*? to \S*`)

// CommitSubject derives the commit subject from the title: emoji prefixes
// become their text aliases, and an over-length subject loses first its
// version range, then everything from the first " in " on. A subject still
// over the limit after both passes is accepted as-is.
func (it *MessageComposer) CommitSubject(ctx context.Context) (string, error) {
	name, err := it.PRName(ctx)
	if err != nil {
		return "", err
	}

	subject := strings.ReplaceAll(name, "⬆️", ":arrow_up:")
	subject = strings.ReplaceAll(subject, "🔒", ":lock:")
	if utf8.RuneCountInString(subject) <= maxSubjectLength {
		return subject, nil
	}

	if match := fromToPattern.FindStringIndex(subject); match != nil {
		subject = subject[:match[0]] + subject[match[1]:]
	}
	if utf8.RuneCountInString(subject) <= maxSubjectLength {
		return subject, nil
	}

	if before, _, found := strings.Cut(subject, " in "); found {
		subject = before
	}
	return subject, nil
}
