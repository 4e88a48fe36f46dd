package services

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// buildTrailers renders the commit trailer block: custom trailers in their
// configured order, then On-behalf-of, then Signed-off-by. An empty result
// means no block is appended at all.
func buildTrailers(options entities.CommitOptions) string {
	var lines []string

	for _, trailer := range options.Trailers {
		if trailer.Value == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", trailer.Key, *trailer.Value))
	}

	if signoff := options.Signoff; signoff != nil {
		if signoff.OrgName != "" && signoff.OrgEmail != "" {
			lines = append(lines, fmt.Sprintf(
				"On-behalf-of: @%s <%s>", signoff.OrgName, signoff.OrgEmail,
			))
		}
		if signoff.Name != "" && signoff.Email != "" {
			lines = append(lines, fmt.Sprintf(
				"Signed-off-by: %s <%s>", signoff.Name, signoff.Email,
			))
		}
	}

	return strings.Join(lines, "\n")
}
