// Package codeowners parses CODEOWNERS content into ownership rules and
// resolves which rule owns a given file.
package codeowners

import (
	"strings"

	"github.com/tracker-tv/codeowners-audit/models"
)

// Candidates lists the locations GitHub reads a CODEOWNERS file from, in the
// order they are tried.
var Candidates = []string{
	".github/CODEOWNERS",
	"CODEOWNERS",
	"docs/CODEOWNERS",
}

// Parse returns one rule per ownership line, in file order. Blank lines,
// comments and lines without any owner are skipped.
func Parse(content string) []models.Rule {
	var rules []models.Rule

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		// TODO: report pattern-only lines once the output has a place for malformed-line warnings.
		if len(fields) < 2 {
			continue
		}

		owners := make([]models.Owner, 0, len(fields)-1)
		for _, token := range fields[1:] {
			owners = append(owners, ParseOwner(token))
		}

		rules = append(rules, models.Rule{
			Pattern: fields[0],
			Owners:  owners,
			Line:    i + 1,
		})
	}

	return rules
}

// ParseOwner decodes a single owner token. A leading "@" is dropped; anything
// containing "/" is a team, with the slug taken after the last "/".
func ParseOwner(raw string) models.Owner {
	token := strings.TrimPrefix(raw, "@")

	if idx := strings.LastIndex(token, "/"); idx >= 0 {
		return models.Owner{
			Kind: models.OwnerTeam,
			Raw:  raw,
			Org:  token[:idx],
			Slug: token[idx+1:],
		}
	}

	return models.Owner{
		Kind:  models.OwnerUser,
		Raw:   raw,
		Login: token,
	}
}
