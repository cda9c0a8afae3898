package codeowners

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tracker-tv/codeowners-audit/models"
)

// Match returns the rule that owns filePath. As on GitHub, the last matching
// rule wins.
func Match(rules []models.Rule, filePath string) (models.Rule, bool) {
	filePath = strings.TrimPrefix(filePath, "/")

	for i := len(rules) - 1; i >= 0; i-- {
		if matches(rules[i].Pattern, filePath) {
			return rules[i], true
		}
	}

	return models.Rule{}, false
}

func matches(pattern, filePath string) bool {
	glob := toGlob(pattern)

	ok, err := doublestar.Match(glob, filePath)
	if err != nil {
		return false
	}
	if ok {
		return true
	}

	if !matchesDescendants(glob) {
		return false
	}
	ok, err = doublestar.Match(glob+"/**", filePath)
	return err == nil && ok
}

// matchesDescendants reports whether a glob may also own everything beneath
// it. That holds for a plain name like "apps" or "build/logs", but not for
// "docs/*", which stops at direct children.
func matchesDescendants(glob string) bool {
	if strings.HasSuffix(glob, "/**") {
		return false
	}
	last := glob[strings.LastIndex(glob, "/")+1:]
	return !strings.ContainsAny(last, "*?[")
}

func toGlob(pattern string) string {
	dir := strings.HasSuffix(pattern, "/")
	p := strings.Trim(pattern, "/")

	// gitignore semantics: a leading or inner slash anchors to the root.
	anchored := strings.HasPrefix(pattern, "/") || strings.Contains(p, "/")
	if !anchored && p != "**" {
		p = "**/" + p
	}
	if dir {
		p += "/**"
	}

	return p
}
