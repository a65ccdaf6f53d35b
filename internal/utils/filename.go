package utils

import (
	"regexp"
	"strings"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRun        = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes name safe to embed into a generated document
// filename: characters invalid in filenames become underscores, whitespace
// runs collapse to a single underscore, and leading/trailing dots and
// underscores are trimmed. Returns "unknown" when nothing survives.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	name = whitespaceRun.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")

	if name == "" {
		return "unknown"
	}
	return name
}
