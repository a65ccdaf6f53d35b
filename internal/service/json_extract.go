package service

import (
	"errors"
	"regexp"
	"strings"
)

var (
	fencedBlockPattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")
	jsonValuePattern   = regexp.MustCompile(`(\{[\s\S]*\}|\[[\s\S]*\])`)
)

var errNoJSONFound = errors.New("no JSON value found in text")

// extractJSONBlock pulls the JSON payload out of a model completion. Models
// wrap output in markdown fences or add prose around it; this tries, in
// order: a fenced code block, the outermost {...} or [...] span, then the
// whole trimmed text.
func extractJSONBlock(text string) (string, error) {
	if m := fencedBlockPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	if m := jsonValuePattern.FindString(text); m != "" {
		return m, nil
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errNoJSONFound
	}
	return trimmed, nil
}
