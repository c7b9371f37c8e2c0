package api

import (
	"fmt"
	"strconv"
	"strings"

	"kgeyst.com/hfdemo/pkg/inference/domain"
)

// ResolveModelName lets users type less: `query` can be a 1-based index into `names`, the exact display name, or
// a case-insensitive prefix of exactly one display name.
func ResolveModelName(names []string, query string) (string, error) {
	query = strings.TrimSpace(query)
	if index, err := strconv.Atoi(query); err == nil {
		if index < 1 || index > len(names) {
			return "", fmt.Errorf("%w: no model #%d", domain.ErrUnknownModel, index)
		}
		return names[index-1], nil
	}
	var matches []string
	for _, name := range names {
		if name == query {
			return name, nil
		}
		if query != "" && strings.HasPrefix(strings.ToLower(name), strings.ToLower(query)) {
			matches = append(matches, name)
		}
	}
	if len(matches) != 1 {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownModel, query)
	}
	return matches[0], nil
}
