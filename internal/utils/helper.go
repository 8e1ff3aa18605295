package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive database id taken from a URL path segment.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// LikePattern wraps a search term for a substring ILIKE match.
func LikePattern(term string) string {
	return "%" + term + "%"
}
