package repository

import (
	"encoding/json"
	"fmt"
	"strings"
)

// encodeGenres serializes a genre list into the JSON stored in the
// genres column.  A nil list is stored as an empty array.
func encodeGenres(genres []string) (string, error) {
	if genres == nil {
		genres = []string{}
	}
	b, err := json.Marshal(genres)
	if err != nil {
		return "", fmt.Errorf("encode genres: %w", err)
	}
	return string(b), nil
}

// decodeGenres parses the genres column.  NULL or empty values decode to
// an empty list.
func decodeGenres(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	return out, nil
}

// likePattern builds a case-insensitive substring pattern for LIKE.  The
// term is lower-cased and its wildcard characters are escaped so they
// match literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

// inClause returns "?, ?, ?" with n placeholders.
func inClause(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// uniqueIDs drops duplicate ids while keeping first-seen order.
func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
