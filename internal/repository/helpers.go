package repository

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/alexanderramin/haven/internal/domain"
)

// likeEscaper neutralises LIKE wildcards so keywords match literally. Every
// LIKE clause using likePattern must declare ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps keyword for a literal substring LIKE match.
func likePattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// splitTags parses the comma separated tag column.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// decodeList parses a JSON string array column. Malformed values yield nil.
func decodeList(s string) []string {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

// splitEnumeration splits a "、" separated list.
func splitEnumeration(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "、")
}

func clampLevel(v int) int {
	return domain.Clamp(v, 1, 5)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
