package domain

import "time"

// KnowledgeEntry is one article of the survival knowledge base.
type KnowledgeEntry struct {
	ID         int64
	Category   Category
	Title      string
	Content    string
	Difficulty int
	Priority   int
	Tags       []string
}

// ScenarioKnowledge is a knowledge article scoped to one scenario.
type ScenarioKnowledge struct {
	KnowledgeEntry
	Scenario Scenario
}

// QueryHistoryRecord is an append-only log entry of an answered question.
type QueryHistoryRecord struct {
	ID        int64
	Question  string
	Response  string
	Category  string
	CreatedAt time.Time
}

// HistoryExcerptLen is the number of runes of a response kept in history.
const HistoryExcerptLen = 200

// HistoryExcerpt truncates a response for storage in query history.
func HistoryExcerpt(response string) string {
	return Truncate(response, HistoryExcerptLen) + "..."
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
