package cli

import (
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/emergency"
	"github.com/alexanderramin/haven/internal/llm"
)

// shellBuiltins are handled by the shell itself rather than cobra.
var shellBuiltins = []string{"help", "clear", "exit", "quit"}

// cobraCommands are passed through to the command tree.
var cobraCommands = []string{"ask", "scenario", "model", "knowledge", "skills", "emergency", "history", "config"}

func allCommandNames() []string {
	return append(append([]string{}, cobraCommands...), shellBuiltins...)
}

func subcommandNames() map[string][]string {
	knowledge := []string{"search"}
	for _, c := range domain.Categories {
		knowledge = append(knowledge, string(c))
	}
	return map[string][]string{
		"scenario":  {"list", "show", "set", "threats", "risk", "tips", "knowledge", "search"},
		"model":     {"list", "use", "key", "test", "stats"},
		"knowledge": knowledge,
		"skills":    {"list", "show", "search", "path", "recommend", "progress"},
		"emergency": {"identify", "assess", "guide", "procedure", "contacts", "plan"},
		"config":    {"show", "reset"},
	}
}

// argumentSuggestions completes the third word of commands whose argument is
// drawn from a fixed catalogue.
func argumentSuggestions(cmd, sub string) []string {
	switch {
	case cmd == "scenario" && (sub == "set" || sub == "show"):
		ids := make([]string, 0, len(domain.Scenarios))
		for _, s := range domain.Scenarios {
			ids = append(ids, string(s))
		}
		return ids
	case cmd == "model" && (sub == "use" || sub == "key" || sub == "test"):
		ids := make([]string, 0, len(llm.Catalogue))
		for _, m := range llm.Catalogue {
			ids = append(ids, string(m.ID))
		}
		return ids
	case cmd == "emergency" && (sub == "guide" || sub == "procedure"):
		return emergency.Types()
	}
	return nil
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

func isCobraCommand(name string) bool {
	for _, c := range cobraCommands {
		if c == name {
			return true
		}
	}
	return false
}
