package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/matcher"
	"github.com/spf13/cobra"
)

func newKnowledgeCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "knowledge [category]",
		Short: "Browse the survival knowledge base",
		Long:  "Without a category, list every category with its entry count.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				counts, err := app.Knowledge.CountByCategory(ctx)
				if err != nil {
					return fmt.Errorf("counting knowledge: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCategoryCounts(counts, categoryKeywords()))
				return nil
			}

			category, err := parseCategory(args[0])
			if err != nil {
				return err
			}
			entries, err := app.Knowledge.ListByCategory(ctx, category, limit)
			if err != nil {
				return fmt.Errorf("listing %s: %w", category, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatKnowledgeList(string(category), entries))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of entries")

	cmd.AddCommand(newKnowledgeSearchCmd(app))
	return cmd
}

func newKnowledgeSearchCmd(app *App) *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search titles, content and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var category domain.Category
			if categoryFlag != "" {
				c, err := parseCategory(categoryFlag)
				if err != nil {
					return err
				}
				category = c
			}
			entries, err := app.Knowledge.Search(cmd.Context(), args[0], category)
			if err != nil {
				return fmt.Errorf("searching knowledge: %w", err)
			}
			title := fmt.Sprintf("搜索: %s (%d)", args[0], len(entries))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatKnowledgeList(title, entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Restrict to one category")
	return cmd
}

func parseCategory(s string) (domain.Category, error) {
	c := domain.Category(strings.TrimSpace(s))
	if slices.Contains(domain.Categories, c) {
		return c, nil
	}
	names := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		names = append(names, string(c))
	}
	return "", fmt.Errorf("unknown category %q (one of: %s)", s, strings.Join(names, ", "))
}

// keywordHints caps how many routing keywords the category view shows.
const keywordHints = 4

func categoryKeywords() map[domain.Category][]string {
	c := matcher.NewClassifier()
	out := make(map[domain.Category][]string, len(domain.Categories))
	for _, cat := range domain.Categories {
		kw := c.Keywords(cat)
		if len(kw) > keywordHints {
			kw = kw[:keywordHints]
		}
		out[cat] = kw
	}
	return out
}
