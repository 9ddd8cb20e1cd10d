package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/alexanderramin/haven/internal/repository"
	"github.com/spf13/cobra"
)

func newSkillsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Learn survival skills step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSkillCategories(app.Skills.StoredCategories(cmd.Context())))
			return nil
		},
	}

	cmd.AddCommand(
		newSkillsListCmd(app),
		newSkillsShowCmd(app),
		newSkillsSearchCmd(app),
		newSkillsPathCmd(app),
		newSkillsRecommendCmd(app),
		newSkillsProgressCmd(app),
	)
	return cmd
}

func parseSkillID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid skill id %q: expected a positive number", s)
	}
	return id, nil
}

// skillError turns a missing skill into a readable message.
func skillError(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("skill %d not found", id)
	}
	return err
}

func newSkillsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List skills of a category",
		Long:  "List skills of a category. Without a category, list the categories.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSkillCategories(app.Skills.StoredCategories(ctx)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSkillList(args[0]+" 技能", app.Skills.ByCategory(ctx, args[0])))
			return nil
		},
	}
}

func newSkillsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Step-by-step guide for a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSkillID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			guide, err := app.Skills.StepByStep(ctx, id)
			if err != nil {
				return skillError(id, err)
			}
			prereqs, err := app.Skills.Prerequisites(ctx, id)
			if err != nil {
				return skillError(id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStepGuide(guide, prereqs))
			return nil
		},
	}
}

func newSkillsSearchCmd(app *App) *cobra.Command {
	var maxDifficulty int

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search skills by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := app.Skills.Search(cmd.Context(), args[0], maxDifficulty)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSkillList("搜索: "+args[0], found))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDifficulty, "max-difficulty", 0, "Only skills up to this difficulty (1-5, 0 = any)")
	return cmd
}

func newSkillsPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path <category>",
		Short: "Learning path of a category, easiest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgression(args[0], app.Skills.Progression(cmd.Context(), args[0])))
			return nil
		},
	}
}

func newSkillsRecommendCmd(app *App) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend skills for your level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendations(level, app.Skills.Recommend(cmd.Context(), level)))
			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", 1, "Your level (1-5)")
	return cmd
}

func newSkillsProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show your learning progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(app.Skills.ProgressFor(cmd.Context(), app.userID())))
			return nil
		},
	}
	cmd.AddCommand(newSkillsProgressSetCmd(app))
	return cmd
}

func newSkillsProgressSetCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "set <id> <percent>",
		Short: "Record progress on a skill (0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSkillID(args[0])
			if err != nil {
				return err
			}
			pct, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid percent %q: expected 0-100", args[1])
			}
			if err := app.Skills.RecordProgress(cmd.Context(), app.userID(), id, pct, notes); err != nil {
				return skillError(id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已记录进度 %s\n", formatter.RenderProgress(pct, 12))
			return nil
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Notes about your practice")
	return cmd
}
