package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/haven/internal/advisor"
	"github.com/alexanderramin/haven/internal/cli"
	"github.com/alexanderramin/haven/internal/config"
	"github.com/alexanderramin/haven/internal/db"
	"github.com/alexanderramin/haven/internal/emergency"
	"github.com/alexanderramin/haven/internal/llm"
	"github.com/alexanderramin/haven/internal/repository"
	"github.com/alexanderramin/haven/internal/scenario"
	"github.com/alexanderramin/haven/internal/skills"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	settings, err := config.Open(env.ConfigPath)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	database, err := db.OpenDB(env.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	if err := db.Seed(context.Background(), db.NewSQLiteUnitOfWork(database)); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	// Repositories
	knowledgeRepo := repository.NewSQLiteKnowledgeRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	scenarioRepo := repository.NewSQLiteScenarioRepo(database)
	skillRepo := repository.NewSQLiteSkillRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	procedureRepo := repository.NewSQLiteProcedureRepo(database)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	llmCfg := llm.LoadConfig()
	var callObserver llm.Observer = llm.NoopObserver{}
	var answerObserver advisor.AnswerObserver = advisor.NoopAnswerObserver{}
	if llmCfg.LogCalls {
		callObserver = llm.NewLogObserver(os.Stderr)
		answerObserver = advisor.NewLogAnswerObserver(os.Stderr)
	}
	models, err := llm.NewManager(llmCfg, settings, callObserver)
	if err != nil {
		return err
	}

	app := &cli.App{
		Settings: settings,
		Session:  advisor.NewSession(settings),
		Composer: advisor.NewComposer(advisor.Deps{
			Responder: models,
			Knowledge: knowledgeRepo,
			History:   historyRepo,
			Logger:    logger,
			Observer:  answerObserver,
		}),
		Models:    models,
		Scenarios: scenario.NewService(scenarioRepo, logger),
		Knowledge: knowledgeRepo,
		Skills:    skills.NewGuide(skillRepo, progressRepo, logger),
		Emergency: emergency.NewService(procedureRepo, logger),
		History:   historyRepo,
	}

	// The bare command opens the shell only on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
