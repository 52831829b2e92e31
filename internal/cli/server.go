package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aurora-journal-service/internal/app"
	"aurora-journal-service/internal/auth"
	"aurora-journal-service/internal/config"
	"aurora-journal-service/internal/infra/memory"
	pgstore "aurora-journal-service/internal/infra/postgres"
	redisstore "aurora-journal-service/internal/infra/redis"
	"aurora-journal-service/internal/prompt"
	transport "aurora-journal-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the journal server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var entries app.EntryRepository = memory.NewEntryStore()
	var results app.ResultRepository = memory.NewResultStore()
	if pool != nil {
		entries = pgstore.NewEntryStore(pool)
		results = pgstore.NewResultStore(pool)
	}

	draftTTL := config.TTLDuration(cfg.Journal.DraftTTL, 24*time.Hour)
	var drafts transport.DraftRepository = memory.NewDraftStore()
	var promptCache app.PromptCache = memory.NewPromptCache()
	if redisClient != nil {
		drafts = redisstore.NewDraftStore(redisClient, draftTTL)
		promptCache = redisstore.NewPromptCache(redisClient)
	}

	var sessions app.SessionRepository = memory.NewSessionStore()
	if redisClient != nil {
		sessions = redisstore.NewSessionStore(redisClient, redisTTL)
	}

	catalogTTL := config.TTLDuration(cfg.Assessment.CatalogTTL, 10*time.Minute)
	catalogRepo := memory.NewCatalogRepository(memory.DefaultCatalogLoader(), catalogTTL)
	catalog, err := catalogRepo.GetCatalog(ctx)
	if err != nil {
		return err
	}

	assessments, err := app.NewAssessmentService(
		sessions,
		results,
		catalog,
		config.IntOr(cfg.Assessment.TotalQuestions, 50),
		config.IntOr(cfg.Assessment.QuestionsPerBatch, 10),
		logger,
	)
	if err != nil {
		return err
	}

	journal := app.NewJournalService(entries, config.IntOr(cfg.Journal.CompletionWords, 100), logger)

	var generator app.Generator
	if g := prompt.NewOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model, config.TTLDuration(cfg.OpenAI.Timeout, 10*time.Second)); g != nil {
		generator = g
	} else {
		logger.Warn("openai api key not configured, prompt generation degrades to the fallback prompt")
	}
	prompts := app.NewPromptService(generator, promptCache, config.TTLDuration(cfg.Prompt.CacheTTL, 24*time.Hour), logger)

	verifier := auth.NewVerifier(cfg.Auth.Secret)
	if verifier == nil {
		logger.Warn("auth secret not configured, journal endpoints are unavailable")
	}

	autosaveInterval := config.TTLDuration(cfg.Journal.AutosaveInterval, 10*time.Second)
	persistTimeout := config.TTLDuration(cfg.Journal.PersistTimeout, 5*time.Second)

	wsHandler := transport.NewWSHandler(assessments, logger)
	editorHandler := transport.NewEditorHandler(drafts, autosaveInterval, persistTimeout, logger)
	journalHandler := transport.NewJournalHandler(journal, prompts, drafts, verifier, cfg.Client, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws/assessment", wsHandler.ServeWS)
	mux.HandleFunc("/ws/editor", editorHandler.ServeEditor)
	journalHandler.Register(mux)

	server := &http.Server{
		Addr:              ":" + finalPort,
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("starting journal service", zap.String("port", finalPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
