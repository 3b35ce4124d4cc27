package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"billscan-backend/internal/bills"
	"billscan-backend/internal/llm"
	"billscan-backend/internal/llm/openai"
	"billscan-backend/internal/ocr"
	"billscan-backend/internal/shared/config"
	"billscan-backend/internal/shared/server"
	"billscan-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Repo     bills.Repo
	Exporter bills.Exporter
	LLM      llm.Client
	Engine   ocr.Engine
	Service  *bills.Service
	Handler  *bills.Handler
}

// Overrides replaces external collaborators, used by tests to swap in fakes.
type Overrides struct {
	LLM      llm.Client
	Engine   ocr.Engine
	Repo     bills.Repo
	Exporter bills.Exporter
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config, overrides ...Overrides) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	var over Overrides
	if len(overrides) > 0 {
		over = overrides[0]
	}

	sqlDB, err := buildDB(ctx, cfg, over)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	app.Repo = over.Repo
	if app.Repo == nil {
		if sqlDB != nil {
			app.Repo = &bills.PGRepo{DB: sqlDB}
		} else {
			app.Repo = bills.NewMemoryRepo()
		}
	}

	app.Exporter = over.Exporter
	if app.Exporter == nil {
		exporter, err := bills.NewCSVExporter(cfg.CSVExportDir)
		if err != nil {
			return nil, err
		}
		app.Exporter = exporter
	}

	app.LLM = over.LLM
	if app.LLM == nil {
		app.LLM = buildLLM(cfg)
	}

	app.Engine = over.Engine
	if app.Engine == nil {
		app.Engine = ocr.NewTesseract(cfg.OCRLanguages)
	}

	app.Service = &bills.Service{
		Extractor: bills.NewExtractor(app.LLM),
		Repo:      app.Repo,
		Exporter:  app.Exporter,
	}
	app.Handler = bills.NewHandler(app.Service, &bills.Scanner{Engine: app.Engine})
	app.Router = server.NewRouter(cfg, app.Handler)

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config, over Overrides) (*sql.DB, error) {
	if over.Repo != nil {
		return nil, nil
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database unavailable, falling back to memory: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildLLM(cfg config.Config) llm.Client {
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Printf("bootstrap: %v; using placeholder LLM client", err)
		return llm.PlaceholderClient{}
	}
	return client
}

func isDevLike(env string) bool {
	switch env {
	case "dev", "local", "staging":
		return true
	}
	return false
}
