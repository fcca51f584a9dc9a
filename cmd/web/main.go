package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	apphttp "github.com/ozgurkaracam/aytas-flyer/internal/http"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
	"github.com/ozgurkaracam/aytas-flyer/internal/render"
	"github.com/ozgurkaracam/aytas-flyer/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	var (
		prodRepo products.Repository
		campRepo campaigns.Repository
	)

	// With no DB_DSN the server runs on seeded in-memory repos, which is
	// enough for local editing and export.
	dsn := os.Getenv("DB_DSN")
	if dsn != "" {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&products.Product{}, &campaigns.Campaign{}, &campaigns.Item{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		prodRepo = products.NewRepo(db)
		campRepo = campaigns.NewRepo(db)
		logger.Info("using mysql", "driver", "gorm")
	} else {
		mp := products.NewMemoryRepo()
		mc := campaigns.NewMemoryRepo()
		demo, err := campaigns.SeedDemo(ctx, mc, mp)
		if err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
		prodRepo = mp
		campRepo = mc
		logger.Info("using in-memory store", "demo_campaign_id", demo.ID)
	}

	store, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to configure image storage: %v", err)
	}
	logger.Info("image storage ready", "driver", store.Driver)

	uploadDir := ""
	if store.Driver == "local" {
		uploadDir = envOr("LOCAL_UPLOAD_DIR", "./storage/uploads")
	}

	r := apphttp.NewRouter(apphttp.RouterDeps{
		Logger:         logger,
		Service:        campaigns.NewService(campRepo, prodRepo),
		Products:       prodRepo,
		Renderer:       render.NewChrome(logger),
		Storage:        store.Storage,
		LocalUploadDir: uploadDir,
	})

	addr := ":" + envOr("PORT", "5151")
	logger.Info("listening", "addr", addr)
	_ = r.Run(addr)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
