package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"lightsoff/internal/db"
	"lightsoff/internal/domain/placereviews"
	"lightsoff/internal/domain/places"
	"lightsoff/internal/notifier"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func envOr(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}

var version = "0.1.0"

//	@title			Lightsoff API
//	@description	Place reporting service: clients report places and file reviews against them.

//	@BasePath	/v1

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, relying on process environment")
	}

	maxConns := 10
	if val, exists := os.LookupEnv("DB_MAX_CONNS"); exists {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("Invalid value for DB_MAX_CONNS: %v", err)
		}
		maxConns = parsed
	}

	cfg := config{
		addr:        envOr("ADDR", ":8080"),
		env:         envOr("ENV", "development"),
		apiURL:      os.Getenv("EXTERNAL_URL"),
		corsOrigins: strings.Split(envOr("CORS_ALLOWED_ORIGINS", ""), ","),
		hookURL:     os.Getenv("CREATE_REVIEW_ZAPPIER_HOOK_URL"),
		db: dbConfig{
			uri:         os.Getenv("DATABASE_URI"),
			maxConns:    int32(maxConns),
			maxIdleTime: envOr("DB_MAX_IDLE_TIME", "15m"),
		},
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	// Schema
	if err := db.RunMigrations(cfg.db.uri, logger); err != nil {
		logger.Fatal(err)
	}

	// Database
	pool, err := db.New(cfg.db.uri, cfg.db.maxConns, cfg.db.maxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	app := &application{
		config:   cfg,
		logger:   logger,
		places:   places.NewRepository(pool),
		reviews:  placereviews.NewRepository(pool),
		notifier: notifier.NewWebhook(cfg.hookURL, logger),
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
