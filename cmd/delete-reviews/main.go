package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"lightsoff/internal/db"
	"lightsoff/internal/domain/placereviews"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// delete-reviews is the out-of-band maintenance command that removes
// place_review rows by id:
//
//	delete-reviews 1 2 3
//
// Ids with no matching row are logged and otherwise ignored.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, relying on process environment")
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	logger := zap.New(core).Sugar()
	defer logger.Sync()

	ids := make([]int64, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			logger.Fatalw("invalid review id", "arg", arg, "error", err)
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		logger.Warn("at least one id must be specified. Usage: delete-reviews 1 2 3")
	}

	pool, err := db.New(os.Getenv("DATABASE_URI"), 2, "1m")
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := placereviews.NewRepository(pool).DeleteByIDs(ctx, ids)
	if err != nil {
		logger.Fatal(err)
	}

	logger.Infow("place reviews deleted", "count", len(deleted))

	if missing := missingIDs(ids, deleted); len(missing) > 0 {
		logger.Warnw("some ids were not found in the database", "ids", missing)
	}
}

// missingIDs returns the requested ids that were not deleted, in the
// order they were asked for.
func missingIDs(requested, deleted []int64) []int64 {
	seen := make(map[int64]bool, len(deleted))
	for _, id := range deleted {
		seen[id] = true
	}

	var missing []int64
	for _, id := range requested {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
