package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/chemfetch/sds-parser/internal/catalog"
	"github.com/chemfetch/sds-parser/internal/common"
	"github.com/chemfetch/sds-parser/internal/extract"
	"github.com/chemfetch/sds-parser/internal/ingest"
	"github.com/chemfetch/sds-parser/internal/register"
	"github.com/chemfetch/sds-parser/internal/server"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Pattern catalog: explicit file wins, built-in set otherwise.
	var cat catalog.Catalog
	if cfg.Register.PatternsPath != "" {
		var err error
		cat, err = catalog.Load(cfg.Register.PatternsPath)
		if err != nil {
			log.Fatalf("loading pattern catalog: %v", err)
		}
		log.Infow("pattern catalog loaded", "path", cfg.Register.PatternsPath, "fields", len(cat))
	} else {
		cat = catalog.Default()
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slogger := slog.Default()
	asm := extract.NewAssembler(slogger, cat)
	store := register.NewStore(cfg.Register.CSVPath, slogger)
	extractor := ingest.NewExtractor(slogger, cfg.OCR)

	svc := server.NewService(logger, cfg.Server, asm, store, extractor)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: svc.Router(),
	}

	log.Infof("HTTP serving on %s", cfg.Server.HTTPAddr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	fmt.Println("stopped.")
}
