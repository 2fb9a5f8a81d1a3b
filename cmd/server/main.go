package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/audio"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/catalog"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/config"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/db"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/detect"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/handler"
	transport "github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/http"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/repository"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/scheduler"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/snowflake"
)

// @title SpeechToTxt API
// @version 1.0
// @description Text and voice translation for Indian languages with session history and two-speaker conversation mode.
// @BasePath /api
func main() {
	cfg := config.Load()
	logger.Init(logger.Options{Level: logger.ParseLevel(cfg.LogLevel), Format: cfg.LogFormat})

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	rateLimiter := ai.NewRateLimiter(cfg.RateLimit)
	settingsRepo := repository.NewSettingsRepository(dbConn)
	settingsService := service.NewSettingsService(settingsRepo, cfg.Providers, cfg.RateLimit, rateLimiter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stored rate limit overrides the configured one.
	if resolved, err := settingsService.ResolveProviderSettings(ctx); err == nil && resolved.RateLimit > 0 {
		rateLimiter.SetLimit(resolved.RateLimit)
	}

	clientFactory := network.NewClientFactory(settingsService, cfg.RequestTimeout)
	langs := catalog.Default()
	detector := detect.NewLinguaDetector(detect.Options{Codes: langs.Codes(), Seed: cfg.DetectorSeed})
	mic := audio.NewMicrophone(cfg.ListenTimeout)
	backends := service.NewBackends(settingsService, clientFactory, langs, rateLimiter)
	translatorService := service.NewTranslatorService(langs, detector, backends, mic, cfg.HistoryLimit)
	sessions := session.NewManager(model.ThemeLight)

	router := transport.NewRouter(transport.Handlers{
		Language:     handler.NewLanguageHandler(translatorService),
		Translate:    handler.NewTranslateHandler(translatorService),
		Conversation: handler.NewConversationHandler(translatorService),
		History:      handler.NewHistoryHandler(translatorService),
		Session:      handler.NewSessionHandler(sessions),
		Settings:     handler.NewSettingsHandler(settingsService),
	}, sessions, cfg.StaticDir)

	janitor := scheduler.New(sessions, cfg.SessionTTL, 0)
	janitor.Start()
	defer janitor.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "module", "main", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr, "languages", langs.Len())
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "module", "main", "action", "stop", "resource", "http", "result", "ok")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return router.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
