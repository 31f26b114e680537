package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/example/srsqueue/internal/api"
	"github.com/example/srsqueue/internal/bot"
	"github.com/example/srsqueue/internal/config"
	"github.com/example/srsqueue/internal/database"
	"github.com/example/srsqueue/internal/excel"
	"github.com/example/srsqueue/internal/metrics"
	"github.com/example/srsqueue/internal/queue"
	"github.com/example/srsqueue/internal/scheduler"
	"github.com/example/srsqueue/internal/spaced_repetition"
	"github.com/example/srsqueue/internal/submission"
	"github.com/example/srsqueue/pkg/models"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	importPath := flag.String("import", "", "import study items from an .xlsx or .csv file and exit")
	exportPath := flag.String("export", "", "export stored study items to an .xlsx file and exit")
	sheet := flag.String("sheet", excel.DefaultSheet, "sheet name for -import and -export")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger := setupLogger(cfg.App.Env)
	defer logger.Sync()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	store := database.NewStore(db)

	switch {
	case *importPath != "":
		importCfg := excel.DefaultImportConfig()
		importCfg.FilePath = *importPath
		importCfg.SheetName = *sheet
		importCfg.Lang = cfg.Study.Lang
		result, err := excel.ImportItems(context.Background(), store, importCfg)
		if err != nil {
			logger.Fatal("import failed", zap.Error(err))
		}
		for _, e := range result.Errors {
			logger.Warn("skipped row", zap.String("reason", e))
		}
		logger.Info("import finished",
			zap.Int("processed", result.TotalProcessed),
			zap.Int("imported", result.Imported),
			zap.Int("skipped", result.Skipped),
		)
		return
	case *exportPath != "":
		n, err := excel.ExportItems(context.Background(), store, *exportPath, *sheet)
		if err != nil {
			logger.Fatal("export failed", zap.Error(err))
		}
		logger.Info("export finished", zap.Int("items", n), zap.String("path", *exportPath))
		return
	}

	if err := run(cfg, db, store, logger); err != nil {
		logger.Fatal("daemon stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, db *sqlx.DB, store *database.Store, logger *zap.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := api.NewClient(api.Options{
		BaseURL:           cfg.API.BaseURL,
		Token:             cfg.API.Token,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	}, logger)

	seed := cfg.App.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	quantifier, err := spaced_repetition.NewQuantifier(cfg.Policy, spaced_repetition.NewSeededSource(seed))
	if err != nil {
		return err
	}

	dueCounter := queue.NewDueCounter(client, queue.DueRequestFor(cfg.Study), logger)
	dueCounter.Subscribe(func(ev queue.DueCountEvent) {
		if ev.Err == nil {
			logger.Debug("due count", zap.Int("count", ev.Count), zap.Bool("local", ev.SkipServer))
		}
	})

	outbox := database.NewOutbox(db)
	q, err := queue.New(queue.Options{
		Settings:   cfg.Study,
		Remote:     client,
		Store:      store,
		Outbox:     outbox,
		Quantifier: quantifier,
		DueCounter: dueCounter,
		Logger:     logger,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}
	defer q.Wait()

	submitter := submission.NewSubmitter(client, outbox, dueCounter, cfg.Jobs.FlushBatchSize, logger)

	if err := q.Restore(ctx); err != nil {
		logger.Warn("failed to restore snapshot", zap.Error(err))
	}
	logger.Info("restored local queue", zap.Int("items", q.Len()), zap.Int("queued", q.QueueLen()))

	// Startup sync is best effort; the jobs retry on schedule
	if _, err := submitter.Flush(ctx); err != nil {
		logger.Warn("initial review flush failed", zap.Error(err))
	}
	if err := q.FetchNext(ctx, queue.NextOptions{Limit: cfg.Jobs.FetchLimit}); err != nil {
		logger.Warn("initial fetch failed", zap.Error(err))
	}
	if _, err := dueCounter.Update(ctx, false); err != nil {
		logger.Warn("initial due count failed", zap.Error(err))
	}

	var notifier scheduler.Notifier
	if cfg.Telegram.Token != "" {
		tg, err := bot.NewTelegramAPI(cfg.Telegram.Token, cfg.App.Env)
		if err != nil {
			return err
		}
		b := bot.New(tg, cfg.Telegram.ChatID, dueCounter, q, store, cfg.Study.Lang, logger)
		notifier = b

		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		go b.Listen(ctx, tg.GetUpdatesChan(u))
		defer tg.StopReceivingUpdates()
	}

	jobs := scheduler.New(scheduler.Config{
		DueCountInterval: cfg.Jobs.DueCountInterval,
		FetchInterval:    cfg.Jobs.FetchInterval,
		FlushInterval:    cfg.Jobs.FlushInterval,
		ReminderInterval: cfg.Jobs.ReminderInterval,
		FetchLimit:       cfg.Jobs.FetchLimit,
		AddBelowDue:      cfg.Jobs.AddBelowDue,
		AddLimit:         cfg.Jobs.AddLimit,
		StartHour:        cfg.Telegram.StartHour,
		EndHour:          cfg.Telegram.EndHour,
	}, dueCounter, q, submitter, notifier, logger)
	if err := jobs.Start(ctx); err != nil {
		return err
	}

	var srv *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("daemon started", zap.String("lang", cfg.Study.Lang), zap.String("user", cfg.Study.UserID))

	for sig := range sigChan {
		if sig != syscall.SIGHUP {
			logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
			break
		}
		reloadSettings(ctx, q, dueCounter, cfg.Study, logger)
	}
	cancel()
	jobs.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if srv != nil {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", zap.Error(err))
		}
	}
	// Last chance to get graded reviews to the server; anything left stays in the outbox
	if _, err := submitter.Flush(shutdownCtx); err != nil {
		logger.Warn("final review flush failed", zap.Error(err))
	}
	return nil
}

// reloadSettings applies the study section of a freshly loaded config. The
// user and language stay fixed for the life of the process.
func reloadSettings(ctx context.Context, q *queue.Queue, due *queue.DueCounter, current models.StudySettings, logger *zap.Logger) {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config reload failed, keeping current settings", zap.Error(err))
		return
	}
	settings := cfg.Study
	if settings.UserID != current.UserID || settings.Lang != current.Lang {
		logger.Warn("user and language changes need a restart",
			zap.String("user", settings.UserID),
			zap.String("lang", settings.Lang),
		)
		settings.UserID, settings.Lang = current.UserID, current.Lang
	}

	q.SetSettings(settings)
	count, err := due.Update(ctx, false)
	if err != nil {
		logger.Warn("due count after reload failed", zap.Error(err))
		return
	}
	logger.Info("settings reloaded", zap.Strings("parts", settings.PartStrings()), zap.Int("due", count))
}
