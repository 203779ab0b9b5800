package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/config"
	"github.com/mekdelawit/paperops/internal/repository/mongodb"
	"github.com/mekdelawit/paperops/internal/repository/sheets"
	"github.com/mekdelawit/paperops/internal/scheduler"
	"github.com/mekdelawit/paperops/internal/server/handlers"
	"github.com/mekdelawit/paperops/internal/server/router"
	collectionsvc "github.com/mekdelawit/paperops/internal/service/collections"
	evaluationsvc "github.com/mekdelawit/paperops/internal/service/evaluation"
	exportsvc "github.com/mekdelawit/paperops/internal/service/export"
	financesvc "github.com/mekdelawit/paperops/internal/service/finance"
	inventorysvc "github.com/mekdelawit/paperops/internal/service/inventory"
	paymentsvc "github.com/mekdelawit/paperops/internal/service/payments"
	reportingsvc "github.com/mekdelawit/paperops/internal/service/reporting"
	"github.com/mekdelawit/paperops/pkg/clients/webhook"
	"github.com/mekdelawit/paperops/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.Development))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.NewMongoRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var publisher exportsvc.Publisher
	if cfg.SheetsEnabled() {
		sheetPublisher, err := sheets.NewGoogleSheetPublisher(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets publisher", zap.Error(err))
		}
		publisher = sheetPublisher
		baseLogger.Info("google sheets export enabled")
	} else {
		baseLogger.Info("google sheets export disabled")
	}

	calculator := evaluationsvc.NewCalculator(baseLogger.Named("svc.evaluation"))
	evaluationSvc := evaluationsvc.NewService(repo, calculator, baseLogger.Named("svc.evaluation"))
	collectionSvc := collectionsvc.NewService(repo, baseLogger.Named("svc.collections"))
	inventorySvc := inventorysvc.NewService(repo, baseLogger.Named("svc.inventory"))
	paymentSvc := paymentsvc.NewService(repo, baseLogger.Named("svc.payments"))
	financeSvc := financesvc.NewService(repo, baseLogger.Named("svc.finance"))
	exportSvc := exportsvc.NewService(publisher, baseLogger.Named("svc.export"))
	reportingSvc := reportingsvc.NewService(inventorySvc, paymentSvc, financeSvc, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		Suppliers:   handlers.NewSupplierHandler(repo, baseLogger.Named("handlers.suppliers")),
		Collections: handlers.NewCollectionHandler(collectionSvc, baseLogger.Named("handlers.collections")),
		Evaluations: handlers.NewEvaluationHandler(evaluationSvc, baseLogger.Named("handlers.evaluations")),
		Inventory:   handlers.NewInventoryHandler(inventorySvc, baseLogger.Named("handlers.inventory")),
		Payments:    handlers.NewPaymentHandler(paymentSvc, baseLogger.Named("handlers.payments")),
		Finance:     handlers.NewFinanceHandler(financeSvc, reportingSvc, baseLogger.Named("handlers.finance")),
		Exports:     handlers.NewExportHandler(paymentSvc, exportSvc, baseLogger.Named("handlers.exports")),
	}, baseLogger.Named("router"))

	var notifier webhook.Notifier
	if cfg.Digest.WebhookURL != "" {
		notifier = webhook.NewClient(cfg.Digest.WebhookURL)
	}

	sched := scheduler.NewScheduler(*cfg, inventorySvc, reportingSvc, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
