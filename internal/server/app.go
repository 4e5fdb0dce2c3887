// Package server wires storage, the document service and both network
// endpoints together and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/signly/internal/logging"
	"github.com/dmitrijs2005/signly/internal/server/attachments"
	"github.com/dmitrijs2005/signly/internal/server/config"
	"github.com/dmitrijs2005/signly/internal/server/fees"
	"github.com/dmitrijs2005/signly/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/signly/internal/server/services"

	gs "github.com/dmitrijs2005/signly/internal/server/grpc"
	hs "github.com/dmitrijs2005/signly/internal/server/http"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	documentService *services.DocumentService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, m, err := repomanager.Open(ctx, c.StorageType, c.DatabaseDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	checker, err := fees.FromConfig(c.MinimumFee)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("fee config error: %w", err)
	}

	var store attachments.Store
	if c.AttachmentsEnabled() {
		store = attachments.NewS3Store(attachments.Settings{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	} else {
		logger.Info(ctx, "attachments disabled, no bucket configured")
	}

	ds := services.NewDocumentService(db, m, checker, store, c, logger)

	return &App{config: c, logger: logger, db: db, documentService: ds}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.documentService, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := hs.NewServer(app.config.EndpointAddrHTTP, app.logger, app.documentService, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until both servers have stopped.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
