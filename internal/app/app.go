package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/loanapp/internal/config"
	"github.com/GlebRadaev/loanapp/internal/console"
	"github.com/GlebRadaev/loanapp/internal/handlers"
	"github.com/GlebRadaev/loanapp/internal/repo"
	"github.com/GlebRadaev/loanapp/internal/reporter"
	"github.com/GlebRadaev/loanapp/internal/service"
	"github.com/GlebRadaev/loanapp/internal/telemetry"
	"github.com/GlebRadaev/loanapp/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	rep  *reporter.Reporter

	in  io.Reader
	out io.Writer

	group    *errgroup.Group
	groupCtx context.Context
	done     chan error
	ready    bool
}

func New() *Application {
	return &Application{
		in:   os.Stdin,
		out:  os.Stdout,
		done: make(chan error, 1),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	return a.start(ctx, cfg)
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	a.group, a.groupCtx = errgroup.WithContext(ctx)
	a.cfg = cfg
	a.repo = repo.New()
	a.srv = service.New(a.repo)
	a.rep = reporter.New(cfg.ReportInterval, a.srv.MetricsService)

	if cfg.HTTPEnabled() {
		exposition, err := telemetry.Handler(a.srv.MetricsService)
		if err != nil {
			zap.L().Error("metrics registry failed: ", zap.Error(err))
			return fmt.Errorf("can't register metrics collector: %w", err)
		}
		a.api = handlers.New(a.srv, exposition)

		if err = a.startHTTPServer(a.groupCtx); err != nil {
			return fmt.Errorf("can't start http server: %w", err)
		}
	}

	a.startReporter(a.groupCtx)

	if cfg.ConsoleEnabled() {
		a.startConsole(a.groupCtx)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("mode", cfg.Mode))
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.group.Go(func() error {
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	a.group.Go(func() error {
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})

	return nil
}

func (a *Application) startReporter(ctx context.Context) {
	a.group.Go(func() error {
		a.rep.Run(ctx)
		return nil
	})
}

// startConsole is not part of the group: a pending stdin read cannot be interrupted.
func (a *Application) startConsole(ctx context.Context) {
	c := console.New(a.srv.ConsoleService, a.in, a.out)
	go func() {
		a.done <- c.Run(ctx)
	}()
}

// Wait blocks until ctx is done, a supervised component fails or the console
// finishes, then stops everything in the group and waits for it.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var consoleErr error

	select {
	case <-a.groupCtx.Done():
	case err := <-a.done:
		if err != nil {
			consoleErr = fmt.Errorf("console exited with error: %w", err)
		}
	}
	cancel()

	if err := a.group.Wait(); err != nil {
		zap.L().Error(err.Error())
		return err
	}
	if consoleErr != nil {
		zap.L().Error(consoleErr.Error())
	}
	return consoleErr
}
