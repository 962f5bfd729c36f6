// Package worker hosts the deliveries of the proximity worker.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"ecospot/config"
	"ecospot/internal/delivery"
	"ecospot/internal/delivery/middleware"
	"ecospot/internal/delivery/worker/handler"
	"ecospot/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushBodyLimit caps push envelopes. Location events are a few hundred bytes.
const pushBodyLimit = "64KB"

// pushServer receives Pub/Sub push deliveries over HTTP.
type pushServer struct {
	logger *slog.Logger
	echo   *echo.Echo
	server *http.Server
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the push endpoint of the proximity worker.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg
	e := newEcho(cfg, params.Logger, params.PushHandler)

	srv := &pushServer{
		logger: params.Logger,
		echo:   e,
		server: &http.Server{
			Addr:              net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
			Handler:           e,
			ReadTimeout:       cfg.HTTP.Timeouts.ReadTimeout,
			ReadHeaderTimeout: cfg.HTTP.Timeouts.ReadHeaderTimeout,
			WriteTimeout:      cfg.HTTP.Timeouts.WriteTimeout,
			IdleTimeout:       cfg.HTTP.Timeouts.IdleTimeout,
		},
	}

	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	provider := "noop"
	if cfg.PubSub != nil && cfg.PubSub.Provider != "" {
		provider = cfg.PubSub.Provider
	}
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "provider": provider})
	})

	e.POST("/push", pushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (s *pushServer) Serve(_ context.Context) error {
	s.logger.Info("Starting proximity push endpoint", slog.String("addr", s.server.Addr))
	if err := s.echo.StartServer(s.server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *pushServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down proximity push endpoint")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
