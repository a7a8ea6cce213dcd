package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"servicedesk/config"
	"servicedesk/internal/delivery"
	apimiddleware "servicedesk/internal/delivery/api/middleware"
	"servicedesk/internal/delivery/api/router"
	"servicedesk/internal/delivery/api/validator"
	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/delivery/middleware"
	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/lifecycle"
	"servicedesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Recorder `optional:"true"`
	RouterParams router.RouterParams
}

// NewServer builds the API server. Routes are registered immediately;
// listening starts in Serve.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg
	if err := checkBodyLimit(cfg, params.Logger); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	// Request ID comes first so panics and access logs carry it.
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), params.Logger).
				Error("Recovered from panic", slog.Any("error", err), slog.String("stack", string(stack)))

			return err
		},
	}))
	e.Use(middleware.NewLoggerMiddleware(params.Logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		// Label downloads name the file in Content-Disposition.
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID, echo.HeaderContentDisposition},
	}))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	if cfg.Metrics.Enabled && params.Metrics != nil {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	srv := &apiServer{
		cfg:    cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// checkBodyLimit rejects unparsable sizes and warns when a full batch of
// complaint photos cannot fit in one request.
func checkBodyLimit(cfg *config.Config, logger *slog.Logger) error {
	bodyLimit, err := bytes.Parse(cfg.HTTP.MaxRequestBodySize)
	if err != nil {
		return errors.Wrapf(err, "invalid max request body size %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Storage.MaxPhotoSize == "" {
		return nil
	}

	photoLimit, err := bytes.Parse(cfg.Storage.MaxPhotoSize)
	if err != nil {
		return errors.Wrapf(err, "invalid max photo size %q", cfg.Storage.MaxPhotoSize)
	}
	if batch := photoLimit * entity.MaxComplaintPhotos; bodyLimit < batch {
		logger.Warn("Request body limit is smaller than a full photo batch",
			slog.String("max_request_body_size", cfg.HTTP.MaxRequestBodySize),
			slog.String("photo_batch_size", bytes.Format(batch)),
		)
	}

	return nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
