/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echopprof "github.com/sevenNt/echo-pprof"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/anbesabank/fyda-otp/cmd/common"
	"github.com/anbesabank/fyda-otp/internal/pkg/log"
	"github.com/anbesabank/fyda-otp/pkg/observability/health"
	"github.com/anbesabank/fyda-otp/pkg/observability/metrics"
	"github.com/anbesabank/fyda-otp/pkg/observability/metrics/noop"
	"github.com/anbesabank/fyda-otp/pkg/observability/metrics/prometheus"
	"github.com/anbesabank/fyda-otp/pkg/observability/tracing"
	otpflowtracing "github.com/anbesabank/fyda-otp/pkg/observability/tracing/wrappers/otpflow"
	"github.com/anbesabank/fyda-otp/pkg/otp"
	"github.com/anbesabank/fyda-otp/pkg/restapi/resterr"
	"github.com/anbesabank/fyda-otp/pkg/restapi/v1/healthcheck"
	"github.com/anbesabank/fyda-otp/pkg/restapi/v1/logapi"
	"github.com/anbesabank/fyda-otp/pkg/restapi/v1/otpform"
	"github.com/anbesabank/fyda-otp/pkg/restapi/v1/version"
	"github.com/anbesabank/fyda-otp/pkg/service/callback"
	"github.com/anbesabank/fyda-otp/pkg/service/otpflow"
)

const (
	healthEndpoint = "/health"

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

var logger = log.New("fyda-otp")

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
	Shutdown(ctx context.Context) error
}

// Options for the start command.
type Options struct {
	Version       string
	ServerVersion string
	HTTPServer    httpServer
}

// StartOpts configures the start command.
type StartOpts func(opts *Options)

// WithVersion sets the build version reported by GET /version.
func WithVersion(version string) StartOpts {
	return func(opts *Options) {
		opts.Version = version
	}
}

// WithServerVersion sets the deployment version reported by GET /version/system.
func WithServerVersion(version string) StartOpts {
	return func(opts *Options) {
		opts.ServerVersion = version
	}
}

// WithHTTPServer replaces the public HTTP server.
func WithHTTPServer(srv httpServer) StartOpts {
	return func(opts *Options) {
		opts.HTTPServer = srv
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start fyda-otp",
		Long:  "Start the Fyda OTP verification server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			common.SetDefaultLogLevel(logger, params.logLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownTracer, tracer, err := tracing.Initialize(params.tracingParams.exporter,
				params.tracingParams.serviceName)
			if err != nil {
				return fmt.Errorf("initialize tracing: %w", err)
			}

			defer shutdownTracer()

			conf, err := prepareConfiguration(ctx, params, tracer)
			if err != nil {
				return fmt.Errorf("failed to prepare configuration: %w", err)
			}

			defer conf.Close()

			return startServer(ctx, conf, opts...)
		},
	}
}

// nolint: funlen
func startServer(ctx context.Context, conf *Configuration, opts ...StartOpts) error {
	o := &Options{}

	for _, opt := range opts {
		opt(o)
	}

	params := conf.StartupParameters

	internalEcho := newEcho()
	ready := newReadinessController(internalEcho)

	e, err := buildEchoHandler(conf, internalEcho, o)
	if err != nil {
		return err
	}

	srv := o.HTTPServer
	if srv == nil {
		srv = &http.Server{
			Addr:              params.hostURL,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	var internalSrv *http.Server

	if params.internalHostURL != "" {
		internalSrv = &http.Server{
			Addr:              params.internalHostURL,
			Handler:           internalEcho,
			ReadHeaderTimeout: readHeaderTimeout,
		}

		go func() {
			logger.Info("Starting internal server", log.WithHostURL(params.internalHostURL))

			if serveErr := internalSrv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
				logger.Error("Internal server stopped", log.WithError(serveErr))
			}
		}()
	}

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("Starting fyda-otp server", log.WithHostURL(params.hostURL))

		if params.tlsParameters.serveCertPath != "" {
			serveErr <- srv.ListenAndServeTLS(params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath)

			return
		}

		serveErr <- srv.ListenAndServe()
	}()

	ready.Ready(true)

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		logger.Info("Shutting down fyda-otp server")
	}

	ready.Ready(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("Failed to shut down server", log.WithError(shutdownErr))
	}

	if internalSrv != nil {
		if shutdownErr := internalSrv.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("Failed to shut down internal server", log.WithError(shutdownErr))
		}
	}

	if err == nil && ctx.Err() != nil {
		err = <-serveErr
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}

func buildEchoHandler(conf *Configuration, internalEcho *echo.Echo, o *Options) (*echo.Echo, error) {
	params := conf.StartupParameters

	e := newEcho()

	if conf.IsTraceEnabled {
		e.Use(otelecho.Middleware(params.tracingParams.serviceName, otelecho.WithSkipper(OperationalSkipper)))
	}

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		Skipper:    OperationalSkipper,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Debugc(c.Request().Context(), v.Method+" "+v.URIPath,
				log.WithHTTPStatus(v.Status), log.WithDuration(v.Latency))

			return nil
		},
	}))

	m, err := createMetrics(params.metricsProviderName, internalEcho)
	if err != nil {
		return nil, err
	}

	notifier, err := callback.New(&callback.Config{
		RelayURL:          params.relayURL,
		AuthorizationCode: params.authorizationCode,
		HTTPClient:        callback.NewHTTPClient(params.callbackTimeout, conf.tlsConfig()),
		Metrics:           m,
		Tracer:            conf.Tracer,
	})
	if err != nil {
		return nil, fmt.Errorf("create callback notifier: %w", err)
	}

	latency := otp.FixedLatency(params.simulatedLatency)

	var otpFlowSvc otpflow.ServiceInterface = otpflow.NewService(&otpflow.Config{
		SessionStore: conf.SessionStore,
		OTPSender:    otp.NewSimulatedSender(latency),
		CodeVerifier: otp.NewStaticVerifier(params.acceptedOTP, latency),
		Notifier:     notifier,
		Metrics:      m,
	})

	if conf.IsTraceEnabled {
		otpFlowSvc = otpflowtracing.Wrap(otpFlowSvc, conf.Tracer)
	}

	secureCookie := params.tlsParameters.serveCertPath != ""
	if params.secureCookie != nil {
		secureCookie = *params.secureCookie
	}

	otpform.NewController(e, &otpform.Config{
		OTPFlowService: otpFlowSvc,
		SecureCookie:   secureCookie,
	})

	healthcheck.NewController(e)
	version.NewController(e, version.Config{Version: o.Version, ServerVersion: o.ServerVersion})
	logapi.NewController(e)

	internalEcho.GET(healthEndpoint, echo.WrapHandler(health.NewHandler(&health.Config{
		StoreType:   params.sessionStoreParameters.Type,
		RedisClient: conf.RedisClient,
	})))

	echopprof.Wrap(internalEcho)

	return e, nil
}

func createMetrics(providerName string, internalEcho *echo.Echo) (metrics.Metrics, error) {
	if providerName != prometheusMetricsProvider {
		return noop.GetMetrics(), nil
	}

	provider := prometheus.NewPrometheusProvider(internalEcho)

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider.Metrics(), nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	return e
}
