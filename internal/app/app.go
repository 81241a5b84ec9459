package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amirhxil/partner-transaction-api/config"
	"github.com/amirhxil/partner-transaction-api/internal/controller"
	"github.com/amirhxil/partner-transaction-api/internal/domain"
	circuitbreaker "github.com/amirhxil/partner-transaction-api/internal/infrastructure/circuit-breaker"
	"github.com/amirhxil/partner-transaction-api/internal/infrastructure/message-queue/kafka"
	"github.com/amirhxil/partner-transaction-api/internal/infrastructure/metrics"
	"github.com/amirhxil/partner-transaction-api/internal/infrastructure/tracing"
	localmiddleware "github.com/amirhxil/partner-transaction-api/internal/middleware"
	"github.com/amirhxil/partner-transaction-api/internal/publisher"
	"github.com/amirhxil/partner-transaction-api/internal/service"
	"github.com/amirhxil/partner-transaction-api/pkg/response"
	"github.com/amirhxil/partner-transaction-api/pkg/utils"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "partner-transaction-api"

// App wires the transport around the transaction service. Clock and
// Publisher may be set before Setup to replace the real ones.
type App struct {
	Config    *config.Config
	Server    *echo.Echo
	Clock     clockwork.Clock
	Publisher publisher.SettlementPublisher
	Registry  *prometheus.Registry

	metricsServer  *echo.Echo
	traceProvider  *sdktrace.TracerProvider
	dispatcher     *publisher.AsyncPublisher
	closePublisher func() error
}

func (app *App) Setup() error {
	if app.Clock == nil {
		app.Clock = clockwork.NewRealClock()
	}
	if app.Registry == nil {
		app.Registry = prometheus.NewRegistry()
	}

	location, err := utils.LoadPartnerLocation(app.Config.PartnerTimezone)
	if err != nil {
		return err
	}

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost, serviceName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}
	app.traceProvider = traceProvider

	if app.Publisher == nil {
		app.Publisher = app.createPublisher()
	}
	app.dispatcher = publisher.CreateAsyncPublisher(app.Publisher, publisher.DefaultQueueSize, publisher.DefaultWorkers, publisher.DefaultPublishTimeout)

	registry := domain.CreatePartnerRegistry(app.Config.Partners)
	if registry.Len() == 0 {
		log.Warn().Str("component", "Setup").Msg("no partner credentials configured, every submission will be denied")
	}

	e := echo.New()
	e.HideBanner = true

	if traceProvider != nil {
		tracer := traceProvider.Tracer(serviceName)
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Registerer: app.Registry,
	}))
	e.Use(localmiddleware.Logger)
	e.Use(localmiddleware.BodyLogger())

	api := e.Group("/api")
	v1 := api.Group("/v1")

	svc := service.CreateTransactionService(
		registry,
		app.Config.PolicyConfig,
		location,
		app.Clock,
		app.dispatcher,
		metrics.CreateMetrics(app.Registry),
	)
	controller.CreateTransactionController(api, svc)

	v1.GET("/ping", func(c echo.Context) error {
		return response.WritePingResponse(c, "Hello, World!")
	})

	metricsServer := echo.New()
	metricsServer.HideBanner = true
	metricsServer.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: app.Registry,
	}))

	app.Server = e
	app.metricsServer = metricsServer

	log.Info().
		Int("partners", registry.Len()).
		Bool("enforce_timestamp_skew", app.Config.PolicyConfig.EnforceTimestampSkew).
		Int("timestamp_skew_minutes", app.Config.PolicyConfig.TimestampSkewMinutes).
		Bool("enforce_signature", app.Config.PolicyConfig.EnforceSignature).
		Msg("transaction service configured")

	return nil
}

func (app *App) createPublisher() publisher.SettlementPublisher {
	if app.Config.KafkaConfig.BrokerAddress == "" {
		log.Info().Str("component", "createPublisher").Msg("no broker configured, settlement events are not published")
		return publisher.NoopPublisher{}
	}

	writer := kafka.CreateKafkaWriter(app.Config)
	app.closePublisher = writer.Close

	return publisher.CreateKafkaSettlementPublisher(writer, circuitbreaker.CreateCircuitBreaker(serviceName))
}

// Start blocks until the HTTP server stops.
func (app *App) Start() error {
	if app.Server == nil {
		if err := app.Setup(); err != nil {
			return err
		}
	}

	go func() {
		if err := app.metricsServer.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errList []error
	if app.Server != nil {
		errList = append(errList, app.Server.Shutdown(ctx))
	}
	if app.metricsServer != nil {
		errList = append(errList, app.metricsServer.Shutdown(ctx))
	}
	if app.dispatcher != nil {
		errList = append(errList, app.dispatcher.Close())
	}
	if app.closePublisher != nil {
		errList = append(errList, app.closePublisher())
	}
	if app.traceProvider != nil {
		errList = append(errList, app.traceProvider.Shutdown(ctx))
	}

	return errors.Join(errList...)
}
