package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/uptrace/opentelemetry-go-extra/otellogrus"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdk_trace "go.opentelemetry.io/otel/sdk/trace"
	"gopkg.in/yaml.v3"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/api"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/eventpubsub"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/services"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/utils"
)

func main() {
	run()
}

// setupOTelSDK bootstraps the OpenTelemetry pipeline.
// If it does not return an error, make sure to call shutdown for proper cleanup.
func setupOTelSDK(ctx context.Context) (shutdown func(context.Context) error, err error) {
	var shutdownFuncs []func(context.Context) error

	// shutdown calls cleanup functions registered via shutdownFuncs.
	// The errors from the calls are joined.
	// Each registered cleanup will be invoked once.
	shutdown = func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}

	// handleErr calls shutdown for cleanup and makes sure that all errors are returned.
	handleErr := func(inErr error) {
		err = errors.Join(inErr, shutdown(ctx))
	}

	prop := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(prop)

	traceExporter, err := otlptrace.New(ctx, otlptracehttp.NewClient())
	if err != nil {
		handleErr(err)
		return
	}

	res, err := resource.New(ctx, resource.WithAttributes(attribute.String("service.name", "calendar-spread-screener")))
	if err != nil {
		handleErr(err)
		return
	}

	tracerProvider := sdk_trace.NewTracerProvider(
		sdk_trace.WithBatcher(traceExporter),
		sdk_trace.WithResource(res),
	)
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		handleErr(err)
		return
	}

	meterProvider := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(metricExporter)))
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	otel.SetMeterProvider(meterProvider)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Second))
	if err != nil {
		log.Fatalf("runtime.Start: %v", err)
	}

	return
}

func loadServerConfig() models.ScreeningConfig {
	cfg := models.NewScreeningConfig()

	configFile := os.Getenv("SCREENER_CONFIG")
	if configFile == "" {
		return cfg
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("failed to read %s: %v", configFile, err)
	}

	var configYAML models.ScreenerConfigYAML
	if err := yaml.Unmarshal(data, &configYAML); err != nil {
		log.Fatalf("failed to parse %s: %v", configFile, err)
	}

	cfg, err = configYAML.ToScreeningConfig()
	if err != nil {
		log.Fatalf("invalid screener config: %v", err)
	}

	return cfg
}

func run() {
	projectsDir, err := utils.GetEnv("PROJECTS_DIR")
	if err != nil {
		log.Fatalf("PROJECTS_DIR not set: %v", err)
	}

	goEnv, err := utils.GetEnv("GO_ENV")
	if err != nil {
		log.Fatalf("GO_ENV not set: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	if err := utils.InitEnvironmentVariables(projectsDir, goEnv); err != nil {
		log.Panic(err)
	}

	eventpubsub.Init()

	log.SetOutput(os.Stdout)

	log.Infof("Log level set to %v", log.GetLevel())

	// Set up Telemetry
	log.AddHook(otellogrus.NewHook(otellogrus.WithLevels(
		log.PanicLevel,
		log.FatalLevel,
		log.ErrorLevel,
		log.WarnLevel,
		log.InfoLevel,
	)))

	otelShutdown, err := setupOTelSDK(ctx)
	if err != nil {
		log.Fatalf("failed to setup otel sdk: %v", err)
	}

	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			log.Errorf("failed to shut down otel sdk: %v", err)
		}
	}()

	polygonApiKey, err := utils.GetEnv("POLYGON_API_KEY")
	if err != nil {
		log.Fatalf("$POLYGON_API_KEY not set: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := loadServerConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := eventpubsub.Subscribe(eventpubsub.TickerSkippedEvent, func(event eventpubsub.TickerSkipped) {
		log.WithField("scan_id", event.ScanID).Warnf("Skipped %s %ss: %s", event.Ticker, event.OptionType, event.Reason)
	}); err != nil {
		log.Fatalf("failed to subscribe to skip events: %v", err)
	}

	scanner := services.NewScanner(services.NewPolygonQuoteSource(polygonApiKey))

	router := mux.NewRouter()
	server := api.NewServer(scanner, cfg)
	server.RouterSetup("", router)

	// Setup web server
	srv := &http.Server{
		Handler: router,
		Addr:    fmt.Sprintf(":%s", port),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Start web server
	go func() {
		log.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil {
			if err.Error() != "http: Server closed" {
				log.Fatalf("failed to start server: %v", err)
			}
		}
	}()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	log.Info("Main: init complete")

	// Block here until program is shut down
	<-stop

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}

	log.Info("Main: gracefully stopped!")
}
