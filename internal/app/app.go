package app

import (
	"context"
	"fmt"
	"io"

	"access-log-analyzer/internal/analyzers"
	"access-log-analyzer/internal/parsers"
	"access-log-analyzer/internal/reports"
	"access-log-analyzer/internal/shared/configs"
	"access-log-analyzer/internal/shared/loggers"
	"access-log-analyzer/internal/shared/metrics"
	"access-log-analyzer/internal/shared/svcerrors"
	"access-log-analyzer/internal/shared/ulid"
	"access-log-analyzer/internal/sources"
)

const appName = "access-log-analyzer"

// App holds all application dependencies for one invocation.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	stdout    io.Writer

	source          sources.LogSource
	analysisService analyzers.AnalysisService
	renderer        reports.Renderer
}

// New creates and initializes a new App instance. The report goes to stdout
// and diagnostics to stderr.
func New(config *configs.Config, stdout, stderr io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	renderer, err := reports.NewRenderer(config.Report.Format, config.Report.ShowPerformance)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	parser := parsers.NewAccessLogParser()
	analysisService := analyzers.NewAnalysisService(parser, config.Parser.MaxLineBytes, config.Report.TopUserAgents)

	return &App{
		config:          config,
		appLogger:       appLogger,
		stdout:          stdout,
		source:          sources.NewFileSource(),
		analysisService: analysisService,
		renderer:        renderer,
	}, nil
}

// Run analyzes the log file at path and writes the report. The metrics
// textfile, when configured, is written for failed runs too.
func (app *App) Run(ctx context.Context, path string) error {
	runLogger := app.appLogger.With().
		Str(loggers.FieldRunID, ulid.NewULID()).
		Str(loggers.FieldSourcePath, path).
		Logger()
	ctx = runLogger.WithContext(ctx)

	runLogger.Info().
		Msgf("Starting analysis (log_level=%s, report_format=%s, max_line_bytes=%d)",
			app.config.Log.Level,
			app.config.Report.Format,
			app.config.Parser.MaxLineBytes)

	runErr := app.run(ctx, path)

	errorCode := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(runErr); ok {
		errorCode = svcErr.Code
	}
	metricRunsTotal.WithLabelValues(errorCode).Inc()

	if textfile := app.config.Metrics.TextfilePath; textfile != "" {
		if err := metrics.WriteTextfile(textfile); err != nil {
			if runErr != nil {
				runLogger.Warn().Err(err).Msg("failed to write metrics textfile")
				return runErr
			}
			return errInternalMetricsWriteFailed(err)
		}
		runLogger.Debug().Msgf("wrote metrics to %s", textfile)
	}

	return runErr
}

func (app *App) run(ctx context.Context, path string) error {
	logger := loggers.Ctx(ctx)

	rc, err := app.source.Open(ctx, path)
	if err != nil {
		svcErr := errSourceOpenFailed(path, err)
		logger.Debug().Str(loggers.FieldErrorCode, svcErr.Code).Err(err).Msg("failed to open source")
		return svcErr
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close source")
		}
	}()

	result, err := app.analysisService.Analyze(ctx, rc)
	if err != nil {
		return err
	}

	if err := app.renderer.Render(app.stdout, result); err != nil {
		return errInternalRenderFailed(err)
	}

	return nil
}
