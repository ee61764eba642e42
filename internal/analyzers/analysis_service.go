package analyzers

import (
	"context"
	"errors"
	"io"
	"time"

	"access-log-analyzer/internal/aggregators"
	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/parsers"
	"access-log-analyzer/internal/shared/loggers"
)

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze consumes r in a single pass and returns the sealed report.
	// Lines that cannot be parsed are skipped and logged; only a read failure
	// of r itself aborts the pass.
	Analyze(ctx context.Context, r io.Reader) (*models.AnalysisResult, error)
}

type analysisService struct {
	parser        parsers.LineParser
	maxLineBytes  int
	topUserAgents int
}

func NewAnalysisService(parser parsers.LineParser, maxLineBytes, topUserAgents int) AnalysisService {
	return &analysisService{
		parser:        parser,
		maxLineBytes:  maxLineBytes,
		topUserAgents: topUserAgents,
	}
}

func (s *analysisService) Analyze(ctx context.Context, r io.Reader) (*models.AnalysisResult, error) {
	if r == nil {
		return nil, errInputRequired()
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started analysis pass with max line bytes: %d", s.maxLineBytes)

	start := time.Now()
	reader := newLineReader(r, s.maxLineBytes)
	aggregator := aggregators.NewReportAggregator()
	tally := aggregators.NewUserAgentTally()
	pass := models.PassStats{}

	for {
		line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var lineErr *LineError
			if !errors.As(err, &lineErr) {
				return nil, errInternalReadFailed(reader.LineNumber(), err)
			}
			pass.LinesRead++
			s.skip(logger, &pass, lineErr)
			continue
		}
		pass.LinesRead++

		record, ok := s.parser.Parse(line)
		if !ok {
			s.skip(logger, &pass, &LineError{Line: reader.LineNumber(), Reason: ReasonNoMatch})
			continue
		}

		if err := aggregator.Record(record.Day, record.Status); err != nil {
			return nil, err
		}
		tally.Add(record.UserAgent)
		pass.LinesParsed++
		metricLinesTotal.WithLabelValues(resultParsed).Inc()
	}

	report, err := aggregator.Seal()
	if err != nil {
		return nil, err
	}
	pass.Elapsed = time.Since(start)

	logger.Info().
		Int64("lines_read", pass.LinesRead).
		Int64("lines_skipped", pass.LinesSkipped()).
		Int("days", len(report.Daily)).
		Dur(loggers.FieldDuration, pass.Elapsed).
		Msg("finished analysis pass")

	return &models.AnalysisResult{
		Report:        report,
		TopUserAgents: tally.Top(s.topUserAgents),
		Pass:          pass,
	}, nil
}

func (s *analysisService) skip(logger *loggers.Logger, pass *models.PassStats, lineErr *LineError) {
	switch lineErr.Reason {
	case ReasonNoMatch:
		pass.LinesNoMatch++
	case ReasonBadEncoding:
		pass.LinesBadEncoding++
	case ReasonTooLong:
		pass.LinesTooLong++
	}
	metricLinesTotal.WithLabelValues(string(lineErr.Reason)).Inc()

	logger.Warn().
		Int64(loggers.FieldLineNumber, lineErr.Line).
		Str(loggers.FieldReason, string(lineErr.Reason)).
		Msg("skipped line")
}
