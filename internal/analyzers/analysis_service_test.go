package analyzers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"access-log-analyzer/internal/analyzers"
	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/parsers"
	parsermocks "access-log-analyzer/internal/parsers/mocks"
	"access-log-analyzer/internal/shared/loggers"
	"access-log-analyzer/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const endToEndLog = `10.0.0.1 - - [01/Jan/2025:00:00:01 +0000] "GET / HTTP/1.1" 200 123 "-" "UA" 0.001
10.0.0.1 - - [01/Jan/2025:00:00:02 +0000] "GET / HTTP/1.1" 404 123 "-" "UA" 0.001
10.0.0.1 - - [02/Jan/2025:00:00:01 +0000] "GET / HTTP/1.1" 500 123 "-" "UA" 0.001
`

// contextWithLogger returns a context carrying a JSON logger that writes into buf.
func contextWithLogger(t *testing.T, buf *bytes.Buffer) context.Context {
	t.Helper()

	logger, err := loggers.New("debug", loggers.FormatJSON, buf)
	require.NoError(t, err)
	return logger.WithContext(context.Background())
}

// warnings decodes the warn-level entries written to buf.
func warnings(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["level"] == "warn" {
			entries = append(entries, entry)
		}
	}
	return entries
}

func TestAnalyze_EndToEndExample(t *testing.T) {
	t.Parallel()

	service := analyzers.NewAnalysisService(parsers.NewAccessLogParser(), 65536, 5)

	result, err := service.Analyze(context.Background(), strings.NewReader(endToEndLog))
	require.NoError(t, err)
	require.NotNil(t, result)

	report := result.Report
	require.Len(t, report.Daily, 2)
	assert.Equal(t, models.DailyStats{
		Date: "01/Jan/2025", Requests: 2, Count2xx: 1, Count4xx: 1, ErrorRate: 0.5,
	}, report.Daily[0])
	assert.Equal(t, models.DailyStats{
		Date: "02/Jan/2025", Requests: 1, Count5xx: 1, ErrorRate: 1,
	}, report.Daily[1])
	assert.Equal(t, int64(3), report.TotalRequests)
	assert.InDelta(t, 2.0/3.0, report.TotalErrorRate, 1e-9)

	assert.Equal(t, int64(3), result.Pass.LinesRead)
	assert.Equal(t, int64(3), result.Pass.LinesParsed)
	assert.Equal(t, int64(0), result.Pass.LinesSkipped())
	require.Len(t, result.TopUserAgents, 1)
	assert.Equal(t, int64(3), result.TopUserAgents[0].Requests)
}

func TestAnalyze_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	input := "garbage\n" +
		strings.TrimSuffix(endToEndLog, "\n") + "\n" +
		"\n" +
		`10.0.0.1 - - [02/Jan/2025:00:00:01 +0000] "GET / HTTP/1.1" 200 123` + "\n"

	var logs bytes.Buffer
	ctx := contextWithLogger(t, &logs)
	service := analyzers.NewAnalysisService(parsers.NewAccessLogParser(), 65536, 5)

	result, err := service.Analyze(ctx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Report.TotalRequests, "malformed lines must not alter the counts")
	assert.InDelta(t, 2.0/3.0, result.Report.TotalErrorRate, 1e-9)
	assert.Equal(t, int64(6), result.Pass.LinesRead)
	assert.Equal(t, int64(3), result.Pass.LinesNoMatch)

	warns := warnings(t, &logs)
	require.Len(t, warns, 3)
	lineNumbers := []any{warns[0][loggers.FieldLineNumber], warns[1][loggers.FieldLineNumber], warns[2][loggers.FieldLineNumber]}
	assert.Equal(t, []any{float64(1), float64(5), float64(6)}, lineNumbers)
	for _, w := range warns {
		assert.Equal(t, "no_match", w[loggers.FieldReason])
		assert.Equal(t, "skipped line", w["message"])
	}
}

func TestAnalyze_BadEncodingAndTooLong(t *testing.T) {
	t.Parallel()

	lines := strings.Split(strings.TrimSuffix(endToEndLog, "\n"), "\n")
	input := lines[0] + "\n" +
		"\xff\xfe\n" +
		lines[1] + "\n" +
		`10.0.0.1 - - [01/Jan/2025:00:00:03 +0000] "GET /` + strings.Repeat("a", 1000) + ` HTTP/1.1" 200 1 "-" "UA" 0.1` + "\n" +
		lines[2] + "\n"

	var logs bytes.Buffer
	ctx := contextWithLogger(t, &logs)
	service := analyzers.NewAnalysisService(parsers.NewAccessLogParser(), 256, 5)

	result, err := service.Analyze(ctx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Report.TotalRequests)
	assert.Equal(t, int64(5), result.Pass.LinesRead)
	assert.Equal(t, int64(1), result.Pass.LinesBadEncoding)
	assert.Equal(t, int64(1), result.Pass.LinesTooLong)

	warns := warnings(t, &logs)
	require.Len(t, warns, 2)
	assert.Equal(t, "bad_encoding", warns[0][loggers.FieldReason])
	assert.Equal(t, float64(2), warns[0][loggers.FieldLineNumber])
	assert.Equal(t, "too_long", warns[1][loggers.FieldReason])
	assert.Equal(t, float64(4), warns[1][loggers.FieldLineNumber])
}

func TestAnalyze_CRLF(t *testing.T) {
	t.Parallel()

	service := analyzers.NewAnalysisService(parsers.NewAccessLogParser(), 65536, 5)
	input := strings.ReplaceAll(endToEndLog, "\n", "\r\n")

	result, err := service.Analyze(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Report.TotalRequests)
	assert.Equal(t, int64(0), result.Pass.LinesSkipped())
}

func TestAnalyze_EmptyInput(t *testing.T) {
	t.Parallel()

	service := analyzers.NewAnalysisService(parsers.NewAccessLogParser(), 65536, 5)

	result, err := service.Analyze(context.Background(), strings.NewReader(""))
	require.NoError(t, err)

	assert.Empty(t, result.Report.Daily)
	assert.Equal(t, 0.0, result.Report.TotalErrorRate)
	assert.Nil(t, result.TopUserAgents)
}

func TestAnalyze_ErrInputRequired(t *testing.T) {
	t.Parallel()

	service := analyzers.NewAnalysisService(parsers.NewAccessLogParser(), 65536, 5)

	result, err := service.Analyze(context.Background(), nil)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ANL_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
	assert.Nil(t, result, "expected nil result on error")
}

func TestAnalyze_ErrInternalReadFailed(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")
	r := io.MultiReader(strings.NewReader(endToEndLog), iotest.ErrReader(boom))
	service := analyzers.NewAnalysisService(parsers.NewAccessLogParser(), 65536, 5)

	result, err := service.Analyze(context.Background(), r)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ANL_9000", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result, "expected nil result on error")
}

func TestAnalyze_DelegatesToParser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parser := parsermocks.NewMockLineParser(ctrl)
	gomock.InOrder(
		parser.EXPECT().Parse("first").Return(models.LogRecord{Day: "d1", Status: "503", UserAgent: "bot"}, true),
		parser.EXPECT().Parse("second").Return(models.LogRecord{}, false),
		parser.EXPECT().Parse("third").Return(models.LogRecord{Day: "d1", Status: "200", UserAgent: "bot"}, true),
	)
	service := analyzers.NewAnalysisService(parser, 65536, 1)

	result, err := service.Analyze(context.Background(), strings.NewReader("first\r\nsecond\nthird"))
	require.NoError(t, err)

	require.Len(t, result.Report.Daily, 1)
	assert.Equal(t, int64(2), result.Report.Daily[0].Requests)
	assert.InDelta(t, 0.5, result.Report.TotalErrorRate, 1e-9)
	assert.Equal(t, int64(1), result.Pass.LinesNoMatch)
	require.Len(t, result.TopUserAgents, 1)
	assert.Equal(t, int64(2), result.TopUserAgents[0].Requests)
}
