package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "configs.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: debug
  format: json
parser:
  max_line_bytes: 4096
report:
  format: json
  show_performance: true
  top_user_agents: 10
metrics:
  textfile_path: /var/lib/node_exporter/log_analyzer.prom
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4096, cfg.Parser.MaxLineBytes)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.True(t, cfg.Report.ShowPerformance)
	assert.Equal(t, 10, cfg.Report.TopUserAgents)
	assert.Equal(t, "/var/lib/node_exporter/log_analyzer.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 64*1024, cfg.Parser.MaxLineBytes)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.False(t, cfg.Report.ShowPerformance)
	assert.Equal(t, 5, cfg.Report.TopUserAgents)
	assert.Empty(t, cfg.Metrics.TextfilePath)
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Report.Format)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `report:
  show_performance: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Report.ShowPerformance)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: loud
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "log.level (oneof=trace debug info warn error)")
}

func TestLoadConfig_InvalidReportFormat(t *testing.T) {
	path := writeTempConfig(t, `report:
  format: html
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.format")
}

func TestLoadConfig_MaxLineBytesTooSmall(t *testing.T) {
	path := writeTempConfig(t, `parser:
  max_line_bytes: 16
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parser.maxlinebytes (min=256)")
}

func TestLoadConfig_TopUserAgentsOutOfRange(t *testing.T) {
	path := writeTempConfig(t, `report:
  top_user_agents: 1000
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.topuseragents (max=100)")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "log: [unterminated\n")

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
