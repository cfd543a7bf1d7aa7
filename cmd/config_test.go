package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "cairo-coverage", configBaseName)
	assert.Equal(t, "cairo-coverage.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output-path", outputFlagName)
	assert.Equal(t, "include", includeFlagName)
	assert.Equal(t, "project-path", projectPathFlagName)
	assert.Equal(t, "truncate", truncateFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "root-dir", rootDirFlagName)
	assert.Equal(t, "files-to-delete", filesToDeleteFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "coverage.lcov", defaultOutput)
	assert.Equal(t, []string{"macros"}, defaultInclude)
	assert.Equal(t, false, defaultTruncate)
	assert.Equal(t, "CAIRO_COVERAGE", envPrefix)
	assert.Equal(t, ".cairo-coverage.log", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestReadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr bool
		want    string
	}{
		{name: "missing file"},
		{name: "valid file", content: ptr("output: custom.lcov\n"), want: "custom.lcov"},
		{name: "malformed file", content: ptr("output: [unclosed\n"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			v := viper.New()
			v.SetConfigFile(path)

			err := readConfigFile(v)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), path)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, v.GetString(outputConfigKey))
		})
	}
}

func ptr(s string) *string {
	return &s
}
