package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"cairocov.dev/pkg/cairocov/internal/adapter"
	m "cairocov.dev/pkg/cairocov/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cairo-coverage"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName        = "output-path"
	includeFlagName       = "include"
	projectPathFlagName   = "project-path"
	truncateFlagName      = "truncate"
	runParallelFlagName   = "parallel"
	rootDirFlagName       = "root-dir"
	filesToDeleteFlagName = "files-to-delete"
	verboseFlagName       = "verbose"
	logFlagName           = "log"

	outputConfigKey        = "output"
	includeConfigKey       = "include"
	projectPathConfigKey   = "project_path"
	truncateConfigKey      = "truncate"
	runParallelConfigKey   = "run.parallel"
	backendCommandKey      = "backend.command"
	backendArgsKey         = "backend.args"
	backendTimeoutKey      = "backend.timeout"
	cleanRootDirConfigKey  = "clean.root_dir"
	cleanFileNameConfigKey = "clean.file"

	defaultOutput         = "coverage.lcov"
	defaultTruncate       = false
	defaultRunParallel    = 0
	defaultBackendTimeout = 600
	defaultCleanRootDir   = "."

	envPrefix = "CAIRO_COVERAGE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".cairo-coverage.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultInclude = []string{string(m.IncludeMacros)}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputConfigKey, defaultOutput)
	viper.SetDefault(includeConfigKey, defaultInclude)
	viper.SetDefault(projectPathConfigKey, "")
	viper.SetDefault(truncateConfigKey, defaultTruncate)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(backendCommandKey, adapter.DefaultBackendCommand)
	viper.SetDefault(backendArgsKey, []string{})
	viper.SetDefault(backendTimeoutKey, defaultBackendTimeout)
	viper.SetDefault(cleanRootDirConfigKey, defaultCleanRootDir)
	viper.SetDefault(cleanFileNameConfigKey, defaultOutput)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := readConfigFile(viper.GetViper()); err != nil {
		slog.Warn("Ignoring configuration file", "error", err)
	}
}

// readConfigFile loads the configuration file. A missing file is not an error.
func readConfigFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", v.ConfigFileUsed(), err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
