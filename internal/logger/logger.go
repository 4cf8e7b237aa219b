// Package logger wraps log/slog with optional file output, size and date based
// rotation, and retention of old log files. Log file names are date templates
// ("[validator-]YYYYMMDD[.log]") rendered with the dateutil formatter.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jdlien/validator/internal/constants"
	"github.com/jdlien/validator/internal/dateutil"
	"github.com/jdlien/validator/internal/errorutil"
)

// Config represents logging configuration
type Config struct {
	Enabled         bool   `toml:"enabled" json:"enabled" yaml:"enabled"`
	Directory       string `toml:"directory" json:"directory" yaml:"directory"`
	FilenamePattern string `toml:"filename_pattern" json:"filename_pattern" yaml:"filename_pattern"`
	Level           string `toml:"level" json:"level" yaml:"level"`
	MaxFiles        int    `toml:"max_files" json:"max_files" yaml:"max_files"`
	MaxSizeMB       int    `toml:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`
	ConsoleOutput   bool   `toml:"console_output" json:"console_output" yaml:"console_output"`
}

// Logger is a slog.Logger whose handler writes through the Logger itself, so
// every record is checked for rotation before it reaches the file
type Logger struct {
	*slog.Logger
	config   Config
	console  io.Writer
	file     *os.File
	fileName string
	fileSize int64
	now      func() time.Time
	mu       sync.Mutex
}

// NewLogger creates a logger writing to stderr and, when enabled, a log file
func NewLogger(config Config) (*Logger, error) {
	return newLogger(config, os.Stderr, time.Now)
}

func newLogger(config Config, console io.Writer, now func() time.Time) (*Logger, error) {
	l := &Logger{config: config, now: now}

	// Console is the fallback when nothing else is configured
	if config.ConsoleOutput || !config.Enabled {
		l.console = console
	}

	if config.Enabled {
		if err := ValidateFilenamePattern(config.FilenamePattern); err != nil {
			return nil, fmt.Errorf("invalid log filename pattern: %w", err)
		}
		if err := errorutil.ValidateDirectory(expandLogDirectory(config.Directory), "create log directory", true); err != nil {
			return nil, err
		}
		if err := l.openLogFile(); err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
	}

	l.Logger = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{
		Level:       parseLogLevel(config.Level),
		ReplaceAttr: replaceAttr,
	}))

	l.Debug("Logger initialized",
		slog.String("log_file", l.fileName),
		slog.String("level", config.Level),
		slog.Bool("console", l.console != nil))

	return l, nil
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		return slog.String(slog.TimeKey, a.Value.Time().Format("2006-01-02T15:04:05.000-07:00"))
	case slog.SourceKey:
		if source, ok := a.Value.Any().(*slog.Source); ok {
			return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(source.File), source.Line))
		}
	}
	return a
}

// openLogFile opens the file for the current date in append mode
func (l *Logger) openLogFile() error {
	filePath := filepath.Join(expandLogDirectory(l.config.Directory), l.currentFilename())

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	l.file = file
	l.fileName = filePath
	l.fileSize = info.Size()
	return nil
}

func (l *Logger) currentFilename() string {
	return generateLogFilename(l.config.FilenamePattern, l.now())
}

// generateLogFilename renders pattern for t
func generateLogFilename(pattern string, t time.Time) string {
	if pattern == "" {
		pattern = constants.DefaultLogFilenamePattern
	}
	return dateutil.FormatDateTime(t, pattern)
}

// filenameGlob matches every file pattern can produce, including size
// rotation backups. Rendered digits become wildcards.
func filenameGlob(pattern string) string {
	sample := generateLogFilename(pattern, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))

	var b strings.Builder
	inDigits := false
	for _, r := range sample {
		isDigit := r >= '0' && r <= '9'
		if isDigit && !inDigits {
			b.WriteByte('*')
		} else if !isDigit {
			b.WriteRune(r)
		}
		inDigits = isDigit
	}
	b.WriteByte('*')
	return b.String()
}

// expandLogDirectory resolves "~/" and falls back to ./logs
func expandLogDirectory(dir string) string {
	if dir == "" {
		return "logs"
	}
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dir[2:])
		}
	}
	return dir
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// checkRotation rotates when the file reached MaxSizeMB or the rendered name
// changed. The caller holds l.mu.
func (l *Logger) checkRotation() error {
	if l.file == nil {
		return nil
	}

	maxSize := int64(l.config.MaxSizeMB) * 1024 * 1024
	if maxSize > 0 && l.fileSize >= maxSize {
		return l.rotate(true)
	}
	if filepath.Base(l.fileName) != l.currentFilename() {
		return l.rotate(false)
	}
	return nil
}

// rotate closes the current file and opens the current one. A file that hit
// the size limit is first renamed to the next free ".N" backup.
func (l *Logger) rotate(full bool) error {
	l.file.Close()
	l.file = nil

	var renameErr error
	if full {
		renameErr = os.Rename(l.fileName, nextBackupName(l.fileName))
	}
	if err := l.openLogFile(); err != nil {
		return err
	}

	if l.config.MaxFiles > 0 {
		l.cleanOldFiles()
	}
	return renameErr
}

func nextBackupName(name string) string {
	for i := 1; ; i++ {
		candidate := name + "." + strconv.Itoa(i)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// cleanOldFiles keeps the MaxFiles most recently modified log files
func (l *Logger) cleanOldFiles() {
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(l.fileName), filenameGlob(l.config.FilenamePattern)))
	if err != nil {
		return
	}

	type fileInfo struct {
		path    string
		modTime time.Time
	}

	files := make([]fileInfo, 0, len(matches))
	for _, match := range matches {
		if match == l.fileName {
			continue
		}
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		files = append(files, fileInfo{path: match, modTime: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	// The open file counts toward MaxFiles
	for i := l.config.MaxFiles - 1; i < len(files); i++ {
		os.Remove(files[i].path)
	}
}

// Write implements io.Writer with a rotation check before each write
func (l *Logger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkRotation(); err != nil {
		fmt.Fprintf(os.Stderr, "Log rotation error: %v\n", err)
	}

	if l.console != nil {
		n, err = l.console.Write(p)
	}
	if l.file != nil {
		n, err = l.file.Write(p)
		l.fileSize += int64(n)
	}
	return n, err
}

// FileName is the path of the open log file, or "" when file logging is off
func (l *Logger) FileName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileName
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// LogExecutionSummary records the outcome of a batch command
func (l *Logger) LogExecutionSummary(startTime time.Time, configFile, command string, results []string, exitCode int) {
	l.Info("=== EXECUTION SUMMARY ===")
	l.Info("Execution details",
		slog.Time("start_time", startTime),
		slog.String("config_file", configFile),
		slog.String("command", command),
		slog.Duration("total_duration", time.Since(startTime)),
		slog.Int("exit_code", exitCode))

	for _, result := range results {
		l.Info(result)
	}
}
