package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetOutput(os.Stdout)
	return l
}

// InitLogger sets the level and adds a JSON log file under dir.
// An empty dir logs to stdout only.
func InitLogger(level, dir string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	file := &dailyFile{dir: dir, now: time.Now}
	if err := file.rotate(time.Now()); err != nil {
		return err
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}

// dailyFile appends to the LogFileName file for the current day and
// switches files when the date changes.
type dailyFile struct {
	mu   sync.Mutex
	dir  string
	now  func() time.Time
	day  string
	file *os.File
}

func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if now := d.now(); now.Format("2006-01-02") != d.day {
		if err := d.rotate(now); err != nil {
			return 0, err
		}
	}
	return d.file.Write(p)
}

func (d *dailyFile) rotate(now time.Time) error {
	file, err := os.OpenFile(
		filepath.Join(d.dir, LogFileName(now)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}
	if d.file != nil {
		d.file.Close()
	}
	d.file = file
	d.day = now.Format("2006-01-02")
	return nil
}

// LogFileName is the log file InitLogger writes to on the given day
func LogFileName(day time.Time) string {
	return fmt.Sprintf("app-%s.log", day.Format("2006-01-02"))
}

// Logger exposes the underlying logger for structured fields
func Logger() *logrus.Logger {
	return logger
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

// LogRequest logs HTTP request details
func LogRequest(method, path, requestID string, status int, duration time.Duration) {
	logger.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     status,
		"latency":    duration.String(),
		"request_id": requestID,
	}).Info("request")
}

// LogErrorWithStack logs an error with stack trace
func LogErrorWithStack(err error, stack []byte) {
	logger.WithField("stack", string(stack)).Errorf("panic: %v", err)
}
