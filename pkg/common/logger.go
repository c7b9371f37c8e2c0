package common

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Log(message string)
}

type fileLogger struct {
	mutex  sync.Mutex
	path   string
	opened bool
	logger *logrus.Logger
}

// NewFileLogger logs to the file specified by `path`. If the file is unavailable, writes to the console.
func NewFileLogger(path string) Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return &fileLogger{
		path:   path,
		logger: logger,
	}
}

func (f *fileLogger) Log(message string) {
	f.mutex.Lock()
	f.openFileIfNeeded()
	f.mutex.Unlock()
	f.logger.Info(message)
}

func (f *fileLogger) openFileIfNeeded() {
	if f.opened {
		return
	}
	f.opened = true
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f.logger.SetOutput(os.Stderr)
		f.logger.Warnf("%s. Logging switched to console.", err)
		return
	}
	f.logger.SetOutput(file)
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger adapts an existing logrus entry (usually one with a "component" field) to Logger.
func NewLogrusLogger(entry *logrus.Entry) Logger {
	return &logrusLogger{
		entry: entry,
	}
}

func (l *logrusLogger) Log(message string) {
	l.entry.Info(message)
}
