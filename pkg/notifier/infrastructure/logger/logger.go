package logger

import (
	"io"
	"time"

	applogger "github.com/tss-calculator/go-lib/pkg/application/logger"

	"github.com/sirupsen/logrus"
)

// TextLogger writes info and debug entries to out, warnings and errors to errOut.
type TextLogger struct {
	loggerImpl
	impl *logrus.Logger
}

func NewTextLogger(out, errOut io.Writer) *TextLogger {
	impl := logrus.New()
	impl.SetOutput(io.Discard)
	impl.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})
	impl.AddHook(&writerHook{
		writer: out,
		levels: []logrus.Level{logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel},
	})
	impl.AddHook(&writerHook{
		writer: errOut,
		levels: []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel},
	})
	return &TextLogger{
		loggerImpl: loggerImpl{impl},
		impl:       impl,
	}
}

func (l *TextLogger) SetDebug(enabled bool) {
	if enabled {
		l.impl.SetLevel(logrus.DebugLevel)
		return
	}
	l.impl.SetLevel(logrus.InfoLevel)
}

func FromLogrus(impl logrus.FieldLogger) applogger.Logger {
	return &loggerImpl{impl}
}

type loggerImpl struct {
	logrus.FieldLogger
}

func (l *loggerImpl) WithField(key string, value interface{}) applogger.Logger {
	return &loggerImpl{l.FieldLogger.WithField(key, value)}
}

func (l *loggerImpl) WithFields(fields applogger.Fields) applogger.Logger {
	return &loggerImpl{l.FieldLogger.WithFields(logrus.Fields(fields))}
}

func (l *loggerImpl) Error(err error, args ...interface{}) {
	l.FieldLogger.WithError(err).Error(args...)
}

func (l *loggerImpl) Warning(err error, args ...interface{}) {
	l.FieldLogger.WithError(err).Warn(args...)
}

type writerHook struct {
	writer io.Writer
	levels []logrus.Level
}

func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	_, err = hook.writer.Write([]byte(line))
	return err
}

func (hook *writerHook) Levels() []logrus.Level {
	return hook.levels
}
