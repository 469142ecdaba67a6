package log

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// unit tests helper to check log messages
type TestLogger struct {
	Logger   *DefaultLogger
	Messages map[string][]string
	Fields   map[string][]Fields
	Level    LogLevel

	mu sync.Mutex
}

func NewTestLogger() *TestLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &TestLogger{
		Logger:   NewLogrusLogger(l),
		Messages: make(map[string][]string),
		Fields:   make(map[string][]Fields),
		Level:    InfoLevel,
	}
}

func (m *TestLogger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = make(map[string][]string)
	m.Fields = make(map[string][]Fields)
}

func (m *TestLogger) record(level, msg string, fields Fields) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages[level] = append(m.Messages[level], msg)
	m.Fields[level] = append(m.Fields[level], fields)
}

func (m *TestLogger) Panic(msg string, fields Fields) {
	m.record("panic", msg, fields)
	m.Logger.Panic(msg, fields)
}

func (m *TestLogger) Fatal(msg string, fields Fields) {
	m.record("fatal", msg, fields)
	m.Logger.Fatal(msg, fields)
}

func (m *TestLogger) Error(msg string, fields Fields) {
	m.Logger.Error(msg, fields)
	m.record("error", msg, fields)
}

func (m *TestLogger) Warn(msg string, fields Fields) {
	m.Logger.Warn(msg, fields)
	m.record("warn", msg, fields)
}

func (m *TestLogger) Info(msg string, fields Fields) {
	m.Logger.Info(msg, fields)
	m.record("info", msg, fields)
}

func (m *TestLogger) Debug(msg string, fields Fields) {
	m.Logger.Debug(msg, fields)
	m.record("debug", msg, fields)
}

func (m *TestLogger) SetLevel(level LogLevel) {
	m.Logger.SetLevel(level)
	m.Level = level
}

func (m *TestLogger) GetLevel() LogLevel {
	return m.Level
}
