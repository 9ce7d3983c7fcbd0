// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the structured logger: level filtering, context
//              fields and request IDs carried by immutable clones, and
//              severity-aware logging of coded errors.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation

package log

import (
	"io"
	"os"
	"sync"

	"github.com/google/uuid"

	perror "github.com/plinth-go/plinth/core/error"
)

// Logger is a structured logger. The With* methods return clones, so a
// configured Logger is safe to share across goroutines.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	requestID     string

	mutex sync.Mutex // serializes writes to output
}

// Config collects the logger options
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New returns a logger writing JSON to stdout at the default level
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewFormatter(FormatJSON),
		output:        os.Stdout,
		contextFields: make(Fields),
	}
}

// NewWithConfig returns a logger with the given configuration
func NewWithConfig(config Config) *Logger {
	l := &Logger{
		level:         config.Level,
		formatter:     NewFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}
	if l.output == nil {
		l.output = os.Stdout
	}
	return l
}

// clone copies the logger for the immutable With* operations
func (l *Logger) clone() *Logger {
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: l.contextFields.Clone(),
		requestID:     l.requestID,
	}
}

// WithLevel returns a clone with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithName returns a clone with the given logger name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithOutput returns a clone writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	return c
}

// WithField returns a clone carrying an additional persistent field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	if c.contextFields == nil {
		c.contextFields = make(Fields)
	}
	c.contextFields[key] = value
	return c
}

// WithRequestID returns a clone stamped with the given request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	c := l.clone()
	c.requestID = requestID
	return c
}

// WithNewRequestID returns a clone stamped with a freshly generated
// request ID.
func (l *Logger) WithNewRequestID() *Logger {
	return l.WithRequestID(uuid.NewString())
}

// Level returns the minimum level
func (l *Logger) Level() Level {
	return l.level
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs at error level with the error attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// Fatal logs at fatal level and exits
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// LogError logs a coded error at the level implied by its severity,
// with its code and operation attached as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var coded *perror.Error
	if e, ok := err.(*perror.Error); ok {
		coded = e
	}
	if coded == nil {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     string(coded.Code()),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		fields["error_operation"] = op
	}

	level := LevelError
	switch coded.Severity() {
	case perror.SeverityLow:
		level = LevelInfo
	case perror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, fields)
}

// log assembles and emits one entry
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.Enabled(l.level) {
		return
	}

	entry := newEntry(level, message)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Error = err
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	formatted, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output.Write(formatted)
}
