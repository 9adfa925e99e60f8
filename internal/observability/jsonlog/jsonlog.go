// Package jsonlog emits one JSON object per log line: ts, level, msg plus
// free-form fields.
package jsonlog

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

type Logger struct {
	base   *log.Logger
	fields map[string]any
}

func New(w io.Writer) *Logger {
	return &Logger{base: log.New(w, "", 0)} // no prefix; we emit JSON ourselves
}

// With returns a logger that attaches fields to every line it emits.
func (l *Logger) With(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{base: l.base, fields: merged}
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.emit("INFO", msg, fields)
}

func (l *Logger) Error(msg string, fields map[string]any) {
	l.emit("ERROR", msg, fields)
}

// Fatal logs and exits; reserved for startup failures.
func (l *Logger) Fatal(msg string, fields map[string]any) {
	l.emit("FATAL", msg, fields)
	os.Exit(1)
}

func (l *Logger) emit(level, msg string, fields map[string]any) {
	m := make(map[string]any, 3+len(l.fields)+len(fields))
	m["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg
	for k, v := range l.fields {
		m[k] = v
	}
	for k, v := range fields {
		m[k] = v
	}
	b, _ := json.Marshal(m)
	l.base.Print(string(b))
}
