// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/x509-path-validator/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and changing the destination.
//
// The path validator, the CLI and the [MCP] server all log through this
// interface, so callers can switch between human-readable lines and
// structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// entry is one structured log line.
type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// JSONLogger implements Logger with one JSON object per line.
// It is silent unless enabled, which keeps library callers and the [MCP]
// stdio transport free of unexpected output.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewJSONLogger creates a new structured logger.
// Set silent=false and provide a writer to enable output to a file or stderr.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Discard returns a logger that drops every message.
func Discard() *JSONLogger { return NewJSONLogger(nil, true) }

// Printf formats and logs a structured message.
// Output is suppressed if silent mode is enabled.
func (m *JSONLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}
	m.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message.
// Output is suppressed if silent mode is enabled.
func (m *JSONLogger) Println(v ...any) {
	if m.silent {
		return
	}
	m.write(fmt.Sprint(v...))
}

func (m *JSONLogger) write(msg string) {
	data, err := json.Marshal(entry{Level: "info", Message: msg})
	if err != nil {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()
	buf.Write(data)
	buf.WriteByte('\n')

	m.mu.Lock()
	defer m.mu.Unlock()
	// A failing log sink must not affect the caller.
	_, _ = buf.WriteTo(m.writer)
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *JSONLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
