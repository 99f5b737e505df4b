package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Logger define a interface para logging estruturado.
// Controladores, sessão e cliente HTTP dependem apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// LogEntry define a estrutura de um log para garantir o formato JSON.
type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
	"fatal": 4,
}

// SimpleLogger escreve uma linha JSON por entrada.
type SimpleLogger struct {
	logLevel int
	out      *log.Logger
}

// NewLogger cria um Logger que escreve em stderr.
// O stdout fica reservado para a saída dos comandos da CLI.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter cria um Logger que escreve no writer informado (usado em testes).
func NewLoggerWithWriter(level string, w io.Writer) Logger {
	current, ok := levels[strings.ToLower(level)]
	if !ok {
		current = levels["info"]
	}
	return &SimpleLogger{logLevel: current, out: log.New(w, "", 0)}
}

// NewNopLogger descarta tudo.
func NewNopLogger() Logger {
	return NewLoggerWithWriter("fatal", io.Discard)
}

func (l *SimpleLogger) logf(level, msg string, fields map[string]interface{}, err error) {
	if levels[strings.ToLower(level)] < l.logLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   msg,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	jsonBytes, _ := json.Marshal(entry)
	l.out.Println(string(jsonBytes))

	if level == "FATAL" {
		os.Exit(1)
	}
}

func (l *SimpleLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf("DEBUG", msg, fields, nil)
}

func (l *SimpleLogger) Info(msg string, fields map[string]interface{}) {
	l.logf("INFO", msg, fields, nil)
}

func (l *SimpleLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf("WARN", msg, fields, nil)
}

func (l *SimpleLogger) Error(msg string, err error) {
	l.logf("ERROR", msg, nil, err)
}

func (l *SimpleLogger) Fatal(msg string, err error) {
	l.logf("FATAL", msg, nil, err)
}
