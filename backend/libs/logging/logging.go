package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// NewLogger configures a zap logger from LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT env variables.
// defaultOutput is used when LOG_OUTPUT is empty ("stdout", "stderr" or a file path).
func NewLogger(defaultOutput string) (*zap.Logger, error) {
	output := strings.TrimSpace(os.Getenv("LOG_OUTPUT"))
	if output == "" {
		output = defaultOutput
	}
	if output == "" {
		output = "stdout"
	}

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(parseLevel(os.Getenv("LOG_LEVEL"))),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         parseFormat(os.Getenv("LOG_FORMAT")),
		EncoderConfig:    encoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build()
}

// New builds a logger writing to w. Used where the sink is not a path, e.g. tests.
func New(w io.Writer, level, format string) *zap.Logger {
	var encoder zapcore.Encoder
	if parseFormat(format) == FormatConsole {
		encoder = zapcore.NewConsoleEncoder(encoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(parseLevel(level)))
	return zap.New(core)
}

func parseLevel(raw string) zapcore.Level {
	var level zapcore.Level
	if err := level.Set(strings.ToLower(strings.TrimSpace(raw))); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func parseFormat(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), FormatConsole) {
		return FormatConsole
	}
	return FormatJSON
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     func(t time.Time, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString(t.UTC().Format(time.RFC3339Nano)) },
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
