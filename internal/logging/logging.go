// Package logging builds the zap loggers used by the visgraph command.
//
// Library packages never create loggers; they accept one through options and
// fall back to zap.NewNop().
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels counted from repeated -v flags.
const (
	VerbosityQuiet = 0 // warnings and errors
	VerbosityInfo  = 1 // -v: + progress
	VerbosityDebug = 2 // -vv: + build parameters and timing
)

// VerbosityToLevel maps a -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityQuiet:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New returns a logger writing to stderr. jsonOutput selects the production
// JSON encoder; otherwise a console encoder without timestamps is used.
func New(jsonOutput bool, verbosity int) *zap.Logger {
	return NewWithWriter(os.Stderr, jsonOutput, verbosity)
}

// NewWithWriter is New with an explicit sink.
func NewWithWriter(w io.Writer, jsonOutput bool, verbosity int) *zap.Logger {
	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), VerbosityToLevel(verbosity))

	return zap.New(core)
}
