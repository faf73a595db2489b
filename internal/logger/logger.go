// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It discards everything until Initialize
	// or SetLogger is called, so library use stays silent.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger with one writing to stderr at
// level, either as JSON or as human-readable console lines.
func Initialize(jsonOutput bool, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}

	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	JSONOutput = jsonOutput
	Logger = zap.New(zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), lvl)).Sugar()
	return nil
}

// SetLogger installs l as the global logger.
func SetLogger(l *zap.Logger) {
	Logger = l.Sugar()
}

// Cleanup flushes any buffered log entries.
func Cleanup() {
	_ = Logger.Sync()
}
