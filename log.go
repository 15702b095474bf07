package touchrect

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is the package logger. Nil until first use or SetLogger.
var logger *zap.Logger

// logLevel gates the default console logger. Scene debug mode lowers it to
// debug.
var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Logger returns the package logger. By default it writes console-encoded
// entries to stderr at info level, or debug level in Scene debug mode.
func Logger() *zap.Logger {
	if logger == nil {
		logger = newConsoleLogger()
	}
	return logger
}

// SetLogger replaces the package logger. A nil l silences logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func newConsoleLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), logLevel)
	return zap.New(core).Named("touchrect")
}

// NewFileLogger returns a logger writing JSON entries to a size-rotated file
// at path. maxSizeMB <= 0 uses lumberjack's default of 100 MB.
func NewFileLogger(path string, maxSizeMB int) *zap.Logger {
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), w, zapcore.DebugLevel)
	return zap.New(core).Named("touchrect")
}
