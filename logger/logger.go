package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

// logFile is the -log-file handle opened by InitializeLogger, if any.
var logFile *os.File

func init() {
	Log = zap.NewNop()
}

// InitializeLogger builds Log at the given level. Human readable logs go to
// console (stderr unless overridden), so stdout stays reserved for the
// conversion status lines. If logFile is non-empty, JSON parsable logs are
// also appended to it.
func InitializeLogger(inputLogLevel, logFileName string) error {
	return initializeLogger(inputLogLevel, logFileName, os.Stderr)
}

func initializeLogger(inputLogLevel, logFileName string, console io.Writer) error {
	// create zapper encoding config object
	config := zap.NewProductionEncoderConfig()
	// set logging timestamp format
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	// create and set the log level from the user input
	zapLogLevel := new(zapcore.Level)
	err := zapLogLevel.Set(inputLogLevel)
	if err != nil {
		return err
	}
	logLevel := zap.NewAtomicLevelAt(*zapLogLevel)
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(console), logLevel),
	}
	Close()
	if logFileName != "" {
		f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logFile = f
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(config), zapcore.AddSync(f), logLevel))
	}
	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return nil
}

// Close flushes Log and closes the log file, if one was opened. Call it once
// logging is done; InitializeLogger also calls it before opening a new file.
func Close() error {
	if logFile == nil {
		return nil
	}
	Log.Sync()
	err := logFile.Close()
	logFile = nil
	return err
}
