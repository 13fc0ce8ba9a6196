package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger writes diagnostics to stderr so stdout only carries the dump.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// SetLevel parses and applies a level name such as "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// fields turns alternating key/value arguments into logrus fields.
func fields(args ...any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		if i+1 >= len(args) {
			f["!BADKEY"] = args[i]
			break
		}
		f[key] = args[i+1]
	}
	return f
}

func Info(msg string, args ...any) {
	Logger.WithFields(fields(args...)).Info(msg)
}

func Error(msg string, args ...any) {
	Logger.WithFields(fields(args...)).Error(msg)
}

func Debug(msg string, args ...any) {
	Logger.WithFields(fields(args...)).Debug(msg)
}

func Warn(msg string, args ...any) {
	Logger.WithFields(fields(args...)).Warn(msg)
}
