package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/kr/pretty"
	log "github.com/sirupsen/logrus"
)

// environment variable selecting the console log level
const LogLevelEnvVar = "TEXTPARSERS_LOGLEVEL"

func Initialize() {

	switch logLevel := os.Getenv(LogLevelEnvVar); logLevel {
	case "debug":
		SetConsoleLogger(log.DebugLevel)
	case "trace":
		SetConsoleLogger(log.TraceLevel)
	case "info":
		SetConsoleLogger(log.InfoLevel)
	default:
		SetConsoleLogger(log.ErrorLevel)
	}
}

// Parses a level name such as "debug" or "warn"
// and applies it to the console logger.
func SetLevelByName(name string) error {

	var (
		err   error
		level log.Level
	)

	if level, err = log.ParseLevel(name); err != nil {
		return err
	}
	SetConsoleLogger(level)
	return nil
}

func SetConsoleLogger(level log.Level) {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(level)
}

// SetOutput redirects log output, i.e. to a command's error stream.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// IsTraceEnabled allows callers to skip building
// expensive trace arguments such as descriptions.
func IsTraceEnabled() bool {
	return log.IsLevelEnabled(log.TraceLevel)
}

func TraceMessage(format string, v ...interface{}) {
	logAt(log.TraceLevel, format, v)
}

func DebugMessage(format string, v ...interface{}) {
	logAt(log.DebugLevel, format, v)
}

func InfoMessage(format string, v ...interface{}) {
	logAt(log.InfoLevel, format, v)
}

func WarnMessage(format string, v ...interface{}) {
	logAt(log.WarnLevel, format, v)
}

func ErrorMessage(format string, v ...interface{}) {
	logAt(log.ErrorLevel, format, v)
}

func logAt(level log.Level, format string, v []interface{}) {
	if log.IsLevelEnabled(level) {
		logMultiLine(level, fmt.Sprintf(format, preFormatArgs(v)...))
	}
}

// preFormatArgs pretty prints composite values. Types, errors and
// values with a String() method keep their own text.
func preFormatArgs(v []interface{}) []interface{} {

	vv := make([]interface{}, 0, len(v))
	for _, o := range v {
		switch o.(type) {
		case reflect.Type, error, fmt.Stringer:
			vv = append(vv, o)
			continue
		}

		switch reflect.ValueOf(o).Kind() {
		case reflect.Struct, reflect.Interface, reflect.Pointer,
			reflect.Slice, reflect.Array, reflect.Map:
			vv = append(vv, pretty.Formatter(o))
		default:
			vv = append(vv, o)
		}
	}
	return vv
}

func logMultiLine(level log.Level, message string) {

	entry := log.WithTime(time.Now())
	s := bufio.NewScanner(strings.NewReader(message))
	for s.Scan() {
		entry.Log(level, s.Text())
	}
}
