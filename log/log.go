// Package log supplies leveled logging for index components.
// Applications can plug in their own Logger, else a default logger
// writing to os.Stdout at "info" level is used.
package log

import "io"
import "os"
import "fmt"
import "sync"
import "time"
import "strings"

import "github.com/bnclabs/llrbmap/lib"

// Logger interface for logging, applications can supply a logger object
// implementing this interface to integrate index logs with application
// logs.
type Logger interface {
	SetLogLevel(string)
	Fatalf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Verbosef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Tracef(format string, v ...interface{})
	Printlf(loglevel LogLevel, format string, v ...interface{})
}

// LogLevel defines log level.
type LogLevel int

const (
	logLevelIgnore LogLevel = iota + 1
	logLevelFatal
	logLevelError
	logLevelWarn
	logLevelInfo
	logLevelVerbose
	logLevelDebug
	logLevelTrace
)

var levelnames = map[LogLevel][2]string{
	logLevelIgnore:  {"ignore", "Ignor"},
	logLevelFatal:   {"fatal", "Fatal"},
	logLevelError:   {"error", "Error"},
	logLevelWarn:    {"warn", "Warng"},
	logLevelInfo:    {"info", "Infom"},
	logLevelVerbose: {"verbose", "Verbs"},
	logLevelDebug:   {"debug", "Debug"},
	logLevelTrace:   {"trace", "Trace"},
}

// Timeformat for log lines emitted by the default logger.
const Timeformat = "2006-01-02T15:04:05.999Z-07:00"

var log Logger
var logfd *os.File

func init() {
	SetLogger(nil, Defaultsettings())
}

// Defaultsettings for the default logger.
//
// "log.level" (string, default: "info")
//		One of ignore, fatal, error, warn, info, verbose, debug, trace.
//
// "log.file" (string, default: "")
//		Append log lines to file, created if missing. Empty string
//		means os.Stdout.
func Defaultsettings() lib.Settings {
	return lib.Settings{"log.level": "info", "log.file": ""}
}

// SetLogger to integrate index logging with application logging. If
// logger is nil, a default logger is created from setts, missing
// parameters fall back to Defaultsettings().
func SetLogger(logger Logger, setts lib.Settings) Logger {
	if logger != nil {
		closelogfile(nil)
		log = logger
		return log
	}

	setts = Defaultsettings().Mixin(setts)
	level := string2logLevel(setts.String("log.level"))
	output := io.Writer(os.Stdout)
	var fd *os.File
	if logfile := setts.String("log.file"); logfile != "" {
		var err error
		flags := os.O_WRONLY | os.O_APPEND | os.O_CREATE
		fd, err = os.OpenFile(logfile, flags, 0660)
		if err != nil {
			panic(fmt.Errorf("SetLogger(): %v", err))
		}
		output = fd
	}
	closelogfile(fd)
	log = &defaultLogger{level: level, output: output}
	return log
}

// close the file backing the current default logger, if any, and
// remember fd as the new one.
func closelogfile(fd *os.File) {
	if logfd != nil {
		logfd.Close()
	}
	logfd = fd
}

// defaultLogger is used when application did not supply a Logger{}.
type defaultLogger struct {
	mu     sync.Mutex
	level  LogLevel
	output io.Writer
}

func (l *defaultLogger) SetLogLevel(level string) {
	l.mu.Lock()
	l.level = string2logLevel(level)
	l.mu.Unlock()
}

func (l *defaultLogger) Fatalf(format string, v ...interface{}) {
	l.Printlf(logLevelFatal, format, v...)
}

func (l *defaultLogger) Errorf(format string, v ...interface{}) {
	l.Printlf(logLevelError, format, v...)
}

func (l *defaultLogger) Warnf(format string, v ...interface{}) {
	l.Printlf(logLevelWarn, format, v...)
}

func (l *defaultLogger) Infof(format string, v ...interface{}) {
	l.Printlf(logLevelInfo, format, v...)
}

func (l *defaultLogger) Verbosef(format string, v ...interface{}) {
	l.Printlf(logLevelVerbose, format, v...)
}

func (l *defaultLogger) Debugf(format string, v ...interface{}) {
	l.Printlf(logLevelDebug, format, v...)
}

func (l *defaultLogger) Tracef(format string, v ...interface{}) {
	l.Printlf(logLevelTrace, format, v...)
}

// Printlf emit a line as "<timestamp> [<level>] <message>", a newline
// is appended if format does not end with one.
func (l *defaultLogger) Printlf(level LogLevel, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level == logLevelIgnore || level > l.level {
		return
	}
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	ts := time.Now().Format(Timeformat)
	fmt.Fprintf(l.output, ts+" ["+level.String()+"] "+format, v...)
}

func (l LogLevel) String() string {
	if names, ok := levelnames[l]; ok {
		return names[1]
	}
	panic(fmt.Errorf("unexpected log level %d", int(l)))
}

func string2logLevel(s string) LogLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	for level, names := range levelnames {
		if names[0] == s {
			return level
		}
	}
	panic(fmt.Errorf("unexpected log level %q", s))
}

// Fatalf log at fatal level using the current logger.
func Fatalf(format string, v ...interface{}) {
	log.Printlf(logLevelFatal, format, v...)
}

// Errorf log at error level using the current logger.
func Errorf(format string, v ...interface{}) {
	log.Printlf(logLevelError, format, v...)
}

// Warnf log at warn level using the current logger.
func Warnf(format string, v ...interface{}) {
	log.Printlf(logLevelWarn, format, v...)
}

// Infof log at info level using the current logger.
func Infof(format string, v ...interface{}) {
	log.Printlf(logLevelInfo, format, v...)
}

// Verbosef log at verbose level using the current logger.
func Verbosef(format string, v ...interface{}) {
	log.Printlf(logLevelVerbose, format, v...)
}

// Debugf log at debug level using the current logger.
func Debugf(format string, v ...interface{}) {
	log.Printlf(logLevelDebug, format, v...)
}

// Tracef log at trace level using the current logger.
func Tracef(format string, v ...interface{}) {
	log.Printlf(logLevelTrace, format, v...)
}
