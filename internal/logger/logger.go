package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"eslap-workspace/internal/config"
)

var (
	defaultLogger *Logger
)

// Logger holds one writer per level; levels below the configured one discard.
type Logger struct {
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// GetLogLevelFromString converts a configured level name, defaulting to WARN.
func GetLogLevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return WARN
	}
}

/**
 * Initialize the logging system
 * @param {*config.LogConfig} cfg - Level and output path ("console" or a file)
 * @param {bool} isServerMode - In server mode file output is also copied to stdout
 */
func InitLogger(cfg *config.LogConfig, isServerMode bool) {
	var output io.Writer
	if cfg.Path == "console" || cfg.Path == "" {
		output = os.Stderr
	} else {
		output = setupLogFileOutput(cfg.Path)
		if isServerMode {
			output = io.MultiWriter(os.Stdout, output)
		}
	}
	SetOutput(output, GetLogLevelFromString(cfg.Level))
}

// SetOutput installs a logger writing every enabled level to output.
func SetOutput(output io.Writer, logLevel LogLevel) {
	flags := log.LstdFlags | log.Lshortfile

	defaultLogger = &Logger{
		debugLogger: log.New(io.Discard, "DEBUG: ", flags),
		infoLogger:  log.New(io.Discard, "INFO: ", flags),
		warnLogger:  log.New(io.Discard, "WARN: ", flags),
		errorLogger: log.New(io.Discard, "ERROR: ", flags),
	}

	if logLevel <= DEBUG {
		defaultLogger.debugLogger.SetOutput(output)
	}
	if logLevel <= INFO {
		defaultLogger.infoLogger.SetOutput(output)
	}
	if logLevel <= WARN {
		defaultLogger.warnLogger.SetOutput(output)
	}
	if logLevel <= ERROR {
		defaultLogger.errorLogger.SetOutput(output)
	}
}

func setupLogFileOutput(logPath string) io.Writer {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		return os.Stderr
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return os.Stderr
	}
	return file
}

// calldepth skips emit and the level function so Lshortfile reports their caller.
const calldepth = 3

func emit(pick func(*Logger) *log.Logger, msg string) {
	if defaultLogger != nil {
		pick(defaultLogger).Output(calldepth, msg)
	}
}

func debugOf(l *Logger) *log.Logger { return l.debugLogger }
func infoOf(l *Logger) *log.Logger  { return l.infoLogger }
func warnOf(l *Logger) *log.Logger  { return l.warnLogger }
func errorOf(l *Logger) *log.Logger { return l.errorLogger }

func Debug(v ...interface{})                 { emit(debugOf, fmt.Sprintln(v...)) }
func Debugf(format string, v ...interface{}) { emit(debugOf, fmt.Sprintf(format, v...)) }
func Info(v ...interface{})                  { emit(infoOf, fmt.Sprintln(v...)) }
func Infof(format string, v ...interface{})  { emit(infoOf, fmt.Sprintf(format, v...)) }
func Warn(v ...interface{})                  { emit(warnOf, fmt.Sprintln(v...)) }
func Warnf(format string, v ...interface{})  { emit(warnOf, fmt.Sprintf(format, v...)) }
func Error(v ...interface{})                 { emit(errorOf, fmt.Sprintln(v...)) }
func Errorf(format string, v ...interface{}) { emit(errorOf, fmt.Sprintf(format, v...)) }

// Fatal logs the error and exits the program
func Fatal(v ...interface{}) {
	msg := fmt.Sprintln(v...)
	if defaultLogger == nil {
		fmt.Fprint(os.Stderr, "FATAL: "+msg)
	}
	emit(errorOf, msg)
	os.Exit(1)
}

func Fatalf(format string, v ...interface{}) {
	Fatal(fmt.Sprintf(format, v...))
}
