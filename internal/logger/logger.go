package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// ********************************************************
// ********* LOGGING **************************************
// ********************************************************

var showDateTime bool
var defaultLogger *Logger
var logFile *os.File

type LogLevel int

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorOrange = "\033[38;5;208m"
)

const (
	DEBUG LogLevel = iota
	INFO
	HIGHLIGHT
	WARN
	ERROR
	FATAL
)

const logFilePath = "/tmp/pitchplot.log"

type Logger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	level       LogLevel
}

func init() {
	defaultLogger = NewLogger(INFO)
	showDateTime = false
}

func SetShowDateTime(value bool) {
	showDateTime = value
	flags := 0
	if showDateTime {
		flags = log.Ldate | log.Ltime
	}
	defaultLogger.infoLogger.SetFlags(flags)
	defaultLogger.errorLogger.SetFlags(flags)
}

// SetLevel changes the minimum level emitted by the default logger
func SetLevel(level LogLevel) {
	defaultLogger.level = level
}

// SetLogOutput sets the output destination for logs
// 'c' for console, 'f' for file, 'b' for both
func SetLogOutput(outputType rune) {
	// Close any existing log file
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	var infoWriter, errorWriter io.Writer

	switch outputType {
	case 'c': // Console only
		infoWriter = os.Stdout
		errorWriter = os.Stderr
	case 'f', 'b':
		var err error
		logFile, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		if outputType == 'f' {
			infoWriter = logFile
			errorWriter = logFile
		} else {
			infoWriter = io.MultiWriter(os.Stdout, logFile)
			errorWriter = io.MultiWriter(os.Stderr, logFile)
		}
	default:
		fmt.Fprintf(os.Stderr, "Invalid log output type: %c\n", outputType)
		os.Exit(1)
	}

	flags := 0
	if showDateTime {
		flags = log.Ldate | log.Ltime
	}

	defaultLogger.infoLogger = log.New(infoWriter, "", flags)
	defaultLogger.errorLogger = log.New(errorWriter, "", flags)
}

func NewLogger(level LogLevel) *Logger {
	flags := 0
	if showDateTime {
		flags = log.Ldate | log.Ltime
	}

	return &Logger{
		infoLogger:  log.New(os.Stdout, "", flags),
		errorLogger: log.New(os.Stderr, "", flags),
		level:       level,
	}
}

func (l *Logger) log(level LogLevel, format string, v ...any) {
	if level < l.level {
		return
	}

	// Get caller information
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}
	file = filepath.Base(file)

	// Format message with any additional arguments
	var msg string
	var jsonObjects []string

	if len(v) > 0 {
		// Process arguments, converting non-primitives to JSON
		processedArgs, jsonStrings := processArgs(v...)
		jsonObjects = jsonStrings

		if len(processedArgs) > 0 {
			msg = fmt.Sprintf(format+" %s", strings.Join(processedArgs, " "))
		} else {
			msg = format
		}
	} else {
		msg = format
	}

	var colorCode string
	switch level {
	case DEBUG:
		colorCode = colorBlue
	case INFO:
		colorCode = colorGreen
	case HIGHLIGHT:
		colorCode = colorCyan
	case WARN:
		colorCode = colorYellow
	case ERROR:
		colorCode = colorOrange
	case FATAL:
		colorCode = colorRed
	default:
		colorCode = colorReset
	}

	out := l.infoLogger
	if level >= ERROR {
		out = l.errorLogger
	}

	// Metadata in white, message in the level color
	out.Println(fmt.Sprintf("[%s] %s:%d: %s%s%s",
		level.String(), file, line, colorCode, msg, colorReset))
	for _, jsonObj := range jsonObjects {
		out.Println(fmt.Sprintf("[%s] %s:%d: %s%s%s",
			level.String(), file, line, colorCode, jsonObj, colorReset))
	}
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case HIGHLIGHT:
		return "HIGHLIGHT"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// processArgs processes arguments, converting non-primitives to JSON
// Returns string representations for primitive types and a slice of JSON strings for complex types
func processArgs(args ...any) ([]string, []string) {
	if len(args) == 0 {
		return nil, nil
	}

	var primitives []string
	var jsonObjects []string

	for _, arg := range args {
		if isPrimitive(arg) {
			switch v := arg.(type) {
			case float32:
				primitives = append(primitives, fmt.Sprintf("%.2f", v))
			case float64:
				primitives = append(primitives, fmt.Sprintf("%.2f", v))
			case int:
				primitives = append(primitives, fmt.Sprintf("%d", v))
			case bool:
				primitives = append(primitives, fmt.Sprintf("%v", v))
			case string:
				primitives = append(primitives, v)
			case error:
				primitives = append(primitives, v.Error())
			case nil:
				primitives = append(primitives, "nil")
			default:
				primitives = append(primitives, fmt.Sprintf("%v", v))
			}
		} else {
			// For non-primitive types, convert to JSON
			jsonBytes, err := json.MarshalIndent(arg, "", "  ")
			if err != nil {
				primitives = append(primitives, fmt.Sprintf("%v", arg))
			} else {
				primitives = append(primitives, fmt.Sprintf("[Object of type %s]", reflect.TypeOf(arg)))
				jsonObjects = append(jsonObjects, string(jsonBytes))
			}
		}
	}
	return primitives, jsonObjects
}

// isPrimitive checks if a value is a primitive type
func isPrimitive(v any) bool {
	if v == nil {
		return true
	}

	switch v.(type) {
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, error:
		return true
	default:
		return false
	}
}

// Convenience methods using the default logger
func Debug(format string, v ...any) {
	defaultLogger.log(DEBUG, format, v...)
}

func Info(format string, v ...any) {
	defaultLogger.log(INFO, format, v...)
}

func Highlight(format string, v ...any) {
	defaultLogger.log(HIGHLIGHT, format, v...)
}

func Warn(format string, v ...any) {
	defaultLogger.log(WARN, format, v...)
}

func Error(format string, v ...any) {
	defaultLogger.log(ERROR, format, v...)
}

func Fatal(format string, v ...any) {
	defaultLogger.log(FATAL, format, v...)
	os.Exit(1)
}
