package logging

import (
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
)

var levelOption, levelSwitch = mtlog.WithControlledLevel(core.InformationLevel)

// Logger is the default application logger configured for console output.
// Its minimum level is shared with every logger derived from it.
var Logger core.Logger = mtlog.New(
	mtlog.WithConsole(),
	levelOption,
)

// Configure sets the minimum level of the default logger and all component loggers.
func Configure(levelName string) {
	levelSwitch.SetLevel(ParseLevel(levelName))
}

// ParseLevel maps a configured level name to an mtlog level, defaulting to information.
func ParseLevel(name string) core.LogEventLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "verbose":
		return core.VerboseLevel
	case "debug":
		return core.DebugLevel
	case "warning", "warn":
		return core.WarningLevel
	case "error":
		return core.ErrorLevel
	case "fatal":
		return core.FatalLevel
	default:
		return core.InformationLevel
	}
}

// ForComponent returns a logger enriched with a static component name.
func ForComponent(name string) core.Logger {
	return Logger.With("component", name)
}

func Info(logger core.Logger, template string, args ...any) {
	logger.Info(template, args...)
}

func Debug(logger core.Logger, template string, args ...any) {
	logger.Debug(template, args...)
}

func Error(logger core.Logger, template string, args ...any) {
	logger.Error(template, args...)
}

func Warn(logger core.Logger, template string, args ...any) {
	logger.Warn(template, args...)
}

// Fatal logs a message template and terminates the process.
func Fatal(logger core.Logger, template string, args ...any) {
	logger.Error(template, args...)
	os.Exit(1)
}

// RequestLogger writes one event per handled request.
func RequestLogger(logger core.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Warn("{Method} {Uri} responded {Status} in {Elapsed}: {Error}",
					v.Method, v.URI, v.Status, v.Latency.Round(time.Microsecond), v.Error)
				return nil
			}
			logger.Info("{Method} {Uri} responded {Status} in {Elapsed}",
				v.Method, v.URI, v.Status, v.Latency.Round(time.Microsecond))
			return nil
		},
	})
}
