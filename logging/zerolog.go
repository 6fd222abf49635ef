package logging

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ZerologLogger forwards the module logs to a zerolog.Logger
type ZerologLogger struct {
	logger zerolog.Logger
}

var _ LoggingInterface = (*ZerologLogger)(nil)

// create a logging implementation writing to the provided zerolog logger,
// tagging every line with the component name
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{
		logger: logger.With().Str("component", "wsconnect").Logger(),
	}
}

// parse a textual log level, defaults to info
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}

func (z *ZerologLogger) Trace(args ...interface{}) {
	z.logger.Trace().Msg(sprint(args...))
}

func (z *ZerologLogger) Tracef(format string, args ...interface{}) {
	z.logger.Trace().Msgf(format, args...)
}

func (z *ZerologLogger) Debug(args ...interface{}) {
	z.logger.Debug().Msg(sprint(args...))
}

func (z *ZerologLogger) Debugf(format string, args ...interface{}) {
	z.logger.Debug().Msgf(format, args...)
}

func (z *ZerologLogger) Info(args ...interface{}) {
	z.logger.Info().Msg(sprint(args...))
}

func (z *ZerologLogger) Infof(format string, args ...interface{}) {
	z.logger.Info().Msgf(format, args...)
}

func (z *ZerologLogger) Warn(args ...interface{}) {
	z.logger.Warn().Msg(sprint(args...))
}

func (z *ZerologLogger) Warnf(format string, args ...interface{}) {
	z.logger.Warn().Msgf(format, args...)
}

func (z *ZerologLogger) Error(args ...interface{}) {
	z.logger.Error().Msg(sprint(args...))
}

func (z *ZerologLogger) Errorf(format string, args ...interface{}) {
	z.logger.Error().Msgf(format, args...)
}

// the call sites pass space separated fragments like fmt.Println does
func sprint(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
