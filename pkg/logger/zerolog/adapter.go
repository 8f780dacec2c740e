package zerolog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/raykavin/taframe/pkg/logger"
)

// adapter bridges zerolog to the logger.Logger facade
type adapter struct {
	logger zerolog.Logger
}

func (a *adapter) WithField(key string, value any) logger.Logger {
	return &adapter{logger: a.logger.With().Interface(key, value).Logger()}
}

func (a *adapter) WithFields(fields map[string]any) logger.Logger {
	ctx := a.logger.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &adapter{logger: ctx.Logger()}
}

func (a *adapter) WithError(err error) logger.Logger {
	return &adapter{logger: a.logger.With().Err(err).Logger()}
}

func (a *adapter) Trace(args ...any) { a.logger.Trace().Msg(fmt.Sprint(args...)) }
func (a *adapter) Debug(args ...any) { a.logger.Debug().Msg(fmt.Sprint(args...)) }
func (a *adapter) Info(args ...any)  { a.logger.Info().Msg(fmt.Sprint(args...)) }
func (a *adapter) Warn(args ...any)  { a.logger.Warn().Msg(fmt.Sprint(args...)) }
func (a *adapter) Error(args ...any) { a.logger.Error().Msg(fmt.Sprint(args...)) }

func (a *adapter) Tracef(format string, args ...any) { a.logger.Trace().Msgf(format, args...) }
func (a *adapter) Debugf(format string, args ...any) { a.logger.Debug().Msgf(format, args...) }
func (a *adapter) Infof(format string, args ...any)  { a.logger.Info().Msgf(format, args...) }
func (a *adapter) Warnf(format string, args ...any)  { a.logger.Warn().Msgf(format, args...) }
func (a *adapter) Errorf(format string, args ...any) { a.logger.Error().Msgf(format, args...) }

func (a *adapter) SetLevel(level logger.Level) {
	a.logger = a.logger.Level(toZerologLevel(level))
}

func (a *adapter) GetLevel() logger.Level {
	return fromZerologLevel(a.logger.GetLevel())
}

func toZerologLevel(level logger.Level) zerolog.Level {
	switch level {
	case logger.Disabled:
		return zerolog.Disabled
	case logger.TraceLevel:
		return zerolog.TraceLevel
	case logger.DebugLevel:
		return zerolog.DebugLevel
	case logger.InfoLevel:
		return zerolog.InfoLevel
	case logger.WarnLevel:
		return zerolog.WarnLevel
	case logger.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func fromZerologLevel(level zerolog.Level) logger.Level {
	switch level {
	case zerolog.Disabled:
		return logger.Disabled
	case zerolog.TraceLevel:
		return logger.TraceLevel
	case zerolog.DebugLevel:
		return logger.DebugLevel
	case zerolog.InfoLevel:
		return logger.InfoLevel
	case zerolog.WarnLevel:
		return logger.WarnLevel
	case zerolog.ErrorLevel:
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
