package zerolog

import (
	"os"
	"strings"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"

	"github.com/raykavin/taframe/pkg/logger"
)

// New creates a zerolog-backed logger writing to stdout. When colored is
// false the console writer emits plain text suitable for log files.
func New(level string, dateTimeLayout string, colored bool) (logger.Logger, error) {
	logMode, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    !colored,
		TimeFormat: dateTimeLayout,
	}
	if colored {
		output.FormatLevel = formatLevel
	}

	zl := zerolog.New(output).Level(logMode).With().Timestamp().Logger()
	return &adapter{logger: zl}, nil
}

func formatLevel(i interface{}) string {
	levelStr, ok := i.(string)
	if !ok {
		return "[UNK]"
	}

	switch levelStr {
	case zerolog.LevelTraceValue:
		return term.Cyanf("[TRC]")
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WAR]")
	case zerolog.LevelErrorValue:
		return term.Redf("[ERR]")
	default:
		return term.Whitef("[" + strings.ToUpper(levelStr) + "]")
	}
}
