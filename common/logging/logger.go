package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type Logger = zerolog.Logger

// SetupGlobalLogger sets the global level and replaces the zerolog global logger.
func SetupGlobalLogger(level string) error {
	if err := SetupGlobalLevel(level); err != nil {
		return err
	}
	log.Logger = NewLogger("global")
	return nil
}

func SetupGlobalLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

func NewLogger(component string) Logger {
	return NewLoggerTo(os.Stderr, component)
}

// NewLoggerTo writes console-formatted records to w.
// Colors are used only for terminals and only when NO_COLOR is unset.
func NewLoggerTo(w io.Writer, component string) Logger {
	noColor := !colorEnabled(w)
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldComponent,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude:    []string{FieldComponent},
		FormatFieldValue: componentFormatter(noColor),
		NoColor:          noColor,
	}).
		With().
		Str(FieldComponent, component).
		Caller().
		Timestamp().
		Logger()
}

func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func componentFormatter(noColor bool) zerolog.Formatter {
	return func(c any) string {
		column := fmt.Sprintf("[%v]\t", c)
		if noColor {
			return column
		}
		return "\x1b[1m" + column + "\x1b[0m"
	}
}
