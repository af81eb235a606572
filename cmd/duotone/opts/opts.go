package opts

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/duotone/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// DefaultTarget is the document rewritten when no path is given
const DefaultTarget = "app/docs/page.tsx"

// Output formats accepted by --output
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer

	Debug  bool
	DryRun bool
	Output string

	zlog    *zerolog.Logger
	console *log.Logger
}

// New creates root options writing to the given streams
func New(fs afero.Fs, stdout, stderr io.Writer) *RootOpts {
	return &RootOpts{
		Fs:     fs,
		Stdout: stdout,
		Stderr: stderr,
		Output: OutputText,
	}
}

// Validate checks flag values once they are parsed
func (o *RootOpts) Validate() error {
	switch o.Output {
	case OutputText, OutputYAML, OutputJSON:
		return nil
	default:
		return errors.Errorf("unsupported output %q (want text, yaml or json)", o.Output)
	}
}

// Logger returns the structured logger, built on first use from the parsed flags
func (o *RootOpts) Logger() *zerolog.Logger {
	if o.zlog == nil {
		level := zerolog.WarnLevel
		if o.Debug {
			level = zerolog.DebugLevel
		}
		l := zerolog.New(zerolog.ConsoleWriter{Out: o.Stderr}).Level(level).With().Timestamp().Logger()
		o.zlog = &l
	}
	return o.zlog
}

// Console returns the human-facing logger
func (o *RootOpts) Console() *log.Logger {
	if o.console == nil {
		o.console = log.New(o.Stdout, *o.Logger())
	}
	return o.console
}
