// Package cli implements the textparse commands that normalize and
// validate delimited text against a type expression.
package cli

import (
	"bufio"
	"io"
	"reflect"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/logger"
	"github.com/mevansam/textparsers/term"
	"github.com/mevansam/textparsers/transform"
	"github.com/mevansam/textparsers/typeexpr"
)

type app struct {
	fs afero.Fs

	settingsPath string
	logLevel     string
	noColor      bool

	settings *config.Store
	types    *typeexpr.Parser
	store    *transform.Store
	painter  term.Painter
}

// NewRootCommand creates the textparse command tree. Settings files
// are read from fs so that callers can substitute the file system.
func NewRootCommand(fs afero.Fs) *cobra.Command {

	a := &app{fs: fs}

	root := &cobra.Command{
		Use:   "textparse",
		Short: "Normalize and validate delimiter based text",
		Long: `Parses text written in the delimiter based format of a Go type
expression such as "map[string][]int" and writes it back in canonical form.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initialize,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.settingsPath, "settings", "s", "",
		"settings file (.yaml or .json), defaults to $"+config.SettingsEnvVar)
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn or error)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.newNormalizeCommand(),
		a.newCheckCommand(),
		a.newDescribeCommand(),
		a.newTypesCommand(),
	)
	return root
}

func (a *app) initialize(cmd *cobra.Command, args []string) error {

	var (
		err error
	)

	logger.SetOutput(cmd.ErrOrStderr())
	if len(a.logLevel) > 0 {
		if err = logger.SetLevelByName(a.logLevel); err != nil {
			return err
		}
	}

	if len(a.settingsPath) > 0 {
		a.settings, err = config.Load(a.fs, a.settingsPath)
	} else {
		a.settings, err = config.LoadFromEnv(a.fs)
	}
	if err != nil {
		return err
	}

	a.types = typeexpr.NewParser(a.settings)
	if a.store, err = transform.NewStore(a.settings,
		transform.WithDecompositions(a.types.Decompositions()),
	); err != nil {
		return err
	}
	a.painter = term.NewPainter(!a.noColor)

	logger.DebugMessage("cli.initialize(): Using settings %# v", a.settings)
	return nil
}

// resolve returns the transformer for a type expression.
func (a *app) resolve(expr string) (transform.Transformer, error) {

	var (
		err error
		t   reflect.Type
	)

	if t, err = a.types.Parse(expr); err != nil {
		return nil, err
	}
	return a.store.Resolve(t)
}

// inputs returns the arguments or, when there are
// none, every line read from the command's input.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {

	if len(args) > 0 {
		return args, nil
	}
	return readLines(cmd.InOrStdin())
}

func readLines(r io.Reader) ([]string, error) {

	var (
		lines []string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}
