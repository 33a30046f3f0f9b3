package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pthm/aquality/internal/quality"
)

// Process exit codes
const (
	ExitOK    = 0
	ExitUsage = 1
	ExitInput = 2
	// ExitDegenerate is reported as 255 by the shell
	ExitDegenerate = -1
)

// exitError carries the exit code for an error
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: ExitUsage, err: fmt.Errorf(format, args...)}
}

func inputError(err error) error {
	return &exitError{code: ExitInput, err: err}
}

// options holds the command line flags
type options struct {
	table       bool
	verbose     bool
	showVersion bool
	explain     bool
	format      string
	configPath  string
}

// switchValue is a boolean flag that clears another switch when it is set
type switchValue struct {
	on  *bool
	off *bool
}

func (v *switchValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v.on = b
	if b {
		*v.off = false
	}
	return nil
}

func (v *switchValue) String() string {
	if v.on == nil {
		return "false"
	}
	return strconv.FormatBool(*v.on)
}

func (v *switchValue) Type() string { return "bool" }

// Root is the aquality root command together with the exit code of its
// last execution
type Root struct {
	*cobra.Command

	opts      options
	code      int
	newLogger loggerFactory
}

// NewRoot creates the root command
func NewRoot() *Root {
	r := &Root{newLogger: newLogger}

	r.Command = &cobra.Command{
		Use:   "aquality [flags] MODEL_FILE TOOL_FILE MAPPING_FILE [TOOL_FILE MAPPING_FILE]...",
		Short: "Measure how well an abstraction maps onto tools",
		Long: `aquality computes the laconicity, lucidity, completeness and soundness of an
abstraction with respect to one or more tools, given a mapping from the
abstraction's concepts to each tool's constructs. With several tools, the
generalized metrics are computed: a concept is lucid only if it is lucid in
every tool, and sound if it is sound in at least one tool.

Files:
  MODEL_FILE    one concept per non-empty line
  TOOL_FILE     one construct per non-empty line
  MAPPING_FILE  one concept and one construct per non-empty line,
                separated by the configured separator (default :)

Table output (-t) prints, separated by the configured delimiter (default ;):
  #concepts, #constructs, #laconic, #lucid, #complete, #sound

Examples:
  aquality model.txt tool.txt mapping.txt
  aquality -t model.txt uml.txt uml-mapping.txt er.txt er-mapping.txt
  aquality --format json --explain model.txt tool.txt mapping.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          r.run,
	}

	flags := r.Flags()
	// -t and -V cancel each other, the last one given wins
	flags.VarPF(&switchValue{on: &r.opts.table, off: &r.opts.showVersion}, "table", "t",
		"Print the counts as one delimited line (same as --format table)").NoOptDefVal = "true"
	flags.BoolVarP(&r.opts.verbose, "verbose", "v", false, "Print diagnostics to stderr")
	flags.VarPF(&switchValue{on: &r.opts.showVersion, off: &r.opts.table}, "version", "V",
		"Print the version number").NoOptDefVal = "true"
	flags.BoolVarP(&r.opts.explain, "explain", "e", false, "Show how every construct and concept contributes")
	flags.StringVarP(&r.opts.format, "format", "f", "text", "Output format (text, table, json)")
	flags.StringVarP(&r.opts.configPath, "config", "c", "", "YAML file overriding separator, delimiter and precision")

	return r
}

// ExitCode maps the error returned by executing the command to a process
// exit code. Showing help or the version exits with ExitUsage.
func (r *Root) ExitCode(err error) int {
	if err != nil {
		return codeFor(err)
	}
	if help, _ := r.Flags().GetBool("help"); help {
		return ExitUsage
	}
	return r.code
}

func codeFor(err error) int {
	var ee *exitError
	switch {
	case errors.As(err, &ee):
		return ee.code
	case errors.Is(err, quality.ErrNoConcepts), errors.Is(err, quality.ErrNoConstructs):
		return ExitDegenerate
	default:
		return ExitUsage
	}
}
