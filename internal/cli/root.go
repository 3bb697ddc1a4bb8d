// Package cli implements the colorcompare command-line interface: the
// compare, products and options commands over the comparison pipeline, a
// line-oriented browse loop, and config bootstrapping.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/colorcompare/internal/paths"
	"github.com/mesh-intelligence/colorcompare/internal/source"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	quiet     bool
}

// app is the state shared by one command invocation. PersistentPreRunE
// fills it before any subcommand runs.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	settings  source.Settings
	logger    *log.Logger
}

// NewRootCmd creates the top-level "colorcompare" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "colorcompare",
		Short: "Compare the color analyses of two artworks side by side",
		Long: "colorcompare loads two color-analysis datasets, groups their entries by color name,\n" +
			"optionally filters them by color or pigment, and prints aligned comparison panels.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/colorcompare)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "dataset directory for the dir source (default: $(CWD)/data)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.quiet, "quiet", "q", false, "suppress fetch warnings")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newDatasetsCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newOptionsCmd(a))
	root.AddCommand(newProductsCmd(a))
	root.AddCommand(newBrowseCmd(a))

	return root
}

// Execute runs the CLI against the process arguments and exits with the
// resulting code.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executes the CLI with explicit arguments and streams and returns the
// exit code: 0 on success, 1 for user errors, 2 for system errors.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// setup resolves directories, reads config.yaml and the environment, and
// prepares the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	a.logger = log.New(cmd.ErrOrStderr(), "colorcompare: ", 0)
	if a.flags.quiet {
		a.logger.SetOutput(io.Discard)
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemErrorf("resolve config dir: %w", err)
	}
	a.configDir = configDir

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	cfg := configFromViper(v)

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, cfg.DataDir)
	if err != nil {
		return systemErrorf("resolve data dir: %w", err)
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", configDir, err)
	}
	a.cfg = cfg

	settings, err := source.LoadSettings()
	if err != nil {
		return err
	}
	a.settings = settings
	return nil
}

// systemError marks failures of the environment (filesystem, output) as
// opposed to bad input.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func systemErrorf(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
