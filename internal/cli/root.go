// Package cli implements the boundctl command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/bounded/internal/config"
	"github.com/mesh-intelligence/bounded/internal/logging"
	"github.com/mesh-intelligence/bounded/internal/paths"
	"github.com/mesh-intelligence/bounded/pkg/types"
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
	capacity  int
}

// app is the state shared by one command tree.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	logger    *zap.Logger
}

// NewRootCmd creates the top-level "boundctl" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    types.DefaultConfig(),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "boundctl",
		Short: "Work with fixed-capacity vectors and strings",
		Long: "boundctl exercises bounded vectors and byte strings, the series-based\n" +
			"trigonometry helpers, and a local snapshot store for strings.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.bounded-db)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().IntVar(&a.flags.capacity, "capacity", 0, "container capacity (default: config capacity)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newStrCmd(a))
	root.AddCommand(newVecCmd(a))
	root.AddCommand(newTrigCmd(a))
	root.AddCommand(newRotateCmd(a))
	root.AddCommand(newSnapCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "boundctl:", err)
		os.Exit(exitCode(err))
	}
}

// setup resolves the config directory, loads config.yaml and builds the
// logger. Skipped for version.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = dir

	cfg, err := config.Load(dir)
	if err != nil {
		return userError(err)
	}
	if a.flags.capacity < 0 {
		return userError(fmt.Errorf("--capacity: %w", types.ErrCapacityNotPositive))
	}
	if a.flags.capacity > 0 {
		cfg.Capacity = a.flags.capacity
	}
	a.cfg = cfg

	logger, err := logging.New(logging.ProfileRuntime, cfg.LogLevel)
	if err != nil {
		return userError(err)
	}
	a.logger = logger.Named("boundctl")
	a.logger.Debug("config loaded",
		zap.String("config_dir", dir),
		zap.Int("capacity", cfg.Capacity),
		zap.Int("terms", cfg.Terms))
	return nil
}

// dataDir returns the snapshot directory following
// --data-dir > config data_dir > BOUNDED_DATA_DIR > $(CWD)/.bounded-db.
func (a *app) dataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.cfg.DataDir)
}

// emit writes v as indented JSON in --json mode, otherwise calls text.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if !a.flags.jsonMode {
		text(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("encode output: %w", err))
	}
	return nil
}

// codedError carries the process exit code for an error.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func userError(err error) error { return &codedError{code: exitUserError, err: err} }
func sysError(err error) error  { return &codedError{code: exitSysError, err: err} }

// exitCode maps an error to a process exit code. Uncoded errors, such as
// cobra's own argument errors, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return exitUserError
}

// fatalSentinels are the container errors that arrive as panics.
var fatalSentinels = []error{
	types.ErrCapacityExceeded,
	types.ErrCapacityInvalid,
	types.ErrCapacityShrink,
	types.ErrInvalidRange,
	types.ErrIndexOutOfRange,
}

// guard runs fn and turns a container panic into a user error. Other
// panics are re-raised.
func guard(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			for _, sentinel := range fatalSentinels {
				if errors.Is(e, sentinel) {
					err = userError(e)
					return
				}
			}
		}
		panic(r)
	}()
	return fn()
}
