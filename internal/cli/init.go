package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/bounded/internal/config"
	"github.com/mesh-intelligence/bounded/pkg/sqlite"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and snapshot storage",
		Long:  "Write a default config.yaml if none exists, then create the snapshot store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	dataDir, err := a.dataDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	cfg := a.cfg
	if a.flags.dataDir != "" {
		cfg.DataDir = dataDir
	}
	written, err := config.WriteDefault(a.configDir, cfg)
	if err != nil {
		return sysError(err)
	}

	store, err := sqlite.Open(dataDir, a.logger)
	if err != nil {
		return sysError(fmt.Errorf("initialize storage: %w", err))
	}
	if err := store.Close(); err != nil {
		return sysError(fmt.Errorf("finalize storage: %w", err))
	}

	a.logger.Info("initialized",
		zap.String("config", config.Path(a.configDir)),
		zap.Bool("config_written", written),
		zap.String("data_dir", dataDir))

	out := struct {
		ConfigFile    string `json:"config_file"`
		ConfigWritten bool   `json:"config_written"`
		DataDir       string `json:"data_dir"`
	}{config.Path(a.configDir), written, dataDir}

	return a.emit(cmd, out, func(w io.Writer) {
		fmt.Fprintln(w, "boundctl initialized")
		fmt.Fprintf(w, "config: %s\ndata: %s\n", out.ConfigFile, out.DataDir)
	})
}
