package main

import (
	"github.com/born-ml/warray/internal/config"
	"github.com/born-ml/warray/internal/logger"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "warray",
		Short: "Inspect and index labeled N-dimensional arrays",
		Long: `warray reads labeled arrays from YAML or JSON documents and selects
from them by dimension name.

Examples:
  warray info temperature.yaml
  warray isel temperature.yaml --index x=0 --index y=1:3
  warray isel temperature.yaml -i time=-1 --drop`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (defaults and WARRAY_* environment otherwise)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInfoCmd())
	root.AddCommand(a.newIselCmd())
	return root
}
