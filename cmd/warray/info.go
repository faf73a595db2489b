package main

import (
	"github.com/born-ml/warray/internal/document"
	"github.com/born-ml/warray/internal/logger"
	"github.com/spf13/cobra"
)

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show the dimensions, coordinates and values of an array document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			da, err := doc.DataArray()
			if err != nil {
				return err
			}
			logger.Logger.Debugw("loaded array", "file", args[0], "dims", da.Dims(), "shape", da.Shape().String())
			return render(cmd.OutOrStdout(), da)
		},
	}
}
