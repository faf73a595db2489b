package main

import (
	"github.com/born-ml/warray/internal/dataarray"
	"github.com/born-ml/warray/internal/dims"
	"github.com/born-ml/warray/internal/document"
	"github.com/born-ml/warray/internal/logger"
	"github.com/spf13/cobra"
)

func (a *app) newIselCmd() *cobra.Command {
	var (
		specs       []string
		drop        bool
		missingDims string
	)
	cmd := &cobra.Command{
		Use:   "isel FILE",
		Short: "Select from an array document by dimension name",
		Long: `Select from an array document by dimension name.

Each --index takes dim=term where term is an integer ("3", "-1") or a
slice ("1:3", "::2", ":"). Integers drop their dimension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("drop") {
				drop = a.cfg.Isel.Drop
			}
			policy := a.cfg.MissingDims()
			if cmd.Flags().Changed("missing-dims") {
				p, err := dims.ParseMissingDims(missingDims)
				if err != nil {
					return err
				}
				policy = p
			}

			indexers, err := document.ParseIndexers(specs)
			if err != nil {
				return err
			}
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			da, err := doc.DataArray()
			if err != nil {
				return err
			}

			out, err := da.Isel(indexers, dataarray.WithDrop(drop), dataarray.WithMissingDims(policy))
			if err != nil {
				return err
			}
			logger.Logger.Debugw("selected", "file", args[0], "request", specs, "dims", out.Dims())
			return render(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringArrayVarP(&specs, "index", "i", nil, "dim=term selection (repeatable)")
	cmd.Flags().BoolVar(&drop, "drop", false, "drop coordinates that become scalars")
	cmd.Flags().StringVar(&missingDims, "missing-dims", string(dims.Raise), "raise, warn or ignore unknown dimensions")
	return cmd
}
