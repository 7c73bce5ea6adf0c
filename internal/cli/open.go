package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noteiser/internal/notify"
)

func (a *app) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <file>",
		Short: "Open a file in your editor using non-shortened notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.service(cmd).OpenPath(args[0])
		},
	}
}

func (a *app) newScratchCmd() *cobra.Command {
	var ext string

	cmd := &cobra.Command{
		Use:   "scratch",
		Short: "Open a new scratch file under ~/.cache/noteiser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.service(cmd).Scratch(ext)
			if path != "" {
				notify.Infof(cmd.OutOrStdout(), "Scratch file: %s", path)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&ext, "ext", "txt", "extension of the scratch file")
	return cmd
}
