package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noteiser/internal/listing"
	"github.com/mesh-intelligence/noteiser/internal/workspace"
)

// newKindCmd builds the new/open/list/rm subcommands for one entity kind.
func (a *app) newKindCmd(kind workspace.Kind, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.Name,
		Short: short,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "new <name>",
		Short: fmt.Sprintf("Create a new %s and open it", kind.Name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.service(cmd).Create(kind, args[0])
		},
	})

	open := &cobra.Command{
		Use:   "open <name>",
		Short: fmt.Sprintf("Open a %s using shortened notation", kind.Name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := workspace.Ref{Name: args[0]}
			if len(args) > 1 {
				ref.File = args[1]
			}
			return a.service(cmd).Open(kind, ref)
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss", kind.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			dir, entries, err := a.service(cmd).List(kind, name)
			if err != nil {
				return err
			}
			return listing.Render(cmd.OutOrStdout(), dir, entries, a.flags.jsonMode)
		},
	}

	if kind.Nested() {
		open.Use = "open <name> [file]"
		open.Long = fmt.Sprintf("Open a %[1]s directory, or a file under its %[2]s/ directory.\nFiles without an extension get .%[3]s.", kind.Name, kind.SubDir, kind.Ext)
		open.Args = cobra.RangeArgs(1, 2)

		list.Use = "list [name]"
		list.Short = fmt.Sprintf("List %[1]ss, or the files of one %[1]s", kind.Name)
		list.Args = cobra.MaximumNArgs(1)
	}

	cmd.AddCommand(open, list)

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   fmt.Sprintf("Remove a %s after confirmation", kind.Name),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.service(cmd).Remove(kind, args[0])
		},
	})

	return cmd
}
