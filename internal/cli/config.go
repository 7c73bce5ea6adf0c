package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noteiser/internal/apperr"
	"github.com/mesh-intelligence/noteiser/internal/config"
	"github.com/mesh-intelligence/noteiser/internal/notify"
	"github.com/mesh-intelligence/noteiser/internal/paths"
)

func (a *app) newConfigCmd() *cobra.Command {
	lenient := map[string]string{annotationLenientConfig: "true"}

	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Edit config (same as 'config open')",
		Args:        cobra.NoArgs,
		Annotations: lenient,
		RunE:        a.openConfig,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the loaded config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg == nil {
				return fmt.Errorf("%w: %s", config.ErrNotFound, paths.ConfigFile(a.home))
			}
			return printConfig(cmd.OutOrStdout(), a.cfg, a.flags.jsonMode)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "open",
		Short:       "Open the config file in your editor",
		Args:        cobra.NoArgs,
		Annotations: lenient,
		RunE:        a.openConfig,
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "setup",
		Short:       "Create the config file from a template and open it",
		Args:        cobra.NoArgs,
		Annotations: lenient,
		RunE:        a.setupConfig,
	})

	return cmd
}

func (a *app) openConfig(cmd *cobra.Command, args []string) error {
	path := paths.ConfigFile(a.home)
	if _, ok := paths.Verify(path); !ok {
		return fmt.Errorf("%w: %s (run 'noteiser config setup')", config.ErrNotFound, path)
	}
	return a.service(cmd).OpenPath(path)
}

// setupConfig writes the config template and opens it. An existing config
// file is left alone.
func (a *app) setupConfig(cmd *cobra.Command, args []string) error {
	path := paths.ConfigFile(a.home)
	if _, ok := paths.Verify(path); ok {
		return fmt.Errorf("config file '%s' %w", path, apperr.ErrAlreadyExists)
	}

	dir := paths.ConfigDir(a.home)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory '%s': %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(config.DefaultTemplate(a.home)), 0o644); err != nil {
		return fmt.Errorf("could not write config file '%s': %w", path, err)
	}
	notify.Successf(cmd.OutOrStdout(), "Config file created at %s", path)

	return a.service(cmd).OpenPath(path)
}

// printConfig writes cfg as key = "value" lines, or as JSON.
func printConfig(w io.Writer, cfg *config.Config, jsonMode bool) error {
	if jsonMode {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	fields := []struct{ key, value string }{
		{config.KeyDev, cfg.Dev},
		{config.KeyEditor, cfg.Editor},
		{config.KeyEditorBackup, cfg.EditorBackup},
		{config.KeyNote, cfg.Note},
		{config.KeyDoc, cfg.Doc},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s = %q\n", f.key, f.value); err != nil {
			return err
		}
	}
	return nil
}
