package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/plugin-editions/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Config helpers",
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

type scaffoldFile struct {
	path    string
	content string
}

func newConfigInitCmd() *cobra.Command {
	var filePath string
	var withExamples bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an annotated config template, optionally with example catalog and editions files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := strings.TrimSpace(filePath)
			if target == "" {
				return fmt.Errorf("config template path cannot be empty")
			}

			opts, err := mergedOptions(cmd)
			if err != nil {
				return err
			}

			dir := filepath.Dir(target)
			files := []scaffoldFile{{target, config.DefaultTemplate()}}
			if withExamples {
				// The template's ./catalog.yaml and ./editions.yaml match these
				// when the config is used from its own directory.
				files = append(files,
					scaffoldFile{filepath.Join(dir, "catalog.yaml"), config.ExampleCatalog()},
					scaffoldFile{filepath.Join(dir, "editions.yaml"), config.ExampleEditions()},
				)
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			prompter := newWritePrompter(cmd, opts.Yes)
			for _, f := range files {
				if err := prompter.confirmWrite(f.path); err != nil {
					return err
				}
			}

			for _, f := range files {
				if err := os.WriteFile(f.path, []byte(f.content), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", f.path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", f.path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "./plugin-editions.yaml", "Path to write config template")
	cmd.Flags().BoolVar(&withExamples, "examples", false, "Also write example catalog.yaml and editions.yaml next to the config")

	return cmd
}
