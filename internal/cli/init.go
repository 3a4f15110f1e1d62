package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goasmfmt/internal/logging"
	"github.com/yaklabco/goasmfmt/pkg/config"
)

const initConfigName = ".goasmfmt.yml"

func newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a starter ` + initConfigName + ` with the default settings to the
current directory. Existing files are not overwritten unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	logger := logging.Default()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	path := filepath.Join(workDir, initConfigName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Debug("wrote starter configuration", logging.FieldPath, path)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", initConfigName)

	return nil
}
