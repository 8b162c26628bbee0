package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/assistant/internal/config"
	"github.com/mesh-intelligence/assistant/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and a default config.yaml in it. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, _ []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return &ExitError{Code: exitSysError, Message: fmt.Sprintf("resolve config dir: %s", err)}
	}

	created, err := config.WriteDefault(configDir)
	if err != nil {
		return &ExitError{Code: exitSysError, Message: err.Error()}
	}

	path := paths.ConfigFile(configDir)
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s\n", path)
	}
	return nil
}
