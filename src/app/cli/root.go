// Package cli defines the textconv command line: the HTTP server (default)
// and a one-shot convert command.
package cli

import (
	"github.com/spf13/cobra"

	"textconv/src/infra/config"
)

type rootOptions struct {
	configPath string
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the server.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "textconv",
		Short: "Convert text to 8-bit binary and Morse code",
		Long: `textconv serves a web page and a JSON API that encode text as
space-separated binary code points and as Morse code.

Configuration is read from config.yml (or --config / APP_CONFIG_FILE) and
APP_* environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (yaml or toml), defaults to $"+config.ConfigFileEnv+" or ./"+config.DefaultConfigFile)

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newConvertCommand(opts))

	return cmd
}
