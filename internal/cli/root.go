package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/fetcher/internal/logger"
	"github.com/wesleyorama2/fetcher/internal/output"
)

var version = "0.1.0"

// NewRootCmd builds the command tree. Each call returns fresh commands
// with their own flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fetcher",
		Short:   "Shape and send requests to a REST API",
		Version: version,
		Long: `Fetcher sends GET, POST, PUT and DELETE requests to a base URL.
Headers and body are shaped from a declared content type (json, text,
markdown, file or form-data) and an optional bearer token.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			logger.Init(level)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Profile file (JSON or YAML)")
	flags.String("profile", "", "Profile to use from the config file")
	flags.String("token", "", "Bearer token, overrides the profile token")
	flags.StringP("type", "T", "", "Content type: json, text, markdown, file or form-data")
	flags.String("path", "", "Path appended to the base URL")
	flags.String("transport", "net", "HTTP transport: net or resty")
	flags.Bool("no-redirect", false, "Return 3xx responses instead of following them")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.BoolP("verbose", "v", false, "Enable verbose output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringArrayP("extract", "e", []string{}, "Extract name=$.json.path from the response (can be used multiple times)")
	flags.String("schema", "", "Validate the response body against this JSON Schema")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newPostCmd())
	rootCmd.AddCommand(newPutCmd())
	rootCmd.AddCommand(newDeleteCmd())

	return rootCmd
}

// Execute runs the command line and reports any error on stderr.
// This is called by main.main().
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		noColor := !output.ColorEnabled(os.Stderr)
		fmt.Fprintf(os.Stderr, "%s Error: %v\n", output.ErrorIcon(noColor), err)
		return err
	}
	return nil
}
