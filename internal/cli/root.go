package cli

import (
	"github.com/spf13/cobra"

	"github.com/templateme/templateme/internal/branding"
	"github.com/templateme/templateme/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates new projects from templates: directories of files with
%TOKEN% placeholders and an optional manifest.json describing arguments and includes.

Templates are searched in the bundled set first, then the system directory,
the user config directory and any extra paths from the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := logging.Init(logLevel, cmd.ErrOrStderr())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
