package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/carbon-design-system/carb/pkg/config"
	log "github.com/carbon-design-system/carb/pkg/logger"
	"github.com/carbon-design-system/carb/pkg/schema"
)

// cli holds the state of one carb invocation. Each command tree owns its
// own cli, so trees built in the same process share nothing.
type cli struct {
	// config is resolved in PersistentPreRunE, before any RunE reads it.
	config schema.CliConfiguration
	// logOutput is the --logs-file handle, closed by cleanup.
	logOutput io.Closer
}

// newRootCmd builds the carb command tree bound to c.
func (c *cli) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "carb",
		Short: "Workspace tooling for JavaScript monorepos",
		Long: `carb discovers the packages of a JavaScript monorepo from its package.json
"workspaces" globs and orders them so every package comes after the workspace
packages it depends on.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Do not silence usage or errors when help is invoked.
			if cmd.Name() == "help" || cmd.Flags().Changed("help") {
				cmd.SilenceUsage = false
				cmd.SilenceErrors = false
			} else {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
			}
			return c.initCliConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringP(config.ChdirFlag, "C", "", "Run as if carb was started in this directory")
	rootCmd.PersistentFlags().String(config.LogsLevelFlag, config.DefaultLogsLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off. If the log level is set to Off, carb will not log any messages")
	rootCmd.PersistentFlags().String(config.LogsFileFlag, config.DefaultLogsFile, "The file to write carb logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")

	rootCmd.AddCommand(
		newInitCmd(&c.config),
		newWorkspacesCmd(&c.config),
		newPlanCmd(&c.config),
		newCacheCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// initCliConfig resolves flags and CARB_* variables and installs the
// default logger they describe.
func (c *cli) initCliConfig(cmd *cobra.Command) error {
	cfg, err := config.InitCliConfig(cmd.Flags())
	if err != nil {
		return err
	}

	level, err := log.ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return err
	}
	out, err := log.OpenOutput(cfg.Logs.File)
	if err != nil {
		return err
	}
	c.cleanup()
	c.logOutput = out

	logger := log.NewLogger(out)
	logger.SetLogLevel(level)
	logger.SetReportTimestamp(false)
	log.SetDefault(logger)

	c.config = cfg
	log.Trace("Resolved CLI configuration", "dir", cfg.WorkingDir, "level", string(level))
	return nil
}

// Execute runs the carb command tree against os.Args.
func Execute() error {
	c := &cli{}
	defer c.cleanup()
	return c.newRootCmd().Execute()
}

// cleanup releases resources opened for the invocation.
func (c *cli) cleanup() {
	if c.logOutput != nil {
		_ = c.logOutput.Close()
		c.logOutput = nil
	}
}
