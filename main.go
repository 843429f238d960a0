package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/carbon-design-system/carb/cmd"
	errUtils "github.com/carbon-design-system/carb/errors"
	log "github.com/carbon-design-system/carb/pkg/logger"
)

func main() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// POSIX exit code: 128 + signal number.
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	log.Default().SetReportTimestamp(false)

	errUtils.OsExit(run())
}

// run executes carb and returns the process exit code, so deferred cleanup
// inside cmd.Execute runs before os.Exit.
func run() int {
	err := cmd.Execute()
	if err != nil {
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}
	return 0
}
