package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/carbon-design-system/carb/internal/exec"
)

func newCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Interact with the cache for carb",
	}
	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Clean the cache for carb",
		Long: `Removes the carb cache directory.

The directory is $CARB_XDG_CACHE_HOME/carb, $XDG_CACHE_HOME/carb or the
platform default cache location.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.ExecuteCacheClean(cmd.OutOrStdout())
		},
	})
	return cacheCmd
}
