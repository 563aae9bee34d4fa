package cmd

import (
	"os"

	"github.com/anisan-cli/anisan-sources/style"
	"github.com/anisan-cli/anisan-sources/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.SetOut(os.Stdout)
}

// whereCmd shows the filesystem locations this module reads and writes.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths used for config, cache and logs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range []struct {
			name string
			path string
		}{
			{"config", where.Config()},
			{"cache", where.Cache()},
			{"logs", where.Logs()},
			{"queries", where.Queries()},
		} {
			cmd.Printf("%s %s\n", style.Bold(p.name+":"), p.path)
		}
	},
}
