package cmd

import (
	"os"

	"github.com/anisan-cli/anisan-sources/plugin"
	"github.com/anisan-cli/anisan-sources/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the bundled source adapters",
}

// sourcesListCmd prints every scraper name the plugin descriptor registers.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered scrapers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		hook := plugin.Hook()
		cmd.Printf("%s %s (plugin version %d)\n", style.Bold("package:"), hook.PackageName, hook.Version)
		for _, name := range plugin.Names() {
			cmd.Println(name)
		}
	},
}
