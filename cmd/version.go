package cmd

import (
	"os"
	"runtime"

	"github.com/anisan-cli/anisan-sources/constant"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("%s version %s %s/%s\n", constant.App, constant.Version, runtime.GOOS, runtime.GOARCH)
	},
}
