// Package cmd implements the development command-line interface for exercising
// the source adapters outside the host application.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/anisan-sources/color"
	"github.com/anisan-cli/anisan-sources/constant"
	"github.com/anisan-cli/anisan-sources/key"
	"github.com/anisan-cli/anisan-sources/log"
	"github.com/anisan-cli/anisan-sources/plugin"
	"github.com/anisan-cli/anisan-sources/scraper"
	"github.com/anisan-cli/anisan-sources/style"
	cc "github.com/ivanpirog/coloredcobra"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.PersistentFlags().StringP("scraper", "s", "", "Registered scraper to use (e.g. hianime, animepahe)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("scraper", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return plugin.Names(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.DefaultScraper, rootCmd.PersistentFlags().Lookup("scraper")))
}

// rootCmd defines the entry point for the anisan-sources development CLI.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Source adapters for anime catalogs, exercised from the command line",
	Long: constant.App + " bundles the hianime and animepahe source adapters.\n" +
		"The host application loads them through the plugin descriptor; this CLI\n" +
		"drives the same adapters directly for development and debugging.",
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "✗ %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// selectedScraper instantiates the adapter named by the --scraper flag or the
// configured default.
func selectedScraper() (scraper.Scraper, error) {
	name := viper.GetString(key.DefaultScraper)
	if name == "" {
		name = "DEFAULT"
	}

	factory, ok := plugin.Get(name)
	if !ok {
		return nil, errUnknownScraper(name)
	}
	return factory(nil)
}

func errUnknownScraper(name string) error {
	closest := lo.MinBy(plugin.Names(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf(
		"unknown scraper %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}
