package cmd

import (
	"fmt"
	"os"

	"github.com/anisan-cli/anisan-sources/color"
	"github.com/anisan-cli/anisan-sources/scraper"
	"github.com/anisan-cli/anisan-sources/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().IntP("episode", "e", 0, "Episode number to resolve (defaults to the first)")
	resolveCmd.Flags().IntP("pick", "p", 0, "Index of the search result to resolve")
	resolveCmd.SetOut(os.Stdout)
}

// resolveCmd runs the full pipeline for one entry: search, then resolve a
// playable descriptor for the requested episode.
var resolveCmd = &cobra.Command{
	Use:   "resolve <query>",
	Short: "Resolve a playable source descriptor for an entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := selectedScraper()
		handleErr(err)

		pick := lo.Must(cmd.Flags().GetInt("pick"))
		results := searchAll(src, args[0], pick+1)
		if len(results) <= pick {
			handleErr(fmt.Errorf("no entry found for query %q", args[0]))
		}

		selector := scraper.EpisodeSelector{Episode: lo.Must(cmd.Flags().GetInt("episode"))}
		resolution, err := src.Scrape(results[pick], selector)
		handleErr(err)

		printResolution(cmd, resolution)
	},
}

func printResolution(cmd *cobra.Command, r scraper.Resolution) {
	status := style.Fg(color.Green)
	if r.Status != scraper.StatusFound {
		status = style.Fg(color.Red)
	}

	cmd.Printf("%s %s\n", style.Bold("status:"), status(r.Status.String()))
	cmd.Printf("%s %s\n", style.Bold("title:"), r.Media.Title)

	if r.Media.Placeholder() {
		return
	}

	cmd.Printf("%s %s\n", style.Bold("url:"), r.Media.URL)
	if r.Media.Referrer != "" {
		cmd.Printf("%s %s\n", style.Bold("referrer:"), r.Media.Referrer)
	}
	if r.Media.Year != "" {
		cmd.Printf("%s %s\n", style.Bold("year:"), r.Media.Year)
	}
	for label, url := range r.Media.Subtitles {
		cmd.Printf("%s %s %s\n", style.Bold("subtitle:"), label, style.Faint(url))
	}
}
