// Package cmd implements the development command-line interface for exercising
// the source adapters outside the host application.
package cmd

import (
	"fmt"
	"os"

	"github.com/anisan-cli/anisan-sources/style"
	"github.com/anisan-cli/anisan-sources/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(episodesCmd)

	episodesCmd.Flags().IntP("pick", "p", 0, "Index of the search result to inspect")
	episodesCmd.SetOut(os.Stdout)
}

// episodesCmd enumerates the episode index for a discovered entry.
var episodesCmd = &cobra.Command{
	Use:   "episodes <query>",
	Short: "Enumerate the episode index for the first matching entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := selectedScraper()
		handleErr(err)

		pick := lo.Must(cmd.Flags().GetInt("pick"))
		results := searchAll(src, args[0], pick+1)
		if len(results) <= pick {
			handleErr(fmt.Errorf("no entry found for query %q", args[0]))
		}

		meta := results[pick]
		index := src.ScrapeEpisodes(meta)

		cmd.Printf("%s (%s)\n", style.Bold(meta.Title), meta.Kind)
		if index.Unknown() {
			cmd.Println(style.Faint("episode count unknown"))
			return
		}

		numbers := index.Numbers()
		for _, n := range numbers {
			cmd.Printf("episode %d (group %d)\n", n, index[n])
		}
		cmd.Println(style.Faint(util.Quantify(len(numbers), "episode", "episodes")))
	},
}
