package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anisan-cli/anisan-sources/query"
	"github.com/anisan-cli/anisan-sources/scraper"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("best", "b", false, "Skip the entry prompt and pick the closest title match")
	runCmd.SetOut(os.Stdout)
}

// runCmd walks the whole pipeline interactively: prompt for a query, pick an
// entry and an episode, then print the resolved descriptor.
var runCmd = &cobra.Command{
	Use:   "run [query]",
	Short: "Interactively search, pick and resolve an entry",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := selectedScraper()
		handleErr(err)

		var q string
		if len(args) == 1 {
			q = args[0]
		} else {
			prompt := &survey.Input{
				Message: "Search for what?",
				Default: query.Suggest("").OrElse(""),
				Suggest: query.SuggestMany,
			}
			handleErr(survey.AskOne(prompt, &q, survey.WithValidator(survey.Required)))
		}

		results := searchAll(src, q, 0)
		if len(results) == 0 {
			handleErr(fmt.Errorf("nothing found for %q", q))
		}
		_ = query.Remember(q, 1)

		meta := pickEntry(cmd, results, q)

		selector := scraper.EpisodeSelector{}
		if meta.Kind == scraper.Multi {
			selector.Episode = pickEpisode(src.ScrapeEpisodes(meta))
		}

		resolution, err := src.Scrape(meta, selector)
		handleErr(err)

		printResolution(cmd, resolution)
	},
}

func pickEntry(cmd *cobra.Command, results []scraper.Metadata, q string) scraper.Metadata {
	if lo.Must(cmd.Flags().GetBool("best")) {
		return lo.MinBy(results, func(a, b scraper.Metadata) bool {
			return levenshtein.Distance(q, a.Title) < levenshtein.Distance(q, b.Title)
		})
	}

	options := lo.Map(results, func(m scraper.Metadata, _ int) string {
		return m.Title
	})

	var picked string
	handleErr(survey.AskOne(&survey.Select{
		Message: "Which one?",
		Options: options,
	}, &picked))

	_, index, _ := lo.FindIndexOf(options, func(o string) bool {
		return o == picked
	})
	return results[index]
}

func pickEpisode(index scraper.EpisodeIndex) int {
	if index.Unknown() {
		return 0
	}

	options := lo.Map(index.Numbers(), func(n int, _ int) string {
		return strconv.Itoa(n)
	})

	var picked string
	handleErr(survey.AskOne(&survey.Select{
		Message: "Which episode?",
		Options: options,
	}, &picked))

	return lo.Must(strconv.Atoi(picked))
}
