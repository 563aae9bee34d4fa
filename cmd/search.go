// Package cmd implements the development command-line interface for exercising
// the source adapters outside the host application.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/anisan-cli/anisan-sources/color"
	"github.com/anisan-cli/anisan-sources/key"
	"github.com/anisan-cli/anisan-sources/query"
	"github.com/anisan-cli/anisan-sources/scraper"
	"github.com/anisan-cli/anisan-sources/style"
	"github.com/anisan-cli/anisan-sources/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntP("limit", "l", 0, "Maximum number of results (0 uses the configured default)")
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	searchCmd.SetOut(os.Stdout)
}

// searchCmd queries the selected adapter and lists discovered catalog entries.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Discover catalog entries matching a query",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := selectedScraper()
		handleErr(err)

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if limit == 0 {
			limit = viper.GetInt(key.SearchLimit)
		}

		_ = query.Remember(args[0], 1)

		results := searchAll(src, args[0], limit)

		if lo.Must(cmd.Flags().GetBool("json")) {
			out := lo.Map(results, func(m scraper.Metadata, _ int) map[string]string {
				return map[string]string{
					"id":    m.ID,
					"title": m.Title,
					"kind":  m.Kind.String(),
				}
			})
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(out))
			return
		}

		width, _, err := util.TerminalSize()
		if err != nil {
			width = 100
		}

		for _, m := range results {
			kind := style.Fg(color.Cyan)(m.Kind.String())
			cmd.Printf("%s  %s  %s\n", kind, util.Truncate(m.Title, width/2), style.Faint(m.ID))
		}
		cmd.Println(style.Faint(util.Quantify(len(results), "result", "results")))
	},
}

// searchAll drains the adapter's lazy result sequence into a slice.
func searchAll(src scraper.Scraper, q string, limit int) []scraper.Metadata {
	var results []scraper.Metadata
	for m := range src.Search(q, limit) {
		results = append(results, m)
	}
	return results
}
