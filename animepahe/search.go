package animepahe

import (
	"iter"
	"strconv"

	"github.com/anisan-cli/anisan-sources/log"
	"github.com/anisan-cli/anisan-sources/scraper"
)

// Search performs one lookup against the search endpoint and lazily yields
// catalog entries in upstream order, truncated to limit when limit > 0.
// The sequence carries no error channel, so lookup failures are logged and
// yield nothing.
func (s *Scraper) Search(query string, limit int) iter.Seq[scraper.Metadata] {
	return func(yield func(scraper.Metadata) bool) {
		if query == "" {
			log.Error("animepahe: no search query provided")
			return
		}

		var resp searchResponse
		if err := s.requestJSON(map[string]string{"m": "search", "q": query}, &resp); err != nil {
			log.Errorf("animepahe: search for %q failed: %s", query, err)
			return
		}

		entries := resp.Data
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		for _, entry := range entries {
			meta := scraper.Metadata{
				ID:    entry.Session,
				Title: entry.Title,
				Kind:  scraper.KindOf(entry.Episodes),
			}
			if entry.Year > 0 {
				meta.Year = strconv.Itoa(entry.Year)
			}
			if !yield(meta) {
				return
			}
		}
	}
}
