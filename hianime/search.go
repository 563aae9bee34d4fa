package hianime

import (
	"iter"

	"github.com/anisan-cli/anisan-sources/log"
	"github.com/anisan-cli/anisan-sources/scraper"
)

// Search performs one lookup against the search endpoint and lazily yields
// catalog entries in upstream order, truncated to limit when limit > 0.
func (s *Scraper) Search(query string, limit int) iter.Seq[scraper.Metadata] {
	return func(yield func(scraper.Metadata) bool) {
		if query == "" {
			log.Error("hianime: no search query provided")
			return
		}

		var resp searchResponse
		if !s.request(s.cfg.BaseURL+"/search", map[string]string{"q": query}, &resp) {
			return
		}

		animes := resp.animes()
		if len(animes) == 0 {
			log.Warnf("hianime: no results found for query %q", query)
			return
		}

		if limit > 0 && len(animes) > limit {
			animes = animes[:limit]
		}

		for _, anime := range animes {
			meta := scraper.Metadata{
				ID:    anime.ID,
				Title: anime.Name,
				Kind:  scraper.KindOf(anime.Episodes.Sub),
			}
			if !yield(meta) {
				return
			}
		}
	}
}
