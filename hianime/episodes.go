package hianime

import (
	"fmt"

	"github.com/anisan-cli/anisan-sources/log"
	"github.com/anisan-cli/anisan-sources/scraper"
)

// ScrapeEpisodes fetches the episode listing for an entry and maps every
// episode number to group 1. When the listing is unavailable or empty it
// returns the sentinel index, never an empty one.
func (s *Scraper) ScrapeEpisodes(meta scraper.Metadata) scraper.EpisodeIndex {
	episodes, ok := s.episodeListing(meta.ID)
	if !ok {
		log.Errorf("hianime: failed to fetch episodes for anime %s", meta.ID)
		return scraper.SentinelEpisodes()
	}

	index := make(scraper.EpisodeIndex, len(episodes))
	for _, ep := range episodes {
		index[ep.Number] = 1
	}

	if len(index) == 0 {
		return scraper.SentinelEpisodes()
	}
	return index
}

// episodeListing fetches and decodes the episode listing for an entry id.
// ok is false on transport, decode, or schema-mismatch failures.
func (s *Scraper) episodeListing(id string) ([]episodeEntry, bool) {
	var resp episodesResponse
	url := fmt.Sprintf("%s/anime/%s/episodes", s.cfg.BaseURL, id)
	if !s.request(url, nil, &resp) {
		return nil, false
	}
	return resp.episodes()
}
