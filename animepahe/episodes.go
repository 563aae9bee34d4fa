package animepahe

import (
	"github.com/anisan-cli/anisan-sources/log"
	"github.com/anisan-cli/anisan-sources/scraper"
)

// ScrapeEpisodes fetches the first release page for an entry and maps every
// parsable episode number to group 1. Fetch failures, empty listings, and
// listings with no parsable labels all degrade to the sentinel index.
func (s *Scraper) ScrapeEpisodes(meta scraper.Metadata) scraper.EpisodeIndex {
	entries, err := s.releaseListing(meta.ID)
	if err != nil {
		log.Errorf("animepahe: failed to fetch episodes for %s: %s", meta.ID, err)
		return scraper.SentinelEpisodes()
	}

	index := make(scraper.EpisodeIndex, len(entries))
	for _, entry := range entries {
		n, ok := entry.number()
		if !ok {
			log.Warnf("animepahe: skipping unparsable episode label %q for %s", entry.Episode, meta.ID)
			continue
		}
		index[n] = 1
	}

	if len(index) == 0 {
		return scraper.SentinelEpisodes()
	}
	return index
}

// releaseListing fetches the first page of the ascending episode listing.
func (s *Scraper) releaseListing(id string) ([]releaseEntry, error) {
	var resp releaseResponse
	params := map[string]string{
		"m":    "release",
		"id":   id,
		"sort": "episode_asc",
		"page": "1",
	}
	if err := s.requestJSON(params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
